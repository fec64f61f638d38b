package model

// Application is a registered accessible application discovered on the bus.
type Application struct {
	Bus  string    `yaml:"bus"            json:"bus"`
	Name string    `yaml:"name,omitempty" json:"name,omitempty"` // As reported by the Accessible interface; may be empty
	Root ObjectRef `yaml:"root"           json:"root"`
}

// DisplayName returns the application name, falling back to the bus name.
func (a Application) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Bus
}
