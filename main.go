package main

import (
	"github.com/mj1618/atspi-inspect/cmd"
	_ "github.com/mj1618/atspi-inspect/internal/platform/linux"
)

func main() {
	cmd.Execute()
}
