// Package linux provides Linux platform support by talking to the AT-SPI
// accessibility bus over D-Bus.
package linux
