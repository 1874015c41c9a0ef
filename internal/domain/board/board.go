// Package board models development boards as declared by platform packages.
package board

// Board is a development board definition.
type Board struct {
	ID       string
	Name     string
	Platform string
	MCU      string
	Vendor   string
}

// Platform is an installed platform package. Dir is the package root on
// disk; boards and examples live below it.
type Platform struct {
	Name    string
	Title   string
	Version string
	Dir     string
}
