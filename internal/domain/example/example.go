// Package example models the example projects shipped inside installed
// platform packages.
package example

// Platform identifies the package an example set came from.
type Platform struct {
	Name    string
	Title   string
	Version string
}

// Item is one example project.
type Item struct {
	Name        string
	Path        string
	Description string
}

// Catalog groups the examples of a single platform.
type Catalog struct {
	Platform Platform
	Items    []Item
}
