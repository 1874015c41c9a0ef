// Package boards translates the remote registry's board resources into
// domain boards.
package boards

// BoardDTO matches the registry's board schema.
type BoardDTO struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Vendor   string      `json:"vendor"`
	MCU      string      `json:"mcu"`
	Platform PlatformDTO `json:"platform"`
}

// PlatformDTO is the platform reference embedded in a board.
type PlatformDTO struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}
