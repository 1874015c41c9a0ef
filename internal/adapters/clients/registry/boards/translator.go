package boards

import (
	"strings"

	"github.com/jsamuelsen11/pio-home/internal/domain/board"
)

// ToDomainBoard converts a registry BoardDTO to a domain Board. The
// registry reports MCUs in upper case; the local board files use lower
// case, so the value is normalized.
func ToDomainBoard(dto *BoardDTO) board.Board {
	name := dto.Name
	if name == "" {
		name = dto.ID
	}
	return board.Board{
		ID:       dto.ID,
		Name:     name,
		Platform: dto.Platform.Name,
		MCU:      strings.ToLower(dto.MCU),
		Vendor:   dto.Vendor,
	}
}
