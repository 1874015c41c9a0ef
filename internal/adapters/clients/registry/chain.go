package registry

import (
	"context"
	"errors"

	"github.com/jsamuelsen11/pio-home/internal/domain"
	"github.com/jsamuelsen11/pio-home/internal/domain/board"
	"github.com/jsamuelsen11/pio-home/internal/ports"
)

// Compile-time interface check.
var _ ports.BoardRegistry = (*Chain)(nil)

// Chain asks a list of registries in order and returns the first board
// found. A registry that does not know the board (or fails) hands the
// lookup to the next one.
type Chain struct {
	registries []ports.BoardRegistry
}

// NewChain creates a Chain. Nil registries are skipped, which lets callers
// pass an optional remote registry unconditionally.
func NewChain(registries ...ports.BoardRegistry) *Chain {
	c := &Chain{}
	for _, r := range registries {
		if r != nil {
			c.registries = append(c.registries, r)
		}
	}
	return c
}

// Board returns the first successful lookup. When every registry fails, the
// error is the most specific one seen: an unknown-platform answer wins over
// an unknown-board answer, and both win over transport failures so callers
// can tell "no such board" from "could not ask".
func (c *Chain) Board(ctx context.Context, id string) (*board.Board, error) {
	var unknown, other error

	for _, r := range c.registries {
		b, err := r.Board(ctx, id)
		if err == nil {
			return b, nil
		}
		switch {
		case errors.Is(err, domain.ErrUnknownPlatform):
			unknown = err
		case errors.Is(err, domain.ErrUnknownBoard):
			if unknown == nil {
				unknown = err
			}
		default:
			other = err
		}
	}

	if unknown != nil {
		return nil, unknown
	}
	if other != nil {
		return nil, other
	}
	return nil, domain.ErrUnknownBoard
}
