package levels

import (
	"errors"
	"fmt"
)

const (
	GlyphEmpty       = ' '
	GlyphGround      = '#'
	GlyphPlayer      = 'P'
	GlyphCollectable = 'C'
	GlyphDoor        = 'D'
	GlyphWater       = '~'
)

var ErrNoSpawn = errors.New("levels: no player spawn")

// Solid is an axis-aligned run of ground cells in world units, +Y up.
type Solid struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Placement is an entity anchored at the center of a cell.
type Placement struct {
	Glyph rune
	X, Y  float64
}

// Layout is a parsed level. One glyph is one world unit; the bottom row sits
// on y = 0.
type Layout struct {
	Width    int
	Height   int
	Solids   []Solid
	Spawn    Placement
	Triggers []Placement
}

// Parse converts the glyph rows into solid runs, the spawn point and trigger
// placements. Water cells are triggers, not solids.
func (l *Level) Parse() (*Layout, error) {
	if l == nil || len(l.Rows) == 0 {
		return nil, fmt.Errorf("levels: %q: empty level", l.name())
	}

	out := &Layout{Height: len(l.Rows)}
	spawnFound := false

	for row, line := range l.Rows {
		cells := []rune(line)
		if len(cells) > out.Width {
			out.Width = len(cells)
		}
		minY := float64(out.Height - 1 - row)
		centerY := minY + 0.5

		runStart := -1
		flush := func(end int) {
			if runStart < 0 {
				return
			}
			out.Solids = append(out.Solids, Solid{
				MinX: float64(runStart),
				MinY: minY,
				MaxX: float64(end),
				MaxY: minY + 1,
			})
			runStart = -1
		}

		for col, glyph := range cells {
			if glyph != GlyphGround {
				flush(col)
			}
			centerX := float64(col) + 0.5
			switch glyph {
			case GlyphGround:
				if runStart < 0 {
					runStart = col
				}
			case GlyphPlayer:
				if spawnFound {
					return nil, fmt.Errorf("levels: %q: duplicate spawn at row %d col %d", l.name(), row, col)
				}
				spawnFound = true
				out.Spawn = Placement{Glyph: glyph, X: centerX, Y: centerY}
			case GlyphCollectable, GlyphDoor, GlyphWater:
				out.Triggers = append(out.Triggers, Placement{Glyph: glyph, X: centerX, Y: centerY})
			case GlyphEmpty, '.':
			default:
				return nil, fmt.Errorf("levels: %q: unknown glyph %q at row %d col %d", l.name(), glyph, row, col)
			}
		}
		flush(len(cells))
	}

	if !spawnFound {
		return nil, fmt.Errorf("%w: %q", ErrNoSpawn, l.name())
	}
	return out, nil
}

func (l *Level) name() string {
	if l == nil {
		return ""
	}
	return l.Name
}
