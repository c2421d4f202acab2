// Package world models block-world geometry: positions, normalized cuboid
// regions, the chunks that cover them, and read-only scans over the blocks
// inside a region.
package world

import (
	"fmt"
	"math"

	"github.com/teranos/parkour/errors"
)

// ChunkSize is the horizontal width of a chunk in blocks.
const ChunkSize = 16

// Position is a point in a world. World is empty when unset.
type Position struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	World string  `json:"world,omitempty"`
}

// Cell is an integer block coordinate.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// At builds a position in the given world.
func At(x, y, z float64, world string) Position {
	return Position{X: x, Y: y, Z: z, World: world}
}

// Cell returns the block containing p.
func (p Position) Cell() Cell {
	return Cell{
		X: int(math.Floor(p.X)),
		Y: int(math.Floor(p.Y)),
		Z: int(math.Floor(p.Z)),
	}
}

// Comparable reports whether p and o may be combined: same world, or at
// least one of them unset.
func (p Position) Comparable(o Position) bool {
	return p.World == "" || o.World == "" || p.World == o.World
}

// Validate returns ErrInvalidPosition when any coordinate is NaN or infinite.
func (p Position) Validate() error {
	for _, c := range [...]struct {
		axis  string
		value float64
	}{{"x", p.X}, {"y", p.Y}, {"z", p.Z}} {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return errors.Wrapf(errors.ErrInvalidPosition, "%s coordinate is %v", c.axis, c.value)
		}
	}
	return nil
}

// Position returns the block origin of c in the given world.
func (c Cell) Position(world string) Position {
	return Position{X: float64(c.X), Y: float64(c.Y), Z: float64(c.Z), World: world}
}

// Add returns c offset by o.
func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Chunk returns the chunk holding c.
func (c Cell) Chunk() ChunkCoord {
	return ChunkCoord{X: floorDiv(c.X, ChunkSize), Z: floorDiv(c.Z, ChunkSize)}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}
