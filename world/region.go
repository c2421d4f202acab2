package world

import (
	"fmt"
	"iter"
	"math"

	"github.com/teranos/parkour/errors"
)

// containsTolerance widens a region on every side for Contains, so a
// position standing on the edge of the last block still counts as inside.
const containsTolerance = 0.1

// Region is an axis-aligned inclusive cuboid with Min <= Max on every axis.
// Build regions with Normalize; the zero value is a single cell at the origin.
type Region struct {
	Min Position
	Max Position
}

// Normalize builds a region from two corners given in any order.
func Normalize(a, b Position) (Region, error) {
	if err := a.Validate(); err != nil {
		return Region{}, errors.Wrap(err, "first corner")
	}
	if err := b.Validate(); err != nil {
		return Region{}, errors.Wrap(err, "second corner")
	}
	if !a.Comparable(b) {
		return Region{}, errors.Wrapf(errors.ErrInvalidRegion,
			"corners are in different worlds: %q and %q", a.World, b.World)
	}

	world := a.World
	if world == "" {
		world = b.World
	}
	return Region{
		Min: Position{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z), World: world},
		Max: Position{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z), World: world},
	}, nil
}

// Bounds returns the smallest region holding every position in ps.
func Bounds(ps []Position) (Region, error) {
	if len(ps) == 0 {
		return Region{}, errors.Wrap(errors.ErrInvalidRegion, "no positions to bound")
	}
	r, err := Normalize(ps[0], ps[0])
	if err != nil {
		return Region{}, err
	}
	for i, p := range ps[1:] {
		if r, err = r.Extend(p); err != nil {
			return Region{}, errors.Wrapf(err, "position %d", i+1)
		}
	}
	return r, nil
}

// Extend returns the smallest region holding r and p.
func (r Region) Extend(p Position) (Region, error) {
	lo, err := Normalize(r.Min, p)
	if err != nil {
		return Region{}, err
	}
	hi, err := Normalize(r.Max, p)
	if err != nil {
		return Region{}, err
	}
	return Region{Min: lo.Min, Max: hi.Max}, nil
}

// World returns the world the region belongs to, empty when unset.
func (r Region) World() string {
	return r.Min.World
}

// MinCell returns the lowest block of the region.
func (r Region) MinCell() Cell {
	return r.Min.Cell()
}

// MaxCell returns the highest block of the region.
func (r Region) MaxCell() Cell {
	return r.Max.Cell()
}

// Size returns the number of blocks along each axis. An axis wider than
// math.MaxInt blocks reports math.MaxInt.
func (r Region) Size() (dx, dy, dz int) {
	lo, hi := r.MinCell(), r.MaxCell()
	return span(lo.X, hi.X), span(lo.Y, hi.Y), span(lo.Z, hi.Z)
}

// Volume returns the number of blocks in the region. ok is false when the
// count does not fit in an int; the volume is then math.MaxInt.
func (r Region) Volume() (volume int, ok bool) {
	dx, dy, dz := r.Size()
	return mulCounts(dx, dy, dz)
}

// span counts lo..hi inclusive, saturating at math.MaxInt.
func span(lo, hi int) int {
	n := hi - lo + 1
	if n <= 0 || hi-lo < 0 {
		return math.MaxInt
	}
	return n
}

// mulCounts multiplies positive counts, saturating at math.MaxInt.
func mulCounts(counts ...int) (int, bool) {
	total := 1
	for _, c := range counts {
		if c == math.MaxInt || total > math.MaxInt/c {
			return math.MaxInt, false
		}
		total *= c
	}
	return total, true
}

// Cells yields every block of the region, x outermost, then y, then z.
// The sequence is finite and may be ranged over repeatedly.
func (r Region) Cells() iter.Seq[Cell] {
	lo, hi := r.MinCell(), r.MaxCell()
	return func(yield func(Cell) bool) {
		for x := lo.X; x <= hi.X; x++ {
			for y := lo.Y; y <= hi.Y; y++ {
				for z := lo.Z; z <= hi.Z; z++ {
					if !yield(Cell{X: x, Y: y, Z: z}) {
						return
					}
				}
			}
		}
	}
}

// rows yields the (x, y) start of every z-run. A row is the unit between
// which background scans may stop.
func (r Region) rows() iter.Seq2[int, int] {
	lo, hi := r.MinCell(), r.MaxCell()
	return func(yield func(int, int) bool) {
		for x := lo.X; x <= hi.X; x++ {
			for y := lo.Y; y <= hi.Y; y++ {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

// Contains reports whether p lies in the region, allowing a 0.1 block margin
// on every side. Positions in another world are never contained.
func (r Region) Contains(p Position) bool {
	if !r.Min.Comparable(p) {
		return false
	}
	return p.X >= r.Min.X-containsTolerance && p.X <= r.Max.X+containsTolerance &&
		p.Y >= r.Min.Y-containsTolerance && p.Y <= r.Max.Y+containsTolerance &&
		p.Z >= r.Min.Z-containsTolerance && p.Z <= r.Max.Z+containsTolerance
}

func (r Region) String() string {
	lo, hi := r.MinCell(), r.MaxCell()
	if w := r.World(); w != "" {
		return fmt.Sprintf("%s..%s@%s", lo, hi, w)
	}
	return fmt.Sprintf("%s..%s", lo, hi)
}
