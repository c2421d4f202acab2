package location

import (
	"fmt"
	"strconv"

	"github.com/teranos/parkour/errors"
	"github.com/teranos/parkour/world"
)

// ParseCell parses an integer vector such as "(1,2,3)", used for structure
// offsets.
func ParseCell(s string) (world.Cell, error) {
	tokens := splitTokens(s)
	if len(tokens) != 3 {
		return world.Cell{}, errors.Wrapf(errors.ErrMalformedLocation, "expected 3 fields in %q, got %d", s, len(tokens))
	}
	var v [3]int
	for i, t := range tokens {
		n, err := strconv.Atoi(t)
		if err != nil {
			return world.Cell{}, errors.Wrapf(errors.ErrMalformedLocation, "field %d of %q is not an integer", i, s)
		}
		v[i] = n
	}
	return world.Cell{X: v[0], Y: v[1], Z: v[2]}, nil
}

// FormatCell renders c as "(x,y,z)".
func FormatCell(c world.Cell) string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}
