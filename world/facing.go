package world

import "strings"

// ParseFacing maps a cardinal direction name to its unit step.
func ParseFacing(face string) (Cell, bool) {
	switch strings.ToLower(strings.TrimSpace(face)) {
	case "north":
		return Cell{Z: -1}, true
	case "south":
		return Cell{Z: 1}, true
	case "east":
		return Cell{X: 1}, true
	case "west":
		return Cell{X: -1}, true
	default:
		return Cell{}, false
	}
}
