// Package location converts world positions to and from the canonical text
// form used in saved data: "(x,y,z,world)", with multi-position paths joined
// by "->".
package location

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/parkour/errors"
	"github.com/teranos/parkour/logger"
	"github.com/teranos/parkour/world"
)

// PathDelimiter joins positions in a saved path.
const PathDelimiter = "->"

const formatHint = "positions are written as (x,y,z,world)"

// Codec encodes and decodes positions. World names are checked against a
// resolver; unknown names fall back to its default world with a warning so
// stale saved data keeps loading.
type Codec struct {
	worlds world.Resolver
	logger *zap.SugaredLogger
}

// NewCodec creates a Codec. A nil logger discards warnings.
func NewCodec(worlds world.Resolver, log *zap.SugaredLogger) *Codec {
	return &Codec{worlds: worlds, logger: logger.OrNop(log)}
}

// Encode renders p. The raw form keeps exact coordinates and the world
// name; the formatted form shows block coordinates for display.
func (c *Codec) Encode(p world.Position, raw bool) string {
	return Encode(p, raw)
}

// Encode renders p without needing a Codec.
func Encode(p world.Position, raw bool) string {
	var b strings.Builder
	b.WriteByte('(')
	if raw {
		b.WriteString(formatFloat(p.X))
		b.WriteByte(',')
		b.WriteString(formatFloat(p.Y))
		b.WriteByte(',')
		b.WriteString(formatFloat(p.Z))
		b.WriteByte(',')
		b.WriteString(p.World)
	} else {
		cell := p.Cell()
		b.WriteString(strconv.Itoa(cell.X))
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(cell.Y))
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(cell.Z))
	}
	b.WriteByte(')')
	return b.String()
}

// Decode parses the raw form. Separators may be "," or ", ". Only the
// enclosing parentheses are stripped, so world names may contain them;
// a world name containing a comma does not round-trip.
func (c *Codec) Decode(s string) (world.Position, error) {
	tokens := splitTokens(s)
	if len(tokens) < 4 {
		return world.Position{}, errors.WithHint(
			errors.Wrapf(errors.ErrMalformedLocation, "expected 4 fields in %q, got %d", s, len(tokens)),
			formatHint)
	}

	var coords [3]float64
	for i := range coords {
		v, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return world.Position{}, errors.WithHint(
				errors.Wrapf(errors.ErrMalformedLocation, "coordinate %d of %q is not a number: %q", i, s, tokens[i]),
				formatHint)
		}
		coords[i] = v
	}

	return world.Position{
		X:     coords[0],
		Y:     coords[1],
		Z:     coords[2],
		World: c.resolveWorld(tokens[3]),
	}, nil
}

// DecodeList parses positions joined by delimiter (PathDelimiter when
// empty). Any bad segment fails the whole list.
func (c *Codec) DecodeList(s, delimiter string) ([]world.Position, error) {
	if delimiter == "" {
		delimiter = PathDelimiter
	}
	segments := strings.Split(s, delimiter)
	positions := make([]world.Position, 0, len(segments))
	for i, seg := range segments {
		p, err := c.Decode(seg)
		if err != nil {
			return nil, errors.Wrapf(err, "segment %d", i)
		}
		positions = append(positions, p)
	}
	return positions, nil
}

// EncodeList renders positions in raw form joined by PathDelimiter.
func (c *Codec) EncodeList(ps []world.Position) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = Encode(p, true)
	}
	return strings.Join(parts, PathDelimiter)
}

func (c *Codec) resolveWorld(name string) string {
	if c.worlds == nil {
		return name
	}
	if canonical, ok := c.worlds.Resolve(name); ok {
		return canonical
	}
	fallback := c.worlds.Default()
	c.logger.Warnw("Unknown world in saved location, using default",
		logger.FieldWorld, name,
		"default", fallback,
	)
	return fallback
}

// splitTokens strips the enclosing parentheses and splits on commas,
// tolerating a single space after each comma.
func splitTokens(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	if s == "" {
		return nil
	}
	tokens := strings.Split(s, ",")
	for i, t := range tokens {
		tokens[i] = strings.TrimSpace(t)
	}
	return tokens
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
