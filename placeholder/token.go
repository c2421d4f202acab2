// Package placeholder answers display queries such as "score_rank_3" or
// "leader" against leaderboard standings and a viewer's session.
//
// Tokens are parsed once into a tagged Token, then dispatched; parsing is
// where malformed input is rejected.
package placeholder

import (
	"strconv"
	"strings"

	"github.com/teranos/parkour/errors"
)

// Form classifies a token.
type Form int

const (
	FormUnknown Form = iota
	FormLiteral
	FormRankQuery
)

func (f Form) String() string {
	switch f {
	case FormLiteral:
		return "literal"
	case FormRankQuery:
		return "rank"
	default:
		return "unknown"
	}
}

// Kind is the canonical query a token asks for. Aliases share a Kind.
type Kind string

// Session kinds need a live session.
const (
	KindScore          Kind = "score"
	KindTime           Kind = "time"
	KindBlockLead      Kind = "blocklead"
	KindStyle          Kind = "style"
	KindTimePreference Kind = "time_preference"
	KindScoreboard     Kind = "scoreboard"
	KindDifficulty     Kind = "difficulty"
	KindDifficultyText Kind = "difficulty_string"
)

// Global kinds.
const (
	KindHighScore   Kind = "highscore"
	KindVersion     Kind = "version"
	KindLeader      Kind = "leader"
	KindLeaderScore Kind = "leader_score"
)

// Rank query kinds.
const (
	KindPlayerRank Kind = "player_rank"
	KindScoreRank  Kind = "score_rank"
	KindTimeRank   Kind = "time_rank"
)

var literals = map[string]Kind{
	"score":             KindScore,
	"current_score":     KindScore,
	"time":              KindTime,
	"current_time":      KindTime,
	"blocklead":         KindBlockLead,
	"lead":              KindBlockLead,
	"style":             KindStyle,
	"time_pref":         KindTimePreference,
	"time_preference":   KindTimePreference,
	"scoreboard":        KindScoreboard,
	"difficulty":        KindDifficulty,
	"difficulty_string": KindDifficultyText,
	"highscore":         KindHighScore,
	"high_score":        KindHighScore,
	"version":           KindVersion,
	"ver":               KindVersion,
	"leader":            KindLeader,
	"record_player":     KindLeader,
	"leader_score":      KindLeaderScore,
	"record_score":      KindLeaderScore,
	"record":            KindLeaderScore,
}

// Checked in this order; the first matching prefix wins.
var rankPrefixes = []struct {
	prefix string
	kind   Kind
}{
	{"player_rank_", KindPlayerRank},
	{"score_rank_", KindScoreRank},
	{"time_rank_", KindTimeRank},
}

// Token is a parsed placeholder name.
type Token struct {
	Form Form
	Kind Kind
	// Rank is set for FormRankQuery. Zero is a valid parse that resolves
	// to the not-available text.
	Rank int
	Raw  string
}

// NeedsSession reports whether resolving t reads the viewer's session.
func (t Token) NeedsSession() bool {
	switch t.Kind {
	case KindScore, KindTime, KindBlockLead, KindStyle, KindTimePreference,
		KindScoreboard, KindDifficulty, KindDifficultyText:
		return true
	}
	return false
}

// ParseToken classifies s. Unrecognized names parse as FormUnknown without
// error; a rank prefix followed by anything but decimal digits is
// ErrMalformedToken.
func ParseToken(s string) (Token, error) {
	if kind, ok := literals[s]; ok {
		return Token{Form: FormLiteral, Kind: kind, Raw: s}, nil
	}

	for _, p := range rankPrefixes {
		suffix, ok := strings.CutPrefix(s, p.prefix)
		if !ok {
			continue
		}
		rank, err := parseRank(suffix)
		if err != nil {
			return Token{}, errors.WithHintf(
				errors.Wrapf(errors.ErrMalformedToken, "%q: %v", s, err),
				"rank placeholders end in a number, e.g. %s1", p.prefix)
		}
		return Token{Form: FormRankQuery, Kind: p.kind, Rank: rank, Raw: s}, nil
	}

	return Token{Form: FormUnknown, Raw: s}, nil
}

// parseRank accepts only ASCII digits, so "+1", "-1" and " 1" are rejected.
// Values too large for int saturate; they are out of range either way.
func parseRank(s string) (int, error) {
	if s == "" {
		return 0, errors.New("missing rank")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errors.Newf("rank %q is not a non-negative integer", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return int(^uint(0) >> 1), nil
		}
		return 0, err
	}
	return n, nil
}
