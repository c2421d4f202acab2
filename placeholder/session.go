package placeholder

import (
	"strconv"
	"strings"
)

// Session is a viewer's in-progress run.
type Session interface {
	Score() int
	Time() string
	BlockLead() int
	Style() string
	TimePreference() string
	ShowScoreboard() bool
	Difficulty() float64
}

// SessionState is a plain Session value.
type SessionState struct {
	CurrentScore int     `json:"score" yaml:"score"`
	CurrentTime  string  `json:"time" yaml:"time"`
	Lead         int     `json:"blocklead" yaml:"blocklead"`
	StyleName    string  `json:"style" yaml:"style"`
	TimePref     string  `json:"time_preference" yaml:"time_preference"`
	Scoreboard   bool    `json:"scoreboard" yaml:"scoreboard"`
	Diff         float64 `json:"difficulty" yaml:"difficulty"`
}

func (s SessionState) Score() int             { return s.CurrentScore }
func (s SessionState) Time() string           { return s.CurrentTime }
func (s SessionState) BlockLead() int         { return s.Lead }
func (s SessionState) Style() string          { return s.StyleName }
func (s SessionState) TimePreference() string { return s.TimePref }
func (s SessionState) ShowScoreboard() bool   { return s.Scoreboard }
func (s SessionState) Difficulty() float64    { return s.Diff }

// formatDifficulty always shows a fractional part: 1 is "1.0", 0.25 is "0.25".
func formatDifficulty(d float64) string {
	s := strconv.FormatFloat(d, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
