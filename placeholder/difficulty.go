package placeholder

import (
	"github.com/teranos/parkour/logger"
)

// DifficultyLabel names a difficulty in [0, 1]. The band between 0.7 and
// 0.8 has no name and is "unknown", as is anything above 1.
func DifficultyLabel(d float64) string {
	switch {
	case d > 1:
		logger.Logger.Errorw("Difficulty above 1", "difficulty", d)
		return "unknown"
	case d <= 0.3:
		return "easy"
	case d <= 0.5:
		return "medium"
	case d <= 0.7:
		return "hard"
	case d >= 0.8:
		return "very hard"
	default:
		return "unknown"
	}
}
