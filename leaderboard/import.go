package leaderboard

import (
	"os"
	"strconv"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/teranos/parkour/errors"
)

// legacyEntry is one value of a highscore file. Older files store the
// score as a string.
type legacyEntry struct {
	Name       string    `yaml:"name"`
	Score      yaml.Node `yaml:"score"`
	Time       string    `yaml:"time"`
	Difficulty string    `yaml:"difficulty"`
}

// ImportFile reads a highscore file of the form
//
//	{"<uuid>": {"name": ..., "score": ..., "time": ..., "difficulty": ...}}
//
// JSON files parse as YAML. Records come back in file order, which
// becomes the tie-break order once loaded into a Board.
func ImportFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read highscores %s", path)
	}
	recs, err := ParseHighscores(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse highscores %s", path)
	}
	return recs, nil
}

// ParseHighscores decodes highscore file contents. A plain map would lose
// key order, so the document is walked as a yaml.Node.
func ParseHighscores(data []byte) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode highscores")
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.WithHint(
			errors.Newf("highscores root is not a mapping (line %d)", root.Line),
			"expected {\"<uuid>\": {\"name\": ..., \"score\": ...}}",
		)
	}

	recs := make([]Record, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		owner, err := uuid.Parse(key.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: owner %q", key.Line, key.Value)
		}
		var e legacyEntry
		if err := val.Decode(&e); err != nil {
			return nil, errors.Wrapf(err, "line %d: entry for %s", val.Line, owner)
		}
		score := 0
		if e.Score.Kind == yaml.ScalarNode {
			score, err = strconv.Atoi(e.Score.Value)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: score for %s", e.Score.Line, owner)
			}
		}
		recs = append(recs, Record{
			OwnerID:    owner,
			Name:       e.Name,
			Score:      score,
			Time:       e.Time,
			Difficulty: e.Difficulty,
		})
	}
	return recs, nil
}
