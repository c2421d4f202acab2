package display

import (
	"encoding/json"
	"os"

	"golang.org/x/term"
)

// MarshalJSON indents output for terminals and keeps it compact when piped.
func MarshalJSON(v interface{}) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}
