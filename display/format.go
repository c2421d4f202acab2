package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/parkour/errors"
)

// Format names a structured output encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Encode writes v to w in format. header, when set, is written as a
// leading comment for formats that have comments.
func Encode(w io.Writer, format Format, header string, v interface{}) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		header = ""
	case FormatYAML:
		data, err = yaml.Marshal(v)
	case FormatTOML:
		data, err = toml.Marshal(v)
	default:
		return errors.WithHint(
			errors.NewInvalidRequestError("unsupported format: %s", format),
			"supported formats: toml, json, yaml")
	}
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", format)
	}

	if header != "" {
		if _, err := fmt.Fprintf(w, "# %s\n", header); err != nil {
			return err
		}
	}
	_, err = w.Write(data)
	if err == nil && format == FormatJSON {
		_, err = fmt.Fprintln(w)
	}
	return err
}
