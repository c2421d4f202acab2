package display

import (
	"io"

	"github.com/pterm/pterm"

	"github.com/teranos/parkour/errors"
)

// Table renders rows under headers with pterm's boxed table.
func Table(w io.Writer, headers []string, rows [][]string) error {
	data := pterm.TableData{headers}
	data = append(data, rows...)

	out, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(data).
		Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	_, err = io.WriteString(w, out+"\n")
	return err
}

// KeyValues renders label/value pairs as a two-column table without header.
func KeyValues(w io.Writer, pairs [][2]string) error {
	data := make(pterm.TableData, len(pairs))
	for i, p := range pairs {
		data[i] = []string{pterm.Bold.Sprint(p[0]), p[1]}
	}
	out, err := pterm.DefaultTable.WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	_, err = io.WriteString(w, out+"\n")
	return err
}
