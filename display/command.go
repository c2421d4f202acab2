// Package display renders command results either as JSON for scripts or
// as pterm output for people.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/parkour/errors"
)

// EnvOutput set to "json" makes JSON the default output format.
const EnvOutput = "PARKOUR_OUTPUT"

// ShouldOutputJSON reports whether cmd should print JSON: an explicit
// --json flag wins, then the root --json flag, then PARKOUR_OUTPUT.
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return jsonFromEnv()
	}

	if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
		v, _ := cmd.Flags().GetBool("json")
		return v
	}
	if v, _ := cmd.Root().PersistentFlags().GetBool("json"); v {
		return true
	}
	return jsonFromEnv()
}

func jsonFromEnv() bool {
	return strings.EqualFold(os.Getenv(EnvOutput), "json")
}

// OutputJSON marshals v and writes it to w
func OutputJSON(w io.Writer, v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
