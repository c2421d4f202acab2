package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/teranos/parkour/logger"
)

// TagContext gives the command's context a short request ID and the command
// name as component, so log lines of one invocation can be grouped.
func TagContext(cmd *cobra.Command) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithRequestID(ctx, uuid.NewString()[:8])
	ctx = logger.WithComponent(ctx, cmd.Name())
	cmd.SetContext(ctx)
}

// verbosity returns the -v count, or 0 when the root has no such flag.
func verbosity(cmd *cobra.Command) int {
	v, err := cmd.Flags().GetCount("verbose")
	if err != nil {
		return 0
	}
	return v
}
