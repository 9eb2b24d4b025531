// Package cli is the terminal presentation layer of the license gate.
package cli

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/LerianStudio/license-gate/gate"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type commandContextKey struct{}

type commandContext struct {
	correlationID uuid.UUID
	startedAt     time.Time
}

// NewRootCommand builds the license-gate command tree around g.
func NewRootCommand(g *gate.Client) *cobra.Command {
	root := &cobra.Command{
		Use:   "license-gate",
		Short: "Validate a license and launch the licensed application",
		Long: `license-gate checks the cached credential against the online license
list and starts the licensed application once access is granted.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			info := commandContext{correlationID: uuid.New(), startedAt: time.Now()}
			cmd.SetContext(context.WithValue(cmd.Context(), commandContextKey{}, info))

			g.GetLogger().Debugf("command start %s (%s)", cmd.CommandPath(), info.correlationID)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
			if !ok {
				return
			}

			g.GetLogger().Debugf("command end %s (%s) in %dms", cmd.CommandPath(), info.correlationID, time.Since(info.startedAt).Milliseconds())
		},
	}

	root.AddCommand(
		newBootCmd(g),
		newValidateCmd(g),
		newStatusCmd(g),
		newLogoutCmd(g),
		newRevalidateCmd(g),
		newWhereCmd(g),
		newPickCmd(g),
		newSetTargetCmd(g),
		newLaunchCmd(g),
		newServeCmd(g),
	)

	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
