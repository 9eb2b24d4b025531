package cli

import (
	"github.com/LerianStudio/license-gate/gate"
	"github.com/LerianStudio/license-gate/middleware"
	"github.com/spf13/cobra"
)

func newBootCmd(g *gate.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "boot",
		Short: "Run the startup sequence and print the screen to show",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), g.Boot(cmd.Context()))
		},
	}
}

func newValidateCmd(g *gate.Client) *cobra.Command {
	var email, key string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check credentials online and cache them on success",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), g.Validate(cmd.Context(), email, key))
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "license email")
	cmd.Flags().StringVar(&key, "key", "", "product key")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func newStatusCmd(g *gate.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the cached credential without going online",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), g.CachedStatus(cmd.Context()))
		},
	}
}

func newLogoutCmd(g *gate.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the cached credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), g.Logout(cmd.Context()))
		},
	}
}

func newRevalidateCmd(g *gate.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "revalidate",
		Short: "Re-check the cached credential online now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), g.RevalidateNow(cmd.Context()))
		},
	}
}

func newWhereCmd(g *gate.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "where",
		Short: "Show where the application would be launched from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), g.ResolveTarget(cmd.Context()))
		},
	}
}

func newPickCmd(g *gate.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose the application executable interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			picker := NewPromptPicker(cmd.InOrStdin(), cmd.ErrOrStderr())
			return printJSON(cmd.OutOrStdout(), g.PickTarget(cmd.Context(), picker))
		},
	}
}

func newSetTargetCmd(g *gate.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "set-target <path>",
		Short: "Save the application executable path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), g.SetTargetHint(cmd.Context(), args[0]))
		},
	}
}

func newLaunchCmd(g *gate.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "launch",
		Short: "Run the startup sequence and start the application when licensed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			decision := g.EnsureLicensed(cmd.Context())
			if !decision.Licensed() {
				return printJSON(cmd.OutOrStdout(), decision)
			}

			return printJSON(cmd.OutOrStdout(), g.Launch(cmd.Context()))
		},
	}
}

func newServeCmd(g *gate.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the gate commands over HTTP on the loopback interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return middleware.Wrap(g).Serve(cmd.Context())
		},
	}
}
