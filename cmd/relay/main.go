// Command relay is a development harness for the relay client core: it drives
// the same session, guard, and wizard orchestration a storefront shell would,
// against a configured backend.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/relaymarket/relay-go/internal/bootstrap"
)

func main() {
	logger := bootstrap.InitLogger()
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

// cmdContext carries the wired core into command handlers.
type cmdContext struct {
	core   *bootstrap.Core
	logger *slog.Logger
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	cc := &cmdContext{logger: logger}

	root := &cobra.Command{
		Use:           "relay",
		Short:         "relay marketplace client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bootstrap.LoadConfig()
			if err != nil {
				return err
			}
			core, err := bootstrap.NewCore(&cfg, logger)
			if err != nil {
				return err
			}
			cc.core = core

			// Session restore runs once per invocation; a stale or corrupted
			// credential leaves us cleanly unauthenticated.
			cc.core.Sessions.Bootstrap(cmd.Context())
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if cc.core != nil {
				return cc.core.Close()
			}
			return nil
		},
	}

	root.AddCommand(
		newLoginCmd(cc),
		newStaffLoginCmd(cc),
		newSignupCmd(cc),
		newLogoutCmd(cc),
		newWhoamiCmd(cc),
		newOrdersCmd(cc),
		newBidsCmd(cc),
		newBuyCmd(cc),
		newSellCmd(cc),
	)
	root.SetContext(context.Background())
	return root
}
