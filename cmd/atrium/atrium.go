// Package atriumcmder
package atriumcmder

import (
	"github.com/spf13/cobra"

	configcmder "github.com/atriumhq/atrium/cmd/atrium/config"
	initcmder "github.com/atriumhq/atrium/cmd/atrium/init"
	servecmder "github.com/atriumhq/atrium/cmd/atrium/serve"
	versioncmder "github.com/atriumhq/atrium/cmd/version"
)

const atriumLongDesc string = `Atrium is a decision log for your agents.

Agents emit decision events (questions, choices, notes, status changes) and
Atrium reduces them into per-session decision graphs you can query and replay.

Run the service using:
  atrium serve         Run the API server (and MCP endpoint)`

const atriumShortDesc string = "Atrium - Agent Decision Graphs"

func NewAtriumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "atrium",
		Short: atriumShortDesc,
		Long:  atriumLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override the .atrium/ directory location")

	// Add subcommands
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(initcmder.NewInitCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
