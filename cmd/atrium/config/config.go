// Package configcmder provides the config command for managing persistent
// atrium configuration stored in the .atrium/ directory.
package configcmder

import (
	"github.com/spf13/cobra"
)

const configLongDesc string = `Manage persistent atrium configuration.

Configuration is stored as config.toml in the .atrium/ directory and provides
default values for command flags. CLI flags always take precedence over
config file values.

Keys use dotted notation matching the TOML section structure:
  storage.driver, storage.sqlite_path, storage.postgres_dsn,
  api.listen, mcp.enabled,
  stream.enabled, stream.brokers, stream.topic

Use subcommands to get, set, or list configuration values:
  atrium config set <key> <value>    Set a configuration value
  atrium config get <key>            Get a configuration value
  atrium config list                 List all configuration values

Examples:
  atrium config set storage.driver postgres
  atrium config set storage.postgres_dsn postgres://localhost/atrium
  atrium config get api.listen
  atrium config list`

const configShortDesc string = "Manage persistent atrium configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
