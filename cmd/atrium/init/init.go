// Package initcmder provides the init command for initializing a local .atrium
// directory in the current working directory.
package initcmder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/atriumhq/atrium/pkg/config"
)

const (
	dirName = ".atrium"
)

const initLongDesc string = `Initialize a new .atrium/ directory in the current working directory.

Creates a local .atrium/ directory with a default config.toml. The local
directory takes precedence over the default ~/.atrium/ directory for
storage, configuration, and other atrium operations.

This is useful for maintaining separate atrium state per project or directory.

Examples:
  atrium init`

const initShortDesc string = "Initialize a local .atrium/ directory"

func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: initShortDesc,
		Long:  initLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit()
		},
	}

	return cmd
}

func runInit() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		fmt.Printf("Already initialized: %s\n", dir)
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating .atrium directory: %w", err)
	}

	cfger, err := config.NewConfiger(dir)
	if err != nil {
		return fmt.Errorf("preparing config: %w", err)
	}
	if err := cfger.SaveConfig(config.NewDefaultConfig()); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	fmt.Printf("Initialized .atrium directory: %s\n", dir)
	return nil
}
