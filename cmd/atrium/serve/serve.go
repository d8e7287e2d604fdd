// Package servecmder provides the serve command for running the Atrium service.
package servecmder

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/atriumhq/atrium/api"
	"github.com/atriumhq/atrium/api/mcp"
	"github.com/atriumhq/atrium/pkg/config"
	"github.com/atriumhq/atrium/pkg/dotdir"
	"github.com/atriumhq/atrium/pkg/eventstream"
	"github.com/atriumhq/atrium/pkg/eventstream/kafka"
	"github.com/atriumhq/atrium/pkg/eventstream/nop"
	"github.com/atriumhq/atrium/pkg/logger"
	"github.com/atriumhq/atrium/pkg/reducer"
	"github.com/atriumhq/atrium/pkg/storage"
	"github.com/atriumhq/atrium/pkg/storage/inmemory"
	"github.com/atriumhq/atrium/pkg/storage/postgres"
	"github.com/atriumhq/atrium/pkg/storage/sqlite"
)

// serveFlags is the flag registry for the serve command. Names, shorthands,
// and viper keys live here so they cannot drift.
var serveFlags = config.FlagSet{
	config.FlagAPIListen:     {Name: "listen", Shorthand: "l", ViperKey: "api.listen", Description: "Address for API server to listen on"},
	config.FlagStorageDriver: {Name: "storage-driver", ViperKey: "storage.driver", Description: "Storage backend (sqlite, postgres, inmemory)"},
	config.FlagSQLite:        {Name: "sqlite", Shorthand: "s", ViperKey: "storage.sqlite_path", Description: "Path to SQLite database (default: .atrium/atrium.sqlite)"},
	config.FlagPostgresDSN:   {Name: "postgres-dsn", ViperKey: "storage.postgres_dsn", Description: "Postgres connection string"},
	config.FlagMCPEnabled:    {Name: "mcp", ViperKey: "mcp.enabled", Description: "Mount the MCP endpoint under /mcp"},
	config.FlagStreamEnabled: {Name: "stream", ViperKey: "stream.enabled", Description: "Publish ingestion events to Kafka"},
	config.FlagStreamBrokers: {Name: "stream-brokers", ViperKey: "stream.brokers", Description: "Kafka broker addresses"},
	config.FlagStreamTopic:   {Name: "stream-topic", ViperKey: "stream.topic", Description: "Kafka topic for ingestion events"},
}

var serveFlagKeys = []string{
	config.FlagAPIListen,
	config.FlagStorageDriver,
	config.FlagSQLite,
	config.FlagPostgresDSN,
	config.FlagMCPEnabled,
	config.FlagStreamEnabled,
	config.FlagStreamBrokers,
	config.FlagStreamTopic,
}

type ServeCommander struct {
	listen        string
	storageDriver string
	sqlitePath    string
	postgresDSN   string
	mcpEnabled    bool
	streamEnabled bool
	streamBrokers []string
	streamTopic   string
	configDir     string
	debug         bool
	logger        *zap.Logger
}

const serveLongDesc string = `Run the Atrium service.

Starts the HTTP API for ingesting decision events and querying session
graphs. When MCP is enabled (the default), the MCP endpoint is mounted on
the same listener under /mcp.

Configuration resolves in order: flags, ATRIUM_ environment variables,
config.toml in the .atrium/ directory, built-in defaults.`

const serveShortDesc string = "Run the Atrium service"

func NewServeCmd() *cobra.Command {
	cmder := &ServeCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}
			cmder.configDir, _ = cmd.Flags().GetString("config-dir")

			v, err := config.InitViper(cmder.configDir)
			if err != nil {
				return err
			}
			config.BindRegisteredFlags(v, cmd, serveFlags, serveFlagKeys)
			cmder.fromViper(v)

			return cmder.run()
		},
	}

	config.AddStringFlag(cmd, serveFlags, config.FlagAPIListen, &cmder.listen)
	config.AddStringFlag(cmd, serveFlags, config.FlagStorageDriver, &cmder.storageDriver)
	config.AddStringFlag(cmd, serveFlags, config.FlagSQLite, &cmder.sqlitePath)
	config.AddStringFlag(cmd, serveFlags, config.FlagPostgresDSN, &cmder.postgresDSN)
	config.AddBoolFlag(cmd, serveFlags, config.FlagMCPEnabled, &cmder.mcpEnabled)
	config.AddBoolFlag(cmd, serveFlags, config.FlagStreamEnabled, &cmder.streamEnabled)
	config.AddStringSliceFlag(cmd, serveFlags, config.FlagStreamBrokers, &cmder.streamBrokers)
	config.AddStringFlag(cmd, serveFlags, config.FlagStreamTopic, &cmder.streamTopic)

	return cmd
}

func (c *ServeCommander) fromViper(v *viper.Viper) {
	c.listen = v.GetString("api.listen")
	c.storageDriver = v.GetString("storage.driver")
	c.sqlitePath = v.GetString("storage.sqlite_path")
	c.postgresDSN = v.GetString("storage.postgres_dsn")
	c.mcpEnabled = v.GetBool("mcp.enabled")
	c.streamEnabled = v.GetBool("stream.enabled")
	c.streamBrokers = v.GetStringSlice("stream.brokers")
	c.streamTopic = v.GetString("stream.topic")
}

func (c *ServeCommander) run() error {
	c.logger = logger.NewLogger(c.debug)
	defer c.logger.Sync()

	driver, err := c.newStorageDriver()
	if err != nil {
		return err
	}
	defer driver.Close()

	publisher, err := c.newPublisher()
	if err != nil {
		return err
	}
	defer publisher.Close()

	red := reducer.New(driver, publisher, c.logger)

	apiConfig := api.Config{
		ListenAddr: c.listen,
	}
	server := api.NewServer(apiConfig, driver, red, c.logger)

	if c.mcpEnabled {
		mcpServer, err := mcp.NewServer(mcp.Config{
			Storer:  driver,
			Reducer: red,
			Logger:  c.logger,
		})
		if err != nil {
			return fmt.Errorf("creating MCP server: %w", err)
		}
		server.MountMCP(mcpServer.Handler())
		c.logger.Info("MCP endpoint mounted", zap.String("path", "/mcp"))
	}

	errChan := make(chan error, 1)
	go func() {
		if err := server.Run(); err != nil {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		c.logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		return server.Shutdown()
	}
}

func (c *ServeCommander) newStorageDriver() (storage.Driver, error) {
	switch c.storageDriver {
	case "sqlite", "":
		path := c.sqlitePath
		if path == "" {
			target, err := dotdir.NewManager().Target(c.configDir)
			if err != nil {
				return nil, fmt.Errorf("resolving sqlite path: %w", err)
			}
			path = filepath.Join(target, "atrium.sqlite")
		}
		driver, err := sqlite.NewDriver(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite driver: %w", err)
		}
		c.logger.Info("using SQLite storage", zap.String("path", path))
		return driver, nil

	case "postgres":
		if c.postgresDSN == "" {
			return nil, fmt.Errorf("postgres storage requires storage.postgres_dsn")
		}
		driver, err := postgres.NewDriver(context.Background(), c.postgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres driver: %w", err)
		}
		c.logger.Info("using Postgres storage")
		return driver, nil

	case "inmemory":
		c.logger.Info("using in-memory storage")
		return inmemory.NewDriver(), nil

	default:
		return nil, fmt.Errorf("unknown storage driver: %q (available: sqlite, postgres, inmemory)", c.storageDriver)
	}
}

func (c *ServeCommander) newPublisher() (eventstream.Publisher, error) {
	if !c.streamEnabled {
		return nop.NewPublisher(), nil
	}
	if len(c.streamBrokers) == 0 {
		return nil, fmt.Errorf("stream publishing requires stream.brokers")
	}

	c.logger.Info("publishing ingestion events to Kafka",
		zap.Strings("brokers", c.streamBrokers),
		zap.String("topic", c.streamTopic),
	)
	return kafka.NewPublisher(c.streamBrokers, c.streamTopic), nil
}
