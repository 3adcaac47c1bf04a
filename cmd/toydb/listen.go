package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"

	"github.com/toysql/toydb/internal/config"
	"github.com/toysql/toydb/internal/engine"
	"github.com/toysql/toydb/internal/logging"
	"github.com/toysql/toydb/internal/network"
)

type ListenCommand struct {
	ShutDownCh <-chan struct{}
}

func (c *ListenCommand) Help() string {
	helpText := `
Usage: toydb listen [options]

Options:

	-config=""	Server configuration file (YAML)
`

	return strings.TrimSpace(helpText)
}

func (c *ListenCommand) Synopsis() string {
	return "Accepts client connections to interact with the database"
}

func (c *ListenCommand) Run(args []string) int {
	var configPath string

	cmdFlags := flag.NewFlagSet("listen", flag.ExitOnError)
	cmdFlags.StringVar(&configPath, "config", "", "config file")

	if err := cmdFlags.Parse(args); err != nil {
		return 1
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %s\n", err.Error())
			return 1
		}
		cfg = loaded
	}

	logger, closeFn := logging.SetupLogger(cfg.SeqURL, cfg.Level())
	defer closeFn()
	slog.SetDefault(logger)

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		slog.Error("failed to bind", "addr", cfg.Addr, "error", err)
		return 1
	}
	defer listener.Close()

	eng := engine.New()
	eng.AddObserver(engine.NewLoggingObserver())
	server := network.NewServer(eng)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	select {
	case <-c.ShutDownCh:
		slog.Info("shutting down")
		return 0
	case err := <-errCh:
		slog.Error("server stopped", "error", err)
		return 1
	}
}
