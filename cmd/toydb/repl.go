package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/toysql/toydb/internal/config"
	"github.com/toysql/toydb/internal/engine"
	"github.com/toysql/toydb/internal/logging"
	"github.com/toysql/toydb/internal/repl"
)

type ReplCommand struct{}

func (c *ReplCommand) Help() string {
	helpText := `
Usage: toydb repl [options]

Options:

	-config=""	Configuration file (YAML)
`

	return strings.TrimSpace(helpText)
}

func (c *ReplCommand) Synopsis() string {
	return "Starts an interactive session against an in-memory database"
}

func (c *ReplCommand) Run(args []string) int {
	var configPath string

	cmdFlags := flag.NewFlagSet("repl", flag.ExitOnError)
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

	repl.Start(engine.New())
	return 0
}
