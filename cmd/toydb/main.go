package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/mitchellh/cli"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		args = append(args, "repl")
	}

	commands := map[string]cli.CommandFactory{
		"listen": func() (cli.Command, error) {
			return &ListenCommand{
				ShutDownCh: makeShutdownCh(),
			}, nil
		},
		"repl": func() (cli.Command, error) {
			return &ReplCommand{}, nil
		},
	}

	toydbCLI := &cli.CLI{
		Args:     args,
		Commands: commands,
		HelpFunc: cli.BasicHelpFunc("toydb"),
	}

	exitCode, err := toydbCLI.Run()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}

	os.Exit(exitCode)
}

func makeShutdownCh() <-chan struct{} {
	shutdownCh := make(chan struct{})
	signalCh := make(chan os.Signal, 1)

	signal.Notify(signalCh, os.Interrupt)

	go func() {
		defer close(shutdownCh)
		<-signalCh
	}()

	return shutdownCh
}
