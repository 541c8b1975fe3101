// Package main is the entry point for the relaunch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/runoshun/relaunch/internal/app"
	"github.com/runoshun/relaunch/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Create dependency injection container
	container := app.New()
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
