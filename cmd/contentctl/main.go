// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

// Command contentctl is the operator CLI of the content API: legacy data
// migration, schema migrations, registry inspection and admin password
// hashing. Configuration comes from the same environment variables the API
// reads.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/makebyjordan/mbj/internal/platform/constants"
)

var rootCmd = &cobra.Command{
	Use:           "contentctl <command>",
	Short:         "Operator tooling for the portfolio content API",
	Version:       constants.AppVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: "data", Title: "Data:"},
		&cobra.Group{ID: "inspect", Title: "Inspection:"},
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger returns the JSON logger used by every command.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", "contentctl"))
}
