// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/makebyjordan/mbj/internal/platform/config"
	"github.com/makebyjordan/mbj/internal/platform/migration"
)

var schemaCmd = &cobra.Command{
	Use:     "schema",
	Short:   "Manage the relational schema",
	GroupID: "data",
}

var schemaUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending schema migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadSchema()
		if err != nil {
			return err
		}
		return migration.RunUp(cfg.DatabaseURL, newLogger(cfg.Debug))
	},
}

var schemaStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the applied schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadSchema()
		if err != nil {
			return err
		}

		status, err := migration.Version(cfg.DatabaseURL, newLogger(cfg.Debug))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch {
		case status.Empty:
			fmt.Fprintln(out, "no migrations applied")
		case status.Dirty:
			fmt.Fprintf(out, "version %d (dirty)\n", status.Version)
		default:
			fmt.Fprintf(out, "version %d\n", status.Version)
		}
		return nil
	},
}

func init() {
	schemaCmd.AddCommand(schemaUpCmd, schemaStatusCmd)
	rootCmd.AddCommand(schemaCmd)
}
