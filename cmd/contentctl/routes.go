// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/makebyjordan/mbj/internal/registry"
)

var routesCmd = &cobra.Command{
	Use:     "routes",
	Short:   "Print the content route registry",
	GroupID: "inspect",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		routes, err := registry.Load()
		if err != nil {
			return err
		}
		return printRoutes(cmd.OutOrStdout(), routes.All(), format)
	},
}

func init() {
	routesCmd.Flags().String("format", "table", "output format: table, json or yaml")
	rootCmd.AddCommand(routesCmd)
}

func printRoutes(out io.Writer, routes []registry.RouteConfig, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(routes)

	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(routes); err != nil {
			return err
		}
		return encoder.Close()

	case "table":
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPATH\tKIND\tIMAGE\tREQUIRED")
		for _, route := range routes {
			kind := "collection"
			if route.Singleton {
				kind = "singleton"
			}
			image := "-"
			if route.HasImage {
				image = route.ImageFolder + "/" + route.ImageField
			}
			required := strings.Join(route.RequiredFields, ",")
			if required == "" {
				required = "-"
			}
			fmt.Fprintf(w, "%s\t/api/%s\t%s\t%s\t%s\n", route.Name, route.APIPath, kind, image, required)
		}
		return w.Flush()

	default:
		return fmt.Errorf("unknown format %q (must be table, json or yaml)", format)
	}
}
