package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/pokedex/internal/app"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <name|id>",
	Short: "Print one Pokemon record and exit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Lookup(cmd.Context(), opts, args[0], cmd.OutOrStdout())
	},
}
