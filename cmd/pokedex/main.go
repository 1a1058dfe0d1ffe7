// Package main is the entry point for the Pokedex terminal client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/pokedex/internal/app"
)

var opts app.Options

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "Look up Pokemon and build a party",
	Long: `Pokedex searches the PokeAPI catalog by name or number and lets you
capture up to six results into a party.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(cmd.Context(), opts)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/pokedex/config.toml)")
	flags.StringVar(&opts.BaseURL, "base-url", "", "PokeAPI base URL override")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(lookupCmd)
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "pokedex: %v\n", err)
		return 1
	}
	return 0
}
