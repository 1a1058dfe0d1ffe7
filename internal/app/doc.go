// Package app is the composition root for Pokedex.
//
// # Overview
//
// Run and Lookup share one setup path:
//
//  1. Load configuration from ~/.config/pokedex/config.toml, then the
//     POKEDEX_* environment, then command-line overrides
//  2. Open the zap file logger (or a no-op logger when logging is disabled)
//  3. Build the PokeAPI client for the configured base URL
//
// Run then loads the saved theme, creates a state.Store and hands both to the
// Bubble Tea UI, blocking until the user quits or the context is cancelled.
// Lookup performs one search through a fresh Store and prints the record.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()      file + env
//	       ├─────> logging.New()      JSON log file
//	       ├─────> pokeapi.NewClient()
//	       ├─────> prefs.Load()       saved theme
//	       ├─────> state.NewStore()
//	       └─────> ui.Run()           blocks
//
// # Error Handling
//
// Setup failures (bad config, unwritable log directory, malformed base URL)
// are returned from Run and Lookup. A broken prefs file only logs a warning
// and falls back to the default theme. Lookup failures inside the TUI become
// notifications; from Lookup they are returned carrying the notice text.
package app
