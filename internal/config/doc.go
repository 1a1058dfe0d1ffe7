// Package config loads Pokedex settings.
//
// Resolution order, lowest to highest precedence:
//
//  1. Built-in defaults
//  2. ~/.config/pokedex/config.toml (or an explicit path); a missing file is not an error
//  3. POKEDEX_* environment variables
//  4. Command-line flags (applied by the caller)
//
// Example config.toml:
//
//	base_url = "https://pokeapi.co/api/v2"
//	log_file = "~/.local/state/pokedex/pokedex.log"   # "-" disables file logging
//	log_level = "info"
//
// Defaults:
//
//   - base_url: https://pokeapi.co/api/v2
//   - log_file: ~/.local/state/pokedex/pokedex.log
//   - log_level: info
//
// Tilde expansion is applied to log_file. Load returns errors for
// unreadable files, TOML syntax errors and malformed environment values.
package config
