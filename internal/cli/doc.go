// Package cli translates command-line arguments and the optional TOML config
// file into a validated app.Config.
package cli
