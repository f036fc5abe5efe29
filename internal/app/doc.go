// Package app wires application dependencies for the CLI.
//
// It bundles the loaded configuration with the concrete document extractor,
// exposing them via the App struct for commands to use.
package app
