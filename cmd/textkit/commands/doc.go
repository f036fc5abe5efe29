// Package commands defines the textkit CLI and wires dependencies for subcommands.
//
// Commands
//
//   - freq         Count word frequencies in a document or stdin
//   - palindrome   Check whether text is a palindrome
//   - caesar       Encrypt or decrypt text with a Caesar cipher
//   - config       Manage the configuration file
//
// # Implementation
//
// The root command loads the configuration file and builds a dependency
// graph (config, document extractor) before any subcommand runs, so
// handlers share one app context. Commands marked with the skipConfigLoad
// annotation opt out, letting config init repair a broken file.
package commands
