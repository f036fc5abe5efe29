// Package config loads, normalizes, and validates textkit configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and validates output options. Settings
// should always be obtained through this package so downstream code
// receives canonical values and clear validation errors.
package config
