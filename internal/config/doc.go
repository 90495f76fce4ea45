// Package config loads and validates the lingualeap application
// configuration.
//
// Values are collected from three sources and merged in priority order
// (first non-zero value wins): environment variables, command-line flags,
// and an optional JSON file whose path is itself taken from the first two
// sources. Hard-coded defaults are applied last so that the application
// starts with no configuration at all.
package config
