// Package config loads, normalizes, and validates Tooba configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the server and CLI need: the library root, media extensions, HTTP bind
// address, and log settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical extension lists, and clear validation errors.
package config
