// Package config loads, normalizes, and validates endcard configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// CLI needs: run-root directory names, the overlay marker, the fixed render
// parameters, external binary names, and logging options.
//
// Always obtain settings through this package so downstream code receives
// sanitized values, canonical log formats, and clear validation errors.
package config
