// Package config loads, normalizes, and validates podclip configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads .env files, and honours environment
// fallbacks such as PODCLIP_DATA_DIR. The Config type centralizes every knob
// the API server and CLI need so the data directory, bind address, tenant
// tokens, and log settings are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
