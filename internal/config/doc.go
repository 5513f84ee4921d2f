// Package config loads and saves the persistent application
// configuration from a per-user YAML file. Missing files fall back to
// defaults so the tool works out of the box against a local backend.
package config
