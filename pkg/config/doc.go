// Package config loads server configuration.
//
// Settings are resolved in layers, each overriding the one before:
//
//  1. Default values from Default.
//  2. An optional YAML file.
//  3. Environment variables (PORT, DATABASE_URL, JWT_SECRET, ...).
//  4. Command-line flags, applied by the cli package.
//
// Validate must be called after the last layer is applied.
package config
