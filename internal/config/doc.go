// Package config provides configuration loading, merging, and validation
// facilities for portalctl.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry point is [GetStructuredConfig]; [BindFlags] wires the flag
// source to a pflag.FlagSet such as the one owned by a cobra command.
package config
