// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the X.509 certificate inventory.
// It implements a Cobra-based CLI that scans a certificate store, keeps the newest
// certificate per subject or node id, and prints the result as a table, markdown,
// CSV, JSON or YAML. Settings come from flags and an optional JSON or YAML config
// file validated against an embedded JSON Schema. The package handles context
// cancellation and integrates with the logger package for diagnostics on stderr.
package cli
