// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-style helpers for cross-platform command-line behavior.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for usage strings
//
// The cli package uses it for the cobra Use line and examples, so help output
// shows the name the binary was actually invoked as:
//
//   - Linux/macOS: "/usr/bin/x509-cert-inventory" → "x509-cert-inventory"
//   - Windows: "C:\bin\x509-cert-inventory.exe" → "x509-cert-inventory"
//   - Fallback: empty os.Args → [FallbackName]
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
