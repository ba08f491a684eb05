// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface and provides two implementations: CLILogger for
// human-readable diagnostic output and JSONLogger for structured JSON lines that
// can be collected by log shippers. Both implementations filter leveled messages
// (warn, info, debug), are safe for concurrent use, and never write to the report
// stream on stdout.
package logger
