// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/x509-cert-inventory/src/cli"
	"github.com/H0llyW00dzZ/x509-cert-inventory/src/logger"
	verpkg "github.com/H0llyW00dzZ/x509-cert-inventory/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	os.Exit(run(context.Background(), logger.NewCLILogger()))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, log logger.Logger) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("Error: %v", err)
			return 1
		}
		return 0
	case <-ctx.Done():
		log.Println("Operation cancelled by signal. Exiting...")
		// Give a running openssl child a moment to be reaped.
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
		return 130 // Standard exit code for SIGINT
	}
}
