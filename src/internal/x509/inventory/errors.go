// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrPathNotFound indicates that the certificate file or directory does not exist.
	ErrPathNotFound = errors.New("x509inventory: path not found")

	// ErrCertificateParse indicates that a certificate file could not be read or parsed.
	ErrCertificateParse = errors.New("x509inventory: failed to parse certificate")

	// ErrSubprocess indicates that the external certificate tool failed or
	// printed something that could not be understood.
	ErrSubprocess = errors.New("x509inventory: certificate tool failed")
)

// ParseError reports the file a certificate failed to load from.
// It matches [ErrCertificateParse] and the underlying cause under [errors.Is].
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to load certificate from %s: %v", e.Path, e.Err)
}

// Unwrap returns both the sentinel and the cause.
func (e *ParseError) Unwrap() []error { return []error{ErrCertificateParse, e.Err} }
