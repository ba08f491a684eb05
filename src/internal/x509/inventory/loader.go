// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inventory

import (
	"context"
	"fmt"
	"time"

	x509certs "github.com/H0llyW00dzZ/x509-cert-inventory/src/internal/x509/certs"
)

// Component is one attribute/value pair of a subject distinguished name.
type Component = x509certs.Attribute

// Fields is what a [Loader] extracts from a certificate.
// Subject components are in encoding order.
type Fields struct {
	Subject   []Component
	NotBefore time.Time
	NotAfter  time.Time
}

// Loader extracts [Fields] from raw certificate bytes.
//
// Implementations must not retain data after Parse returns; callers reuse
// the underlying buffer.
type Loader interface {
	Parse(ctx context.Context, data []byte) (*Fields, error)
}

// Loader kinds accepted by [NewLoader].
const (
	LoaderNative  = "native"
	LoaderOpenSSL = "openssl"
)

// NewLoader returns the loader for kind. opensslBinary is only used by
// [LoaderOpenSSL]; empty means "openssl" from PATH.
func NewLoader(kind, opensslBinary string) (Loader, error) {
	switch kind {
	case "", LoaderNative:
		return NewNativeLoader(), nil
	case LoaderOpenSSL:
		return NewOpenSSLLoader(opensslBinary), nil
	default:
		return nil, fmt.Errorf("unknown loader %q (want %s or %s)", kind, LoaderNative, LoaderOpenSSL)
	}
}

// NativeLoader parses certificates in-process with crypto/x509.
// Besides PEM it accepts DER and PKCS7 input.
type NativeLoader struct{ decoder *x509certs.Certificate }

// NewNativeLoader creates a NativeLoader.
func NewNativeLoader() *NativeLoader {
	return &NativeLoader{decoder: x509certs.New()}
}

// Parse decodes data and returns its subject and validity window.
func (l *NativeLoader) Parse(_ context.Context, data []byte) (*Fields, error) {
	cert, err := l.decoder.Decode(data)
	if err != nil {
		return nil, err
	}

	subject, err := x509certs.SubjectAttributes(cert)
	if err != nil {
		return nil, err
	}

	return &Fields{
		Subject:   subject,
		NotBefore: cert.NotBefore.UTC(),
		NotAfter:  cert.NotAfter.UTC(),
	}, nil
}
