// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inventory

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"slices"
	"strconv"
	"strings"
)

// opensslArgs asks for the three fields in one run. RFC2253 name output is
// stable across OpenSSL releases and escapes separators inside values.
var opensslArgs = []string{"x509", "-noout", "-subject", "-startdate", "-enddate", "-nameopt", "RFC2253"}

// OpenSSLLoader delegates parsing to the openssl command line tool.
// The certificate is written to the child's stdin; nothing touches disk.
type OpenSSLLoader struct {
	// Binary is the openssl executable, looked up in PATH if it has no separator.
	Binary string
}

// NewOpenSSLLoader creates an OpenSSLLoader. An empty binary means "openssl".
func NewOpenSSLLoader(binary string) *OpenSSLLoader {
	if binary == "" {
		binary = "openssl"
	}
	return &OpenSSLLoader{Binary: binary}
}

// Parse runs openssl on data. The child is killed when ctx is done.
func (l *OpenSSLLoader) Parse(ctx context.Context, data []byte) (*Fields, error) {
	cmd := exec.CommandContext(ctx, l.Binary, opensslArgs...)
	cmd.Stdin = bytes.NewReader(data)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("%w: %s: %v", ErrSubprocess, l.Binary, err)
		}
		return nil, fmt.Errorf("%w: %s: %v: %s", ErrSubprocess, l.Binary, err, msg)
	}

	return parseOpenSSLOutput(out)
}

// parseOpenSSLOutput reads the subject=, notBefore= and notAfter= lines
// printed for opensslArgs. Line order does not matter.
func parseOpenSSLOutput(out []byte) (*Fields, error) {
	var (
		fields                      Fields
		haveSubject, haveNB, haveNA bool
	)

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case "subject":
			components, err := parseRFC2253(value)
			if err != nil {
				return nil, fmt.Errorf("%w: subject: %v", ErrSubprocess, err)
			}
			// RFC 2253 prints the last encoded component first.
			slices.Reverse(components)
			fields.Subject = components
			haveSubject = true
		case "notBefore":
			t, err := ParseCertTime(value)
			if err != nil {
				return nil, fmt.Errorf("%w: notBefore: %v", ErrSubprocess, err)
			}
			fields.NotBefore = t
			haveNB = true
		case "notAfter":
			t, err := ParseCertTime(value)
			if err != nil {
				return nil, fmt.Errorf("%w: notAfter: %v", ErrSubprocess, err)
			}
			fields.NotAfter = t
			haveNA = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubprocess, err)
	}

	if !haveSubject || !haveNB || !haveNA {
		return nil, fmt.Errorf("%w: unexpected output %q", ErrSubprocess, strings.TrimSpace(string(out)))
	}
	return &fields, nil
}

// parseRFC2253 splits an RFC 2253 distinguished name into components in
// the order they appear. Multi-valued RDNs ("+") are flattened.
func parseRFC2253(dn string) ([]Component, error) {
	if dn == "" {
		return nil, nil
	}

	var components []Component
	for _, part := range splitUnescaped(dn, ',', '+') {
		rawType, rawValue, ok := cutUnescaped(part, '=')
		if !ok {
			return nil, fmt.Errorf("malformed component %q", part)
		}
		value, err := unescapeRFC2253(strings.TrimSpace(rawValue))
		if err != nil {
			return nil, err
		}
		components = append(components, Component{Type: strings.TrimSpace(rawType), Value: value})
	}
	return components, nil
}

// splitUnescaped splits s at every separator not preceded by a backslash.
func splitUnescaped(s string, seps ...byte) []string {
	var (
		parts []string
		start int
	)
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\':
			i++
		case slices.Contains(seps, s[i]):
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// cutUnescaped is strings.Cut that ignores escaped separators.
func cutUnescaped(s string, sep byte) (before, after string, found bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case sep:
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

// unescapeRFC2253 resolves backslash escapes: \X for a special character
// and \HH for a raw byte, which OpenSSL uses for non-ASCII UTF-8.
func unescapeRFC2253(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 >= len(s) {
			return "", fmt.Errorf("dangling escape in %q", s)
		}
		if i+2 < len(s) {
			if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
				b.WriteByte(byte(v))
				i += 2
				continue
			}
		}
		b.WriteByte(s[i+1])
		i++
	}
	return b.String(), nil
}
