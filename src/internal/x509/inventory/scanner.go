// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inventory

import (
	"context"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/H0llyW00dzZ/x509-cert-inventory/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-cert-inventory/src/logger"
)

// Scanner turns certificate files into [Record] values.
//
// Fields:
//   - Loader: extracts subject and validity from file contents.
//   - Subject: canonicalizes the subject; nil means [ReversedSubject].
//   - Recursive: scan directories recursively instead of one level.
//   - SkipInvalid: log and skip files that fail to load instead of
//     aborting the scan. Never applies to a single-file scan.
//   - Logger: receives per-file diagnostics; nil disables logging.
type Scanner struct {
	Loader      Loader
	Subject     SubjectFormatter
	Recursive   bool
	SkipInvalid bool
	Logger      logger.Logger
}

// ScanResult is the outcome of [Scanner.Scan].
type ScanResult struct {
	// Records in file order.
	Records []*Record
	// Single is true when the scanned path was a file rather than a directory.
	Single bool
	// Skipped collects the errors of files skipped under SkipInvalid.
	Skipped *multierror.Error
}

// NewScanner creates a Scanner with the default subject formatter.
func NewScanner(loader Loader, log logger.Logger) *Scanner {
	return &Scanner{
		Loader:  loader,
		Subject: ReversedSubject,
		Logger:  log,
	}
}

// Scan resolves path and parses every certificate file found.
//
// The first failure aborts the scan unless SkipInvalid is set. The context
// is checked between files.
func (s *Scanner) Scan(ctx context.Context, path string) (*ScanResult, error) {
	paths, single, err := Resolve(path, s.Recursive)
	if err != nil {
		return nil, err
	}
	s.debugf("found %d certificate file(s) under %s", len(paths), path)

	result := &ScanResult{
		Records: make([]*Record, 0, len(paths)),
		Single:  single,
	}
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := s.ParseFile(ctx, p)
		if err != nil {
			if !s.SkipInvalid || single {
				return nil, err
			}
			s.warnf("skipping: %v", err)
			result.Skipped = multierror.Append(result.Skipped, err)
			continue
		}
		result.Records = append(result.Records, rec)
	}
	return result, nil
}

// ParseFile loads one certificate file. Any failure is returned as a
// [*ParseError] naming path.
func (s *Scanner) ParseFile(ctx context.Context, path string) (*Record, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()         // Reset the buffer to prevent data leaks
		gc.Default.Put(buf) // Return the buffer to the pool for reuse
	}()

	if err := readInto(buf, path); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	fields, err := s.Loader.Parse(ctx, buf.Bytes())
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	format := s.Subject
	if format == nil {
		format = ReversedSubject
	}
	subject := format(fields.Subject)

	rec := &Record{
		Path:    path,
		Subject: subject,
		Created: fields.NotBefore.UTC(),
		Expires: fields.NotAfter.UTC(),
		NodeID:  NodeIDFromSubject(subject),
	}
	s.debugf("%s: subject=%q created=%s expires=%s", path, rec.Subject, rec.Created.Format("2006-01-02"), rec.Expires.Format("2006-01-02"))
	return rec, nil
}

func readInto(buf gc.Buffer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = buf.ReadFrom(f)
	return err
}

func (s *Scanner) debugf(format string, v ...any) {
	if s.Logger != nil {
		s.Logger.Debugf(format, v...)
	}
}

func (s *Scanner) warnf(format string, v ...any) {
	if s.Logger != nil {
		s.Logger.Warnf(format, v...)
	}
}
