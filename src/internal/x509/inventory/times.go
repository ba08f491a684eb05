// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inventory

import (
	"fmt"
	"strings"
	"time"
)

const (
	// generalizedTimeLayout is ASN.1 GeneralizedTime as printed by pyOpenSSL-style tools.
	generalizedTimeLayout = "20060102150405Z"
	// utcTimeLayout is ASN.1 UTCTime with a two-digit year.
	utcTimeLayout = "060102150405Z"
	// opensslTimeLayout is what `openssl x509 -startdate` prints, e.g. "Jan  2 15:04:05 2006 GMT".
	opensslTimeLayout = "Jan _2 15:04:05 2006 MST"
)

// ParseCertTime parses a certificate validity timestamp in any of the
// encodings certificate tools surface and returns it in UTC.
//
// Accepted forms:
//   - YYYYMMDDHHMMSSZ (GeneralizedTime)
//   - YYMMDDHHMMSSZ (UTCTime, years 50-99 are 19xx as RFC 5280 requires)
//   - Jan _2 15:04:05 2006 GMT (OpenSSL text output)
func ParseCertTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := time.ParseInLocation(generalizedTimeLayout, s, time.UTC); err == nil {
		return t, nil
	}

	if t, err := time.ParseInLocation(utcTimeLayout, s, time.UTC); err == nil {
		// Go pivots two-digit years at 69; RFC 5280 pivots at 50.
		if t.Year() >= 2050 {
			t = t.AddDate(-100, 0, 0)
		}
		return t, nil
	}

	if t, err := time.Parse(opensslTimeLayout, s); err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized certificate time %q", s)
}
