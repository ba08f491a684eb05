// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
)

// Attribute is one attribute/value pair of a distinguished name.
// Type holds the short name (for example "CN" or "DC") when the OID is
// known, or the dotted OID otherwise.
type Attribute struct {
	Type  string
	Value string
}

// attributeNames maps attribute type OIDs to the short names OpenSSL prints.
var attributeNames = map[string]string{
	"2.5.4.3":                    "CN",
	"2.5.4.4":                    "SN",
	"2.5.4.5":                    "serialNumber",
	"2.5.4.6":                    "C",
	"2.5.4.7":                    "L",
	"2.5.4.8":                    "ST",
	"2.5.4.9":                    "street",
	"2.5.4.10":                   "O",
	"2.5.4.11":                   "OU",
	"2.5.4.12":                   "title",
	"2.5.4.17":                   "postalCode",
	"2.5.4.41":                   "name",
	"2.5.4.42":                   "GN",
	"2.5.4.43":                   "initials",
	"2.5.4.46":                   "dnQualifier",
	"2.5.4.65":                   "pseudonym",
	"0.9.2342.19200300.100.1.1":  "UID",
	"0.9.2342.19200300.100.1.25": "DC",
	"1.2.840.113549.1.9.1":       "emailAddress",
}

// AttributeName returns the short name for an attribute type OID.
func AttributeName(oid asn1.ObjectIdentifier) string {
	if name, ok := attributeNames[oid.String()]; ok {
		return name
	}
	return oid.String()
}

// SubjectAttributes returns the subject of cert as attribute/value pairs in
// the order they are encoded. Multi-valued RDNs are flattened in place.
func SubjectAttributes(cert *x509.Certificate) ([]Attribute, error) {
	var rdns pkix.RDNSequence
	rest, err := asn1.Unmarshal(cert.RawSubject, &rdns)
	if err != nil {
		return nil, fmt.Errorf("%w: subject: %v", ErrParseCertificate, err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: trailing data after subject", ErrParseCertificate)
	}

	var attrs []Attribute
	for _, rdn := range rdns {
		for _, atv := range rdn {
			attrs = append(attrs, Attribute{
				Type:  AttributeName(atv.Type),
				Value: attributeValue(atv.Value),
			})
		}
	}
	return attrs, nil
}

func attributeValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprint(v)
	}
}
