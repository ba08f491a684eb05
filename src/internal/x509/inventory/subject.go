// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inventory

import (
	"fmt"
	"slices"
	"strings"
)

// NodeIDPrefix marks a common name as a node identifier.
const NodeIDPrefix = "urn:node:"

// Subject orders accepted by [SubjectFormatterFor].
const (
	SubjectOrderReversed = "reversed"
	SubjectOrderEncoded  = "encoded"
)

// SubjectFormatter turns subject components, in encoding order, into the
// canonical subject string used for display and deduplication.
type SubjectFormatter func(components []Component) string

// ReversedSubject is the default formatter. Each component becomes
// NAME=value with the attribute name upper-cased, the component order is
// reversed and the result is joined with ",". For the usual DataONE layout
// DC=org, DC=dataone, CN=urn:node:X this yields "CN=urn:node:X,DC=dataone,DC=org".
//
// The reversal assumes issuers encode the most significant component first.
// Use [EncodedSubject] for stores where that does not hold.
func ReversedSubject(components []Component) string {
	parts := subjectParts(components)
	slices.Reverse(parts)
	return strings.Join(parts, ",")
}

// EncodedSubject formats like [ReversedSubject] but keeps the encoding order.
func EncodedSubject(components []Component) string {
	return strings.Join(subjectParts(components), ",")
}

func subjectParts(components []Component) []string {
	parts := make([]string, 0, len(components))
	for _, c := range components {
		parts = append(parts, strings.ToUpper(c.Type)+"="+c.Value)
	}
	return parts
}

// SubjectFormatterFor returns the formatter for a subject order name.
// An empty name selects [SubjectOrderReversed].
func SubjectFormatterFor(order string) (SubjectFormatter, error) {
	switch order {
	case "", SubjectOrderReversed:
		return ReversedSubject, nil
	case SubjectOrderEncoded:
		return EncodedSubject, nil
	default:
		return nil, fmt.Errorf("unknown subject order %q (want %s or %s)", order, SubjectOrderReversed, SubjectOrderEncoded)
	}
}

// NodeIDFromSubject returns the node id carried by a canonical subject, or
// "" when there is none. Only the first component is considered, and its
// value must start with [NodeIDPrefix].
func NodeIDFromSubject(subject string) string {
	first, _, _ := strings.Cut(subject, ",")
	_, value, ok := strings.Cut(first, "=")
	if !ok || !strings.HasPrefix(value, NodeIDPrefix) {
		return ""
	}
	return value
}
