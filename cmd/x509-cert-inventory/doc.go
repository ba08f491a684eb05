// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// x509-cert-inventory is a command-line tool for reporting the expiration
// dates of the certificates in a certificate store.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-cert-inventory/cmd/x509-cert-inventory@latest
//
// # Usage
//
//	x509-cert-inventory [PATH] [FLAGS]
//
// # Flags
//
//	    --cert-file         Certificate file or directory (same as PATH)
//	-t, --test-ca           Default to the test store instead of production
//	-m, --mns-only          Only node certificates, keyed by node id
//	    --sort-by           Sort order: expires (default) or name
//	-n, --sort-name         Same as --sort-by name
//	-d, --days              Days until expiration instead of the date
//	-c, --csv               Same as --output csv
//	-o, --output            table, markdown, csv, json or yaml
//	-r, --recursive         Scan directories recursively
//	    --skip-invalid      Log and skip unreadable certificates
//	    --loader            native (default) or openssl
//	    --openssl           openssl binary for the openssl loader
//	    --subject-order     reversed (default) or encoded
//	-l, --log-level         Repeat for more detail: -l info, -ll debug
//	    --log-format        text (default) or json
//	    --config            YAML or JSON config file
//	-v, --version           Print the version
//
// Every flag may also be spelled with underscores, e.g. --mns_only.
//
// # Examples
//
// List node certificates of the production store, soonest expiry first:
//
//	x509-cert-inventory -m
//
// Days remaining for every node of the test store, by node id:
//
//	x509-cert-inventory -t -m -n -d
//
// Export a whole tree as JSON, skipping broken files:
//
//	x509-cert-inventory -r -o json --skip-invalid /etc/dataone/certs > inventory.json
//
// Exit status is 0 on success, 1 on error and 130 when interrupted.
package main
