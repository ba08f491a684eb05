// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509inventory scans a certificate store on disk and reports what is in it.
//
// The pipeline has four steps, each usable on its own:
//
//   - [Resolve] turns a file or directory path into a list of *.pem files.
//   - [Scanner] loads each file through a [Loader] and builds a [Record]
//     with a canonical subject, validity window and optional node id.
//   - [Inventory] keeps one record per subject (or node id), preferring the
//     most recently issued certificate.
//   - [Reporter] sorts the surviving records and renders them as a table,
//     markdown, CSV, JSON or YAML.
//
// Node ids follow the DataONE convention: a common name of the form
// urn:node:<NodeID>.
package x509inventory
