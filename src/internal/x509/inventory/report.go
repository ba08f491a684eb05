// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inventory

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"
)

// Format is a report output format.
type Format string

const (
	// FormatTable is an aligned plain-text table.
	FormatTable Format = "table"
	// FormatMarkdown is a markdown table.
	FormatMarkdown Format = "markdown"
	// FormatCSV is comma separated values with a header row.
	FormatCSV Format = "csv"
	// FormatJSON is an object keyed by the dedup key.
	FormatJSON Format = "json"
	// FormatYAML is the JSON document as YAML.
	FormatYAML Format = "yaml"
)

// Formats lists every supported format name.
func Formats() []string {
	return []string{string(FormatTable), string(FormatMarkdown), string(FormatCSV), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatMarkdown, FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want one of %s)", s, strings.Join(Formats(), ", "))
	}
}

// dateLayout is how tables print expiration dates.
const dateLayout = "2006-01-02"

// csvHeader is the column order of CSV reports.
var csvHeader = []string{"node_id", "valid", "expire_days", "create_date", "expire_date", "dn", "path"}

// Entry is the serialized form of a [Record] in CSV, JSON and YAML reports.
// NodeID is null when the certificate carries no node id.
type Entry struct {
	NodeID     *string   `json:"node_id" yaml:"node_id"`
	Valid      bool      `json:"valid" yaml:"valid"`
	ExpireDays int       `json:"expire_days" yaml:"expire_days"`
	CreateDate time.Time `json:"create_date" yaml:"create_date"`
	ExpireDate time.Time `json:"expire_date" yaml:"expire_date"`
	DN         string    `json:"dn" yaml:"dn"`
	Path       string    `json:"path" yaml:"path"`
}

// NewEntry computes the serialized form of rec relative to now.
func NewEntry(rec *Record, now time.Time) Entry {
	e := Entry{
		Valid:      rec.Valid(now),
		ExpireDays: rec.ExpireDays(now),
		CreateDate: rec.Created,
		ExpireDate: rec.Expires,
		DN:         rec.Subject,
		Path:       rec.Path,
	}
	if rec.HasNodeID() {
		id := rec.NodeID
		e.NodeID = &id
	}
	return e
}

// Reporter renders an [Inventory].
//
// Fields:
//   - Format: output format; empty means [FormatTable].
//   - Days: tables show days until expiration instead of the date.
//   - NodesOnly: tables show the node id column instead of the subject.
//   - Now: reference time for day counts; zero means time.Now.
type Reporter struct {
	Format    Format
	Days      bool
	NodesOnly bool
	Now       time.Time
}

// Render sorts the inventory by key and writes the report to w.
// The inventory itself is not modified.
func (r *Reporter) Render(w io.Writer, inv *Inventory, key SortKey) error {
	records := inv.Records()
	SortRecords(records, key)

	now := r.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	switch r.Format {
	case FormatTable, "":
		return r.renderTable(w, records, now, false)
	case FormatMarkdown:
		return r.renderTable(w, records, now, true)
	case FormatCSV:
		return renderCSV(w, records, now)
	case FormatJSON:
		return renderJSON(w, inv, records, now)
	case FormatYAML:
		return renderYAML(w, inv, records, now)
	default:
		return fmt.Errorf("unknown output format %q", r.Format)
	}
}

// Header returns the table column titles for the reporter's settings.
func (r *Reporter) Header() []string {
	if r.NodesOnly {
		return []string{"Expires", "NodeId", "FileName"}
	}
	return []string{"Expires", "Subject", "FileName"}
}

func (r *Reporter) row(rec *Record, now time.Time) []string {
	expires := rec.Expires.Format(dateLayout)
	if r.Days {
		expires = strconv.Itoa(rec.ExpireDays(now))
	}
	name := rec.Subject
	if r.NodesOnly {
		name = rec.NodeID
	}
	return []string{expires, name, rec.Path}
}

func (r *Reporter) renderTable(w io.Writer, records []*Record, now time.Time, markdown bool) error {
	var rend tw.Renderer
	if markdown {
		rend = renderer.NewMarkdown(tw.Rendition{Streaming: true})
	} else {
		rend = renderer.NewBlueprint(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{BetweenRows: tw.Off, BetweenColumns: tw.Off},
				Lines:      tw.Lines{ShowHeaderLine: tw.Off},
			},
		})
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(rend),
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
	)
	table.Header(r.Header())

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, r.row(rec, now))
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func renderCSV(w io.Writer, records []*Record, now time.Time) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, rec := range records {
		e := NewEntry(rec, now)
		var nodeID string
		if e.NodeID != nil {
			nodeID = *e.NodeID
		}
		row := []string{
			nodeID,
			strconv.FormatBool(e.Valid),
			strconv.Itoa(e.ExpireDays),
			e.CreateDate.Format(time.RFC3339),
			e.ExpireDate.Format(time.RFC3339),
			e.DN,
			e.Path,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// document keys every record by its dedup key. Both encoders emit map keys
// in sorted order.
func document(inv *Inventory, records []*Record, now time.Time) map[string]Entry {
	doc := make(map[string]Entry, len(records))
	for _, rec := range records {
		doc[inv.Key(rec)] = NewEntry(rec, now)
	}
	return doc
}

func renderJSON(w io.Writer, inv *Inventory, records []*Record, now time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(document(inv, records, now))
}

func renderYAML(w io.Writer, inv *Inventory, records []*Record, now time.Time) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document(inv, records, now)); err != nil {
		return err
	}
	return enc.Close()
}
