package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format represents the output format type
type Format string

const (
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
	// FormatTable outputs data in table format
	FormatTable Format = "table"
)

const defaultValueKey = "value"

// StdioPath selects stdin or stdout in place of a file path.
const StdioPath = "-"

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// SupportedFormats returns a list of all supported output formats.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTable),
	}
}

// Writer serializes documents to an io.Writer. Writers from NewFileWriter
// own their file and must be closed.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

var _ Serializer = (*Writer)(nil)

// NewWriter returns a Writer for output, or stdout when output is nil.
// Unknown formats fall back to JSON.
func NewWriter(format Format, output io.Writer) *Writer {
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	if output == nil {
		output = os.Stdout
	}
	return &Writer{format: format, output: output}
}

// NewFileWriter creates (or truncates) the file at path and returns a
// Writer for it. An empty path or "-" selects stdout.
func NewFileWriter(format Format, path string) (*Writer, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == StdioPath {
		return NewWriter(format, os.Stdout), nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	w := NewWriter(format, f)
	w.closer = f
	return w, nil
}

// Close closes the underlying file, if any. Repeated calls return nil.
func (w *Writer) Close() error {
	c := w.closer
	w.closer = nil
	if c == nil {
		return nil
	}
	return c.Close()
}

// Serialize writes doc in the configured format. Writes are local, so ctx
// is not consulted.
func (w *Writer) Serialize(_ context.Context, doc any) error {
	switch w.format {
	case FormatYAML:
		enc := yaml.NewEncoder(w.output)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to serialize to YAML: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return w.serializeTable(doc)
	default:
		enc := json.NewEncoder(w.output)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to serialize to JSON: %w", err)
		}
		return nil
	}
}

// serializeTable prints one FIELD/VALUE row per scalar of the YAML form of
// doc, in document order. Nested keys are dotted and list items indexed,
// e.g. input.calories and scores[1].
func (w *Writer) serializeTable(doc any) error {
	var root yaml.Node
	if err := root.Encode(doc); err != nil {
		return fmt.Errorf("failed to serialize to table: %w", err)
	}

	rows := tableRows(nil, &root, "")
	if len(rows) == 0 {
		fmt.Fprintln(w.output, "<empty>")
		return nil
	}

	tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	fmt.Fprintln(tw, "-----\t-----")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.field, r.value)
	}
	return tw.Flush()
}

type tableRow struct {
	field, value string
}

func tableRows(rows []tableRow, n *yaml.Node, path string) []tableRow {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			rows = tableRows(rows, c, path)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if path != "" {
				key = path + "." + key
			}
			rows = tableRows(rows, n.Content[i+1], key)
		}
	case yaml.SequenceNode:
		for i, c := range n.Content {
			rows = tableRows(rows, c, path+"["+strconv.Itoa(i)+"]")
		}
	case yaml.AliasNode:
		rows = tableRows(rows, n.Alias, path)
	case yaml.ScalarNode:
		if path == "" {
			path = defaultValueKey
		}
		rows = append(rows, tableRow{field: path, value: n.Value})
	}
	return rows
}
