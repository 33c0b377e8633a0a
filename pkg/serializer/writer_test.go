package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type testConfig struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	err := w.Serialize(context.Background(), testConfig{Name: "lunch", Value: 330})
	require.NoError(t, err)

	var got testConfig
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "lunch", got.Name)
	assert.InDelta(t, 330, got.Value, 1e-9)
	assert.Contains(t, buf.String(), "\n  \"name\"", "expected indented output")
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	err := w.Serialize(context.Background(), testConfig{Name: "dinner", Value: 1.5})
	require.NoError(t, err)

	var got testConfig
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testConfig{Name: "dinner", Value: 1.5}, got)
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	doc := struct {
		Count  int               `yaml:"count"`
		Scores []float64         `yaml:"scores"`
		Meta   map[string]string `yaml:"metadata"`
	}{
		Count:  2,
		Scores: []float64{330, 115},
		Meta:   map[string]string{"seed": "42"},
	}
	require.NoError(t, w.Serialize(context.Background(), doc))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"FIELD", "VALUE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"count", "2"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"scores[0]", "330"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"scores[1]", "115"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"metadata.seed", "42"}, strings.Fields(lines[5]))
}

func TestWriter_SerializeTableScalar(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(context.Background(), 330.5))
	assert.Contains(t, buf.String(), "value  330.5")
}

func TestWriter_SerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(context.Background(), struct{}{}))
	assert.Equal(t, "<empty>\n", buf.String())
}

func TestWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)
	require.NoError(t, w.Serialize(context.Background(), map[string]int{"a": 1}))
	assert.JSONEq(t, `{"a":1}`, buf.String())
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("xml"), true},
		{Format(""), true},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsUnknown())
		})
	}
}

func TestSupportedFormats(t *testing.T) {
	assert.ElementsMatch(t, []string{"json", "yaml", "table"}, SupportedFormats())
}

func TestNewFileWriter(t *testing.T) {
	t.Run("writes to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		w, err := NewFileWriter(FormatJSON, path)
		require.NoError(t, err)
		require.NoError(t, w.Serialize(context.Background(), testConfig{Name: "x", Value: 2}))
		require.NoError(t, w.Close())
		require.NoError(t, w.Close(), "second close must be a no-op")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"x","value":2}`, string(data))
	})

	t.Run("dash selects stdout", func(t *testing.T) {
		w, err := NewFileWriter(FormatJSON, "-")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, w.output)
		assert.NoError(t, w.Close())
	})

	t.Run("unwritable path is an error", func(t *testing.T) {
		w, err := NewFileWriter(FormatJSON, filepath.Join(t.TempDir(), "missing", "out.json"))
		require.Error(t, err)
		assert.Nil(t, w)
	})
}
