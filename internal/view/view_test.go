package view

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(format Format) (*Renderer, *bytes.Buffer) {
	r := NewRenderer(format, true)
	buf := &bytes.Buffer{}
	r.SetWriter(buf)
	return r, buf
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, ValidateFormat("table"))
	assert.NoError(t, ValidateFormat("json"))
	assert.NoError(t, ValidateFormat("plain"))
	assert.Error(t, ValidateFormat("xml"))
}

func TestRenderTableAligned(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)
	r.RenderTable([]string{"ID", "TITLE"}, [][]string{
		{"a", "Short"},
		{"doc-22", "Longer title"},
	})

	out := buf.String()
	assert.Contains(t, out, "ID      TITLE\n")
	assert.Contains(t, out, "a       Short\n")
	assert.Contains(t, out, "doc-22  Longer title\n")
}

func TestRenderTableJSON(t *testing.T) {
	r, buf := newTestRenderer(FormatJSON)
	r.RenderTable([]string{"ID", "Title"}, [][]string{{"a", "First"}})

	var result []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result, 1)
	assert.Equal(t, "First", result[0]["title"])
}

func TestRenderTableJSONEmpty(t *testing.T) {
	r, buf := newTestRenderer(FormatJSON)
	r.RenderTable([]string{"ID"}, nil)
	assert.Equal(t, "[]\n", buf.String())
}

func TestRenderTablePlain(t *testing.T) {
	r, buf := newTestRenderer(FormatPlain)
	r.RenderTable([]string{"ID", "TITLE"}, [][]string{{"a", "First"}})
	assert.Equal(t, "a\tFirst\n", buf.String())
}

func TestRenderKeyValue(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)
	r.RenderKeyValue("Title", "Thesis")
	assert.Equal(t, "Title: Thesis\n", buf.String())
}

func TestRenderKeyValueJSON(t *testing.T) {
	r, buf := newTestRenderer(FormatJSON)
	r.RenderKeyValue("title", `with "quotes"`)

	var result map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, `with "quotes"`, result["title"])
}

func TestStatusMessages(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)
	r.Success("saved")
	r.Warning("slow")
	r.Error("failed")

	out := buf.String()
	assert.Contains(t, out, "✓ saved")
	assert.Contains(t, out, "! slow")
	assert.Contains(t, out, "✗ failed")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly-10", Truncate("exactly-10", 10))
	assert.Equal(t, "very lo...", Truncate("very long string", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}
