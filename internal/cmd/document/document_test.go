package document

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formal-tools/fml/api"
)

const testDoc = `{
	"id": "doc-1",
	"title": "Thesis",
	"content": "\\section{Intro}\nHello.",
	"created_at": "2026-01-15T10:30:00Z",
	"updated_at": "2026-01-16T09:00:00Z",
	"tags": ["draft"],
	"is_public": false
}`

func testClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return api.NewClient(server.URL, "")
}

func TestRunList(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/documents", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Write([]byte("[" + testDoc + "]"))
	})

	opts := &listOptions{limit: 10, output: "plain", noColor: true}
	require.NoError(t, runList(opts, client))
}

func TestRunListInvalidFormat(t *testing.T) {
	opts := &listOptions{output: "yaml"}
	err := runList(opts, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestRunView(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/documents/doc-1", r.URL.Path)
		w.Write([]byte(testDoc))
	})

	opts := &viewOptions{output: "plain", noColor: true}
	require.NoError(t, runView("doc-1", opts, client))
}

func TestRunViewRaw(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testDoc))
	})

	opts := &viewOptions{raw: true, output: "plain", noColor: true}
	require.NoError(t, runView("doc-1", opts, client))
}

func TestRunViewNotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Document not found"}`))
	})

	opts := &viewOptions{output: "plain", noColor: true}
	err := runView("missing", opts, client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Document not found")
}

func TestRunCreateFromStdin(t *testing.T) {
	var gotContent string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		gotContent = string(body)
		w.Write([]byte(testDoc))
	})

	opts := &createOptions{
		title:   "Thesis",
		output:  "plain",
		noColor: true,
		stdin:   strings.NewReader("\\section{Intro}"),
	}
	require.NoError(t, runCreate(opts, client))
	assert.Contains(t, gotContent, `\\section{Intro}`)
}

func TestRunCreateFromMarkdownFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("# Intro\n\nHello **world**.\n"), 0644))

	var gotContent string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotContent = string(body)
		w.Write([]byte(testDoc))
	})

	opts := &createOptions{
		title:   "Notes",
		file:    path,
		output:  "plain",
		noColor: true,
	}
	require.NoError(t, runCreate(opts, client))
	assert.Contains(t, gotContent, `\\section{Intro}`)
	assert.Contains(t, gotContent, `\\textbf{world}`)
}

func TestRunEditFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thesis.tex")
	require.NoError(t, os.WriteFile(path, []byte("\\section{New}"), 0644))

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/documents/doc-1", r.URL.Path)
		w.Write([]byte(testDoc))
	})

	opts := &editOptions{
		documentID: "doc-1",
		file:       path,
		output:     "plain",
		noColor:    true,
	}
	require.NoError(t, runEdit(opts, client))
}

func TestRunEditEmptyContent(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty content")
	})

	opts := &editOptions{
		documentID: "doc-1",
		output:     "plain",
		noColor:    true,
		stdin:      strings.NewReader("   \n"),
	}
	err := runEdit(opts, client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")
}

func TestRunDeleteForce(t *testing.T) {
	var deleted bool
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		deleted = true
		w.Write([]byte(`{"message": "deleted"}`))
	})

	opts := &deleteOptions{force: true, output: "plain", noColor: true}
	require.NoError(t, runDelete("doc-1", opts, client))
	assert.True(t, deleted)
}

func TestRunPreviewOnce(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "draft.tex")
	require.NoError(t, os.WriteFile(src, []byte("\\textbf{hi}"), 0644))

	out := filepath.Join(dir, "out.html")
	opts := &previewOptions{out: out, once: true, output: "plain", noColor: true}
	require.NoError(t, runPreview(src, opts))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<strong>hi</strong>")
}

func TestNewCmdDocumentSubcommands(t *testing.T) {
	cmd := NewCmdDocument()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.ElementsMatch(t, []string{"list", "view", "create", "edit", "delete", "preview"}, names)
}
