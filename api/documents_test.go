package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/documents", r.URL.Path)

		var req CreateDocumentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Thesis", req.Title)
		assert.Equal(t, "article", req.TemplateID)

		w.Write([]byte(`{
			"id": "doc-1",
			"title": "Thesis",
			"content": "\\section{Intro}",
			"template_id": "article",
			"created_at": "2026-01-15T10:30:00Z",
			"updated_at": "2026-01-15T10:30:00Z",
			"tags": ["draft"],
			"is_public": false
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	doc, err := client.CreateDocument(context.Background(), &CreateDocumentRequest{
		Title:      "Thesis",
		Content:    "\\section{Intro}",
		TemplateID: "article",
		Tags:       []string{"draft"},
	})
	require.NoError(t, err)
	assert.Equal(t, "doc-1", doc.ID)
	assert.Equal(t, []string{"draft"}, doc.Tags)
	assert.Equal(t, 2026, doc.CreatedAt.Year())
}

func TestListDocuments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/documents", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("skip"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		w.Write([]byte(`[
			{"id": "a", "title": "First", "content": "", "created_at": "2026-01-01T00:00:00Z", "updated_at": "2026-01-02T00:00:00Z"},
			{"id": "b", "title": "Second", "content": "", "created_at": "2026-01-01T00:00:00Z", "updated_at": "2026-01-01T00:00:00Z"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	docs, err := client.ListDocuments(context.Background(), &ListDocumentsOptions{Skip: 10, Limit: 5})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "First", docs[0].Title)
}

func TestListDocumentsNoOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	docs, err := NewClient(server.URL, "").ListDocuments(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestGetDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/documents/doc-1", r.URL.Path)
		w.Write([]byte(`{"id": "doc-1", "title": "Thesis", "content": "hi", "created_at": "2026-01-01T00:00:00Z", "updated_at": "2026-01-01T00:00:00Z"}`))
	}))
	defer server.Close()

	doc, err := NewClient(server.URL, "").GetDocument(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "hi", doc.Content)
}

func TestUpdateDocumentPartial(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)

		var raw map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "New title", raw["title"])
		assert.NotContains(t, raw, "content")

		w.Write([]byte(`{"id": "doc-1", "title": "New title", "content": "old", "created_at": "2026-01-01T00:00:00Z", "updated_at": "2026-01-03T00:00:00Z"}`))
	}))
	defer server.Close()

	title := "New title"
	doc, err := NewClient(server.URL, "").UpdateDocument(context.Background(), "doc-1", &UpdateDocumentRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New title", doc.Title)
	assert.Equal(t, "old", doc.Content)
}

func TestDeleteDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/documents/doc-1", r.URL.Path)
		w.Write([]byte(`{"message": "deleted"}`))
	}))
	defer server.Close()

	err := NewClient(server.URL, "").DeleteDocument(context.Background(), "doc-1")
	assert.NoError(t, err)
}

func TestDeleteDocumentNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Document not found"}`))
	}))
	defer server.Close()

	err := NewClient(server.URL, "").DeleteDocument(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Document not found")
}
