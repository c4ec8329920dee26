package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// ListDocumentsOptions controls pagination for ListDocuments.
type ListDocumentsOptions struct {
	Skip  int
	Limit int
}

// CreateDocument creates a new document.
func (c *Client) CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*Document, error) {
	body, err := c.Post(ctx, "/api/documents", req)
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return &doc, nil
}

// ListDocuments returns documents ordered by last update.
func (c *Client) ListDocuments(ctx context.Context, opts *ListDocumentsOptions) ([]Document, error) {
	path := "/api/documents"
	if opts != nil {
		params := url.Values{}
		if opts.Skip > 0 {
			params.Set("skip", strconv.Itoa(opts.Skip))
		}
		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}
		if len(params) > 0 {
			path += "?" + params.Encode()
		}
	}

	body, err := c.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	var docs []Document
	if err := json.Unmarshal(body, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse document list: %w", err)
	}

	return docs, nil
}

// GetDocument fetches a single document by ID.
func (c *Client) GetDocument(ctx context.Context, id string) (*Document, error) {
	body, err := c.Get(ctx, "/api/documents/"+url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s: %w", id, err)
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return &doc, nil
}

// UpdateDocument applies a partial update to a document.
func (c *Client) UpdateDocument(ctx context.Context, id string, req *UpdateDocumentRequest) (*Document, error) {
	body, err := c.Put(ctx, "/api/documents/"+url.PathEscape(id), req)
	if err != nil {
		return nil, fmt.Errorf("failed to update document %s: %w", id, err)
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return &doc, nil
}

// DeleteDocument removes a document.
func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	if _, err := c.Delete(ctx, "/api/documents/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", id, err)
	}
	return nil
}
