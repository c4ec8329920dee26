package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// ListTemplates returns available templates, optionally filtered by
// category.
func (c *Client) ListTemplates(ctx context.Context, category string) ([]Template, error) {
	path := "/api/templates"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	body, err := c.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	var templates []Template
	if err := json.Unmarshal(body, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse template list: %w", err)
	}

	return templates, nil
}

// GetTemplate fetches a single template by ID.
func (c *Client) GetTemplate(ctx context.Context, id string) (*Template, error) {
	body, err := c.Get(ctx, "/api/templates/"+url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get template %s: %w", id, err)
	}

	var tmpl Template
	if err := json.Unmarshal(body, &tmpl); err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	return &tmpl, nil
}

// ListCategories returns all template categories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	body, err := c.Get(ctx, "/api/categories")
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	var wrapper struct {
		Categories []Category `json:"categories"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to parse category list: %w", err)
	}

	return wrapper.Categories, nil
}
