package api

import (
	"fmt"
	"strings"
	"time"
)

// Time wraps time.Time to handle the service's timestamp formats.
// The backend emits RFC 3339 with a zone for stored documents and a
// bare fractional-seconds form for freshly created ones.
type Time struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		parsed, err = time.Parse("2006-01-02T15:04:05.999999", s)
		if err != nil {
			return fmt.Errorf("failed to parse time %q: %w", s, err)
		}
	}

	t.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// ErrorResponse is the error payload returned by the service.
type ErrorResponse struct {
	StatusCode int    `json:"-"`
	Detail     string `json:"detail"`
}

// Error implements the error interface.
func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Detail)
}

// Document is a LaTeX document stored in the service.
type Document struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	TemplateID string            `json:"template_id,omitempty"`
	CreatedAt  Time              `json:"created_at"`
	UpdatedAt  Time              `json:"updated_at"`
	Tags       []string          `json:"tags,omitempty"`
	IsPublic   bool              `json:"is_public"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Template is a starting-point document with placeholder content.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Content     string `json:"content"`
	IsBuiltin   bool   `json:"is_builtin"`
}

// Category groups templates.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateDocumentRequest is the payload for creating a document.
type CreateDocumentRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	TemplateID string   `json:"template_id,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	IsPublic   bool     `json:"is_public"`
}

// UpdateDocumentRequest is the payload for updating a document.
// Nil fields are left unchanged by the service.
type UpdateDocumentRequest struct {
	Title   *string  `json:"title,omitempty"`
	Content *string  `json:"content,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// ChatRequest asks the writing assistant about a document. Context is
// a free-form object; the service validates it as a JSON dict, so a
// bare string is rejected.
type ChatRequest struct {
	DocumentID string                 `json:"document_id"`
	Message    string                 `json:"message"`
	Context    map[string]interface{} `json:"context,omitempty"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}
