package api

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

// SendChat sends a message to the writing assistant about a document.
// The response shape varies with the assistant backend, so only the
// fields we use are extracted.
func (c *Client) SendChat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	body, err := c.Post(ctx, "/api/chat", req)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}

	message := gjson.GetBytes(body, "message").String()
	if message == "" {
		return nil, fmt.Errorf("assistant returned an empty response")
	}

	resp := &ChatResponse{Message: message}
	for _, s := range gjson.GetBytes(body, "suggestions").Array() {
		resp.Suggestions = append(resp.Suggestions, s.String())
	}

	return resp, nil
}
