// Package dto holds the JSON shapes of the REST API. Field names are
// snake_case on the wire; entities stay free of serialization tags.
package dto

// Error is the body of every non-2xx response. Detail is optional and
// carries diagnostic text, such as an upstream message.
type Error struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
