package dto

import "encoding/json"

// Envelope is the response wrapper every API endpoint returns.
type Envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}
