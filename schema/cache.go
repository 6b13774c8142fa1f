package schema

import "encoding/json"

// Source tells where a fetch result came from.
type Source string

const (
	SourceNetwork Source = "network"
	SourceCache   Source = "cache"
	SourceNone    Source = "none"
)

// CacheEnvelope wraps every cached payload. Timestamp is in epoch milliseconds.
type CacheEnvelope struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
	Version   string          `json:"version"`
}
