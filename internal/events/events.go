// Package events defines the audit events the services emit and the
// publishers that ship them.
package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	kafkax "github.com/ariefcatur/demo-backends/internal/kafka"
)

const (
	EventSnapshotServed = "SnapshotServed"
	TopicSnapshotServed = "demo.snapshot.served"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // websocket session id
	Payload       json.RawMessage `json:"payload"`
}

// SnapshotServedPayload records one websocket snapshot delivery.
type SnapshotServedPayload struct {
	Service    string `json:"service"`
	SessionID  string `json:"session_id"`
	Records    int    `json:"records"`
	RemoteAddr string `json:"remote_addr,omitempty"`
}

func NewSnapshotServed(producer, traceID string, p SnapshotServedPayload) Envelope {
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventSnapshotServed,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		TraceID:       traceID,
		CorrelationID: p.SessionID,
		Payload:       kafkax.MustMarshal(p),
	}
}
