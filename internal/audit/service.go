// Package audit consumes SnapshotServed events and logs each delivery.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/ariefcatur/demo-backends/internal/events"
	kafkax "github.com/ariefcatur/demo-backends/internal/kafka"
)

type Service struct {
	Log *slog.Logger
}

// HandleSnapshotServed is the consumer handler. Events of other types are
// acknowledged and skipped. Undecodable messages come back as an error, which
// the consumer logs before moving on.
func (s *Service) HandleSnapshotServed(ctx context.Context, m kafkago.Message) error {
	var env events.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return fmt.Errorf("decode envelope at offset %d: %w", m.Offset, err)
	}
	if env.EventType != events.EventSnapshotServed {
		return nil
	}
	p, err := kafkax.UnwrapPayload[events.SnapshotServedPayload](env.Payload)
	if err != nil {
		return err
	}
	s.Log.InfoContext(ctx, "snapshot served",
		"event_id", env.EventID,
		"service", p.Service,
		"session", p.SessionID,
		"records", p.Records,
		"remote", p.RemoteAddr,
		"trace_id", env.TraceID,
		"occurred_at", env.OccurredAt,
	)
	return nil
}
