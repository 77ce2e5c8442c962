package events

import (
	"strconv"

	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/ariefcatur/demo-backends/internal/kafka"
)

type Publisher interface {
	Publish(ev Envelope)
}

// Discard is used when no brokers are configured.
type Discard struct{}

func (Discard) Publish(Envelope) {}

// KafkaPublisher keys every event by the producing service so one
// service's events stay ordered within a partition.
type KafkaPublisher struct {
	Producer *kafkax.Producer
}

func (k KafkaPublisher) Publish(ev Envelope) {
	k.Producer.Publish([]byte(ev.Producer), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(ev.EventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte(strconv.Itoa(ev.EventVersion))},
	)
}
