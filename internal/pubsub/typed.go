package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event[T] binds a topic name to the payload type published on it.
type Event[T any] struct {
	name string
}

// NewEvent declares a typed event.
func NewEvent[T any](name string) Event[T] {
	return Event[T]{name: name}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.name
}

// Publish sends a typed event. The compiler ensures 'payload' matches 'T'.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", event.name, err)
	}
	return p.Publish(ctx, Message{Topic: event.name, Payload: data})
}

// Decode unmarshals a message received on the event's topic.
func (e Event[T]) Decode(msg Message) (T, error) {
	var payload T
	if msg.Topic != "" && msg.Topic != e.name {
		return payload, fmt.Errorf("message topic %q does not match event %q", msg.Topic, e.name)
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("decode %s payload: %w", e.name, err)
	}
	return payload, nil
}
