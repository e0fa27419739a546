package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// EventHandler processes one decoded ticket event.
type EventHandler func(ctx context.Context, event TicketEvent) error

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume reads ticket events until the context is canceled or the handler
// fails. Malformed payloads are logged and skipped so one bad message cannot
// wedge the group on the same offset forever.
func (c *Consumer) Consume(ctx context.Context, handler EventHandler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		event, err := decodeTicketEvent(msg.Value)
		if err != nil {
			log.Printf("skip message at offset %d: %v", msg.Offset, err)
			continue
		}

		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}

func decodeTicketEvent(data []byte) (TicketEvent, error) {
	var event TicketEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return TicketEvent{}, fmt.Errorf("decode ticket event: %w", err)
	}
	if event.Type == "" {
		return TicketEvent{}, fmt.Errorf("decode ticket event: missing type")
	}
	return event, nil
}
