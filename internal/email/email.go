package email

import (
	"context"
	"log"

	"github.com/nshubina/airport-api/internal/kafka"
)

// Sender delivers order notifications. The transport is a stub that logs the
// message; wiring a real SMTP relay is a deployment concern.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.TicketEvent) error {
	log.Printf("send email to %s about %s (order %s, flight %d, row %d seat %d)",
		event.Email, event.Type, event.OrderNumber, event.FlightID, event.Row, event.Seat)
	return nil
}
