package orders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/nshubina/airport-api/internal/domain"
	"github.com/nshubina/airport-api/internal/kafka"
	"github.com/nshubina/airport-api/internal/repository"
)

type UseCase interface {
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	Get(ctx context.Context, caller Caller, id int64) (*domain.Order, error)
	List(ctx context.Context, caller Caller, params domain.ListParams) ([]domain.Order, error)
	Delete(ctx context.Context, caller Caller, id int64) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Caller identifies the authenticated user an order operation runs as.
type Caller struct {
	UserID  int64
	Email   string
	IsStaff bool
}

type TicketInput struct {
	FlightID int64
	Row      int
	Seat     int
}

type CreateOrderInput struct {
	Caller  Caller
	Tickets []TicketInput
}

type OrderServiceOption func(*OrderService)

func WithNotificationsTopic(topic string) OrderServiceOption {
	return func(s *OrderService) {
		s.notificationsTopic = topic
	}
}

type OrderService struct {
	orders    repository.OrderRepository
	flights   repository.FlightRepository
	airplanes repository.AirplaneRepository

	producer           Producer
	ordersTopic        string
	notificationsTopic string
}

func NewOrderService(orders repository.OrderRepository, flights repository.FlightRepository,
	airplanes repository.AirplaneRepository, producer Producer, ordersTopic string,
	opts ...OrderServiceOption) *OrderService {
	s := &OrderService{
		orders:      orders,
		flights:     flights,
		airplanes:   airplanes,
		producer:    producer,
		ordersTopic: ordersTopic,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// validateTickets checks seat geometry against each flight's airplane and
// rejects duplicate seats within the same request. Duplicates against already
// sold tickets are caught by the database unique constraint on insert.
func (s *OrderService) validateTickets(ctx context.Context, tickets []TicketInput) error {
	if len(tickets) == 0 {
		return domain.NewValidationError("tickets", "order must contain at least one ticket")
	}

	seen := make(map[TicketInput]struct{}, len(tickets))
	for _, t := range tickets {
		if _, dup := seen[t]; dup {
			return domain.ErrSeatTaken
		}
		seen[t] = struct{}{}

		flight, err := s.flights.GetByID(ctx, t.FlightID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("flight", fmt.Sprintf("unknown flight %d", t.FlightID))
			}
			return err
		}
		airplane, err := s.airplanes.GetByID(ctx, flight.AirplaneID)
		if err != nil {
			return err
		}

		verr := &domain.ValidationError{}
		if t.Row < 1 || t.Row > airplane.Rows {
			verr.Add("row", fmt.Sprintf("row number must be in available range: (1, rows): (1, %d)", airplane.Rows))
		}
		if t.Seat < 1 || t.Seat > airplane.SeatsInRow {
			verr.Add("seat", fmt.Sprintf("seat number must be in available range: (1, seats_in_row): (1, %d)", airplane.SeatsInRow))
		}
		if !verr.Empty() {
			return verr
		}
	}
	return nil
}

func (s *OrderService) Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	if err := s.validateTickets(ctx, input.Tickets); err != nil {
		return nil, err
	}

	order := &domain.Order{
		Number: uuid.NewString(),
		UserID: input.Caller.UserID,
	}
	for _, t := range input.Tickets {
		order.Tickets = append(order.Tickets, domain.Ticket{
			Row:      t.Row,
			Seat:     t.Seat,
			FlightID: t.FlightID,
		})
	}

	if err := s.orders.CreateWithTickets(ctx, order); err != nil {
		return nil, err
	}

	s.publishOrderEvents(ctx, "order_created", order, input.Caller.Email)
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, caller Caller, id int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Non-staff callers only ever see their own orders.
	if !caller.IsStaff && order.UserID != caller.UserID {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context, caller Caller, params domain.ListParams) ([]domain.Order, error) {
	userID := caller.UserID
	if caller.IsStaff {
		userID = 0 // staff sees everything
	}
	return s.orders.List(ctx, userID, params)
}

// Delete removes the order and all of its tickets.
func (s *OrderService) Delete(ctx context.Context, caller Caller, id int64) error {
	order, err := s.Get(ctx, caller, id)
	if err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, order.ID); err != nil {
		return err
	}
	s.publishOrderEvents(ctx, "order_cancelled", order, caller.Email)
	return nil
}

// publishOrderEvents emits one event per ticket. Publish failures are logged
// and never fail the request.
func (s *OrderService) publishOrderEvents(ctx context.Context, eventType string, order *domain.Order, email string) {
	if s.producer == nil || s.ordersTopic == "" {
		return
	}
	for _, t := range order.Tickets {
		event := kafka.TicketEvent{
			Type:        eventType,
			OrderNumber: order.Number,
			FlightID:    t.FlightID,
			Row:         t.Row,
			Seat:        t.Seat,
			Email:       email,
			CreatedAt:   order.CreatedAt,
		}
		if err := s.producer.Publish(ctx, s.ordersTopic, order.Number, event); err != nil {
			log.Printf("publish %s event for order %s: %v", eventType, order.Number, err)
			continue
		}
		if s.notificationsTopic != "" {
			if err := s.producer.Publish(ctx, s.notificationsTopic, order.Number, event); err != nil {
				log.Printf("publish %s notification for order %s: %v", eventType, order.Number, err)
			}
		}
	}
}

var _ UseCase = (*OrderService)(nil)
