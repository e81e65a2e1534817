package customers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sangkips/customer-directory-api/internal/domains/customers/models"
)

const (
	EventCustomerCreated = "customer.created"
	EventCustomerDeleted = "customer.deleted"
)

var (
	ErrMissingFields    = errors.New("name, email, and address are required")
	ErrCustomerNotFound = errors.New("customer not found")
)

// EventPublisher announces customer lifecycle changes.
type EventPublisher interface {
	PublishCustomerEvent(eventType string, customerID int32) error
}

type Service struct {
	repo   Repository
	events EventPublisher
}

// NewService wires the repository and an optional event publisher (nil disables events).
func NewService(repo Repository, events EventPublisher) *Service {
	return &Service{repo: repo, events: events}
}

type CreateCustomerRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address string  `json:"address"`
	State   *string `json:"state"`
	ZipCode *string `json:"zipCode"`
	// ZipCodeAlt accepts the column spelling used in responses.
	ZipCodeAlt *string `json:"zip_code"`
}

func (req CreateCustomerRequest) Validate() error {
	if req.Name == "" || req.Email == "" || req.Address == "" {
		return ErrMissingFields
	}
	return nil
}

func (req CreateCustomerRequest) zipCode() *string {
	if req.ZipCode != nil {
		return req.ZipCode
	}
	return req.ZipCodeAlt
}

// Create validates req and inserts exactly one row.
func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (models.Customer, error) {
	if err := req.Validate(); err != nil {
		return models.Customer{}, err
	}

	customer, err := s.repo.CreateCustomer(ctx, models.CreateCustomerParams{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		State:   stringToNullString(req.State),
		ZipCode: stringToNullString(req.zipCode()),
	})
	if err != nil {
		return models.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	s.publish(EventCustomerCreated, customer.ID)
	return customer, nil
}

func (s *Service) List(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// Delete removes the customer with the given id. ErrCustomerNotFound is
// returned when no row matched.
func (s *Service) Delete(ctx context.Context, id int32) error {
	affected, err := s.repo.DeleteCustomer(ctx, id)
	if err != nil {
		return fmt.Errorf("delete customer %d: %w", id, err)
	}
	if affected == 0 {
		return ErrCustomerNotFound
	}

	s.publish(EventCustomerDeleted, id)
	return nil
}

// publish is best effort; the row is already committed.
func (s *Service) publish(eventType string, id int32) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishCustomerEvent(eventType, id); err != nil {
		log.Warn().Err(err).Str("event", eventType).Int32("customer_id", id).Msg("failed to publish customer event")
	}
}

func stringToNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
