package customers

import (
	"context"

	"github.com/sangkips/customer-directory-api/internal/domains/customers/models"
)

type Repository interface {
	CreateCustomer(ctx context.Context, customer models.CreateCustomerParams) (models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	DeleteCustomer(ctx context.Context, id int32) (int64, error)
}

type repository struct {
	q *models.Queries
}

func NewRepository(db models.DBTX) Repository {
	return &repository{q: models.New(db)}
}

func (r *repository) CreateCustomer(ctx context.Context, customer models.CreateCustomerParams) (models.Customer, error) {
	return r.q.CreateCustomer(ctx, customer)
}

func (r *repository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return r.q.ListCustomers(ctx)
}

func (r *repository) DeleteCustomer(ctx context.Context, id int32) (int64, error) {
	return r.q.DeleteCustomer(ctx, id)
}
