package customers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sangkips/customer-directory-api/internal/domains/customers/models"
	"github.com/sangkips/customer-directory-api/internal/handlers"
)

const (
	msgMissingFields = "Name, email, and address are required"
	msgFetchFailed   = "Error fetching customers"
	msgCreateFailed  = "Error adding customer"
	msgDeleteFailed  = "Error deleting customer"
	msgNotFound      = "Customer not found"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterCustomerRoutes(r chi.Router) {
	r.Get("/", handlers.Handle(h.listCustomers))
	r.Post("/", handlers.Handle(h.createCustomer))
	r.Delete("/{id}", handlers.Handle(h.deleteCustomer))
}

// CustomerResponse is the API response format for customers
type CustomerResponse struct {
	ID      int32   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address string  `json:"address"`
	State   *string `json:"state"`
	ZipCode *string `json:"zip_code"`
}

func toCustomerResponse(customer models.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:      customer.ID,
		Name:    customer.Name,
		Email:   customer.Email,
		Address: customer.Address,
	}

	if customer.State.Valid {
		resp.State = &customer.State.String
	}

	if customer.ZipCode.Valid {
		resp.ZipCode = &customer.ZipCode.String
	}

	return resp
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) error {
	customers, err := h.svc.List(r.Context())
	if err != nil {
		return handlers.NewError(http.StatusInternalServerError, msgFetchFailed, err)
	}

	response := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		response[i] = toCustomerResponse(customer)
	}

	handlers.RespondWithJSON(w, http.StatusOK, response)
	return nil
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) error {
	var req CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return handlers.NewError(http.StatusBadRequest, msgMissingFields, err)
	}

	customer, err := h.svc.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			return handlers.NewError(http.StatusBadRequest, msgMissingFields, err)
		}
		return handlers.NewError(http.StatusInternalServerError, msgCreateFailed, err)
	}

	handlers.RespondWithJSON(w, http.StatusCreated, toCustomerResponse(customer))
	return nil
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) error {
	idStr := chi.URLParam(r, "id")
	// An id that cannot be a row key matches nothing.
	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil {
		return handlers.NewError(http.StatusNotFound, msgNotFound, err)
	}

	if err := h.svc.Delete(r.Context(), int32(id)); err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return handlers.NewError(http.StatusNotFound, msgNotFound, err)
		}
		return handlers.NewError(http.StatusInternalServerError, msgDeleteFailed, err)
	}

	handlers.RespondNoContent(w)
	return nil
}
