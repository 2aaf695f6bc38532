package usecase

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hwelikannage/pos-api/internal/application/dto"
	"github.com/hwelikannage/pos-api/internal/domain"
	"github.com/hwelikannage/pos-api/internal/domain/entity"
	"github.com/hwelikannage/pos-api/internal/domain/repository"
)

// Shared format validator for field rules (E.164 phone, role sets).
var validate = validator.New()

// CustomerUseCase CRUD operations for customers.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create validates and persists a new customer.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer := &entity.Customer{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Address:   in.Address,
		Phone:     in.Phone,
	}
	if err := uc.validateCustomer(customer, 0); err != nil {
		return nil, err
	}
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID returns one customer or NotFound.
func (uc *CustomerUseCase) GetByID(id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NotFound("customer", id)
	}
	return toCustomerResponse(customer), nil
}

// List returns a page of customers.
func (uc *CustomerUseCase) List(limit, offset int) ([]dto.CustomerResponse, error) {
	customers, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Update applies the non-nil fields and persists the customer.
func (uc *CustomerUseCase) Update(id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NotFound("customer", id)
	}
	if in.FirstName != nil {
		customer.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		customer.LastName = *in.LastName
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if err := uc.validateCustomer(customer, id); err != nil {
		return nil, err
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete removes a customer or fails with NotFound.
func (uc *CustomerUseCase) Delete(id int64) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.NotFound("customer", id)
	}
	return uc.repo.Delete(id)
}

// validateCustomer enforces the field rules plus phone uniqueness. selfID
// excludes the record being updated from the uniqueness check.
func (uc *CustomerUseCase) validateCustomer(c *entity.Customer, selfID int64) error {
	if c.FirstName == "" {
		return domain.Validationf("First name can not be empty")
	}
	if c.LastName == "" {
		return domain.Validationf("Last name can not be empty")
	}
	if err := validate.Var(c.Phone, "required,e164"); err != nil {
		return domain.Validationf("Phone number must be in international format, e.g. +94771234567")
	}
	existing, err := uc.repo.GetByPhone(c.Phone)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.Validationf("Phone number is already in use")
	}
	return nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Address:   c.Address,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
