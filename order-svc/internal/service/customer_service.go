package service

import (
	"context"
	"errors"
	"strings"

	"foodie-hub/order-svc/internal/domain"
)

type CustomerService struct {
	repo CustomerRepository
}

func NewCustomerService(repo CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Create(ctx context.Context, customer *domain.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}
	if err := s.ensurePhoneFree(ctx, customer.Phone, 0); err != nil {
		return err
	}
	return s.repo.CreateCustomer(ctx, customer)
}

func (s *CustomerService) List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Customer], error) {
	customers, total, err := s.repo.ListCustomers(ctx, page)
	if err != nil {
		return domain.Page[domain.Customer]{}, err
	}
	return domain.NewPage(customers, total, page), nil
}

func (s *CustomerService) Get(ctx context.Context, id int) (*domain.Customer, error) {
	return s.repo.GetCustomer(ctx, id)
}

func (s *CustomerService) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	return s.repo.GetCustomerByPhone(ctx, phone)
}

func (s *CustomerService) Update(ctx context.Context, customer *domain.Customer) error {
	existing, err := s.repo.GetCustomer(ctx, customer.ID)
	if err != nil {
		return err
	}
	if err := validateCustomer(customer); err != nil {
		return err
	}
	if customer.Phone != existing.Phone {
		if err := s.ensurePhoneFree(ctx, customer.Phone, customer.ID); err != nil {
			return err
		}
	}
	return s.repo.UpdateCustomer(ctx, customer)
}

// Delete removes a customer. The store refuses when orders still reference it.
func (s *CustomerService) Delete(ctx context.Context, id int) error {
	return s.repo.DeleteCustomer(ctx, id)
}

func (s *CustomerService) Search(ctx context.Context, name string) ([]domain.Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.InvalidInput("name parameter is required")
	}
	return s.repo.SearchCustomers(ctx, name)
}

func (s *CustomerService) ensurePhoneFree(ctx context.Context, phone string, ownerID int) error {
	other, err := s.repo.GetCustomerByPhone(ctx, phone)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return err
	case other.ID != ownerID:
		return domain.InvalidState(domain.CodeDuplicatePhone, "customer with this phone number already exists")
	}
	return nil
}
