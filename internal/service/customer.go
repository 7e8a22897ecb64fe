package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/storefront-api/internal/domain"
	"github.com/vietanh2810/storefront-api/internal/repository"
)

var ErrCustomerMobileExists = repository.ErrCustomerMobileExists

type DirectoryCustomerRepository interface {
	Create(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	Search(ctx context.Context, query string) ([]domain.Customer, error)
}

// CustomerService fronts the shared customer directory. It is not
// admin-scoped: all storefronts share one customer base.
type CustomerService struct {
	repo DirectoryCustomerRepository
}

func NewCustomerService(repo DirectoryCustomerRepository) *CustomerService {
	return &CustomerService{
		repo: repo,
	}
}

func (s *CustomerService) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	if !domain.IsValidMobile(customer.Mobile) {
		return domain.Customer{}, ErrInvalidMobile
	}

	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerMobileExists) {
			return domain.Customer{}, ErrCustomerMobileExists
		}

		return domain.Customer{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CustomerService) Search(ctx context.Context, query string) ([]domain.Customer, error) {
	customers, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Search -> %w", err)
	}

	return customers, nil
}
