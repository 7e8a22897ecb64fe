package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/storefront-api/internal/domain"
	"github.com/vietanh2810/storefront-api/internal/repository/dao"
)

var (
	ErrCustomerNotFound     = dao.ErrCustomerNotFound
	ErrCustomerMobileExists = dao.ErrCustomerMobileExists
)

type CustomerDAO interface {
	Insert(ctx context.Context, customer dao.Customer) (dao.Customer, error)
	FindByMobile(ctx context.Context, mobile string) (dao.Customer, error)
	FindByID(ctx context.Context, id uint) (dao.Customer, error)
	FindOrCreate(ctx context.Context, mobile, name string) (dao.Customer, error)
	Search(ctx context.Context, query string) ([]dao.Customer, error)
}

type CustomerRepository struct {
	dao CustomerDAO
}

func NewCustomerRepository(dao CustomerDAO) *CustomerRepository {
	return &CustomerRepository{
		dao: dao,
	}
}

func (r *CustomerRepository) daoToDomain(c dao.Customer) domain.Customer {
	return domain.Customer{
		ID:        c.ID,
		Mobile:    c.Mobile,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	created, err := r.dao.Insert(ctx, dao.Customer{
		Mobile: customer.Mobile,
		Name:   customer.Name,
	})
	if err != nil {
		return domain.Customer{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CustomerRepository) FindOrCreate(ctx context.Context, mobile, name string) (domain.Customer, error) {
	customer, err := r.dao.FindOrCreate(ctx, mobile, name)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("r.dao.FindOrCreate -> %w", err)
	}

	return r.daoToDomain(customer), nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (domain.Customer, error) {
	customer, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(customer), nil
}

func (r *CustomerRepository) Search(ctx context.Context, query string) ([]domain.Customer, error) {
	customersDAO, err := r.dao.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Search -> %w", err)
	}

	customers := make([]domain.Customer, len(customersDAO))
	for i, customerDAO := range customersDAO {
		customers[i] = r.daoToDomain(customerDAO)
	}

	return customers, nil
}
