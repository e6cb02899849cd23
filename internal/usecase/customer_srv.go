package usecase

import (
	"context"
	"fmt"

	"hotel-management/internal/data/entity"
	"hotel-management/internal/data/repository"
	"hotel-management/internal/dto/request"
	"hotel-management/internal/dto/response"
	"hotel-management/pkg/cache"
	"hotel-management/pkg/utils"

	"go.uber.org/zap"
)

type CustomerService interface {
	Create(ctx context.Context, req *request.CustomerRequest) (*response.CustomerResponse, error)
	GetByID(ctx context.Context, id int64) (*response.CustomerResponse, error)
	List(ctx context.Context, req *request.CustomerListRequest) (*response.PaginatedResponse[response.CustomerResponse], error)
	Update(ctx context.Context, id int64, req *request.CustomerRequest) (*response.CustomerResponse, error)
	Delete(ctx context.Context, id int64) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
	cache        cache.Cache
	log          *zap.Logger
}

func NewCustomerService(customerRepo repository.CustomerRepository, statsCache cache.Cache, log *zap.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		cache:        statsCache,
		log:          log.With(zap.String("service", "customer")),
	}
}

func (cs *customerService) Create(ctx context.Context, req *request.CustomerRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		cs.log.Warn("Create customer validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	customer := customerFromRequest(req)
	if err := cs.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	invalidateStats(ctx, cs.cache, cs.log)
	cs.log.Info("Customer created", zap.Int64("customer_id", customer.ID))

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (cs *customerService) GetByID(ctx context.Context, id int64) (*response.CustomerResponse, error) {
	customer, err := cs.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %d: %w", id, entity.ErrNotFound)
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (cs *customerService) List(ctx context.Context, req *request.CustomerListRequest) (*response.PaginatedResponse[response.CustomerResponse], error) {
	customers, err := cs.customerRepo.FindAll(ctx, req.Search, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	total, err := cs.customerRepo.Count(ctx, req.Search)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	items := make([]response.CustomerResponse, len(customers))
	for i, c := range customers {
		items[i] = response.CustomerToResponse(c)
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (cs *customerService) Update(ctx context.Context, id int64, req *request.CustomerRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		cs.log.Warn("Update customer validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	customer := customerFromRequest(req)
	customer.ID = id
	if err := cs.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	cs.log.Info("Customer updated", zap.Int64("customer_id", id))

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

// Delete also removes the customer's reservations and frees their rooms
func (cs *customerService) Delete(ctx context.Context, id int64) error {
	if err := cs.customerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}

	invalidateStats(ctx, cs.cache, cs.log)
	return nil
}

func customerFromRequest(req *request.CustomerRequest) *entity.Customer {
	return &entity.Customer{
		Name:        req.Name,
		Phone:       req.Phone,
		Nationality: req.Nationality,
		Gender:      req.Gender,
		DOB:         req.DOB,
		Address:     req.Address,
	}
}
