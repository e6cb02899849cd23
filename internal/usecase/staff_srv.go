package usecase

import (
	"context"
	"fmt"

	"hotel-management/internal/data/entity"
	"hotel-management/internal/data/repository"
	"hotel-management/internal/dto/request"
	"hotel-management/internal/dto/response"
	"hotel-management/pkg/utils"

	"go.uber.org/zap"
)

type StaffService interface {
	Create(ctx context.Context, req *request.StaffRequest) (*response.StaffResponse, error)
	GetByID(ctx context.Context, id int64) (*response.StaffResponse, error)
	List(ctx context.Context, search string) ([]response.StaffResponse, error)
	Update(ctx context.Context, id int64, req *request.StaffRequest) (*response.StaffResponse, error)
	Delete(ctx context.Context, id int64) error
}

type staffService struct {
	staffRepo repository.StaffRepository
	log       *zap.Logger
}

func NewStaffService(staffRepo repository.StaffRepository, log *zap.Logger) StaffService {
	return &staffService{
		staffRepo: staffRepo,
		log:       log.With(zap.String("service", "staff")),
	}
}

func (ss *staffService) Create(ctx context.Context, req *request.StaffRequest) (*response.StaffResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ss.log.Warn("Create staff validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	staff := &entity.Staff{
		Name:   req.Name,
		Phone:  req.Phone,
		Role:   req.Role,
		Salary: req.Salary,
	}
	if err := ss.staffRepo.Create(ctx, staff); err != nil {
		return nil, fmt.Errorf("create staff: %w", err)
	}

	resp := response.StaffToResponse(staff)
	return &resp, nil
}

func (ss *staffService) GetByID(ctx context.Context, id int64) (*response.StaffResponse, error) {
	staff, err := ss.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get staff: %w", err)
	}
	if staff == nil {
		return nil, fmt.Errorf("staff %d: %w", id, entity.ErrNotFound)
	}

	resp := response.StaffToResponse(staff)
	return &resp, nil
}

func (ss *staffService) List(ctx context.Context, search string) ([]response.StaffResponse, error) {
	members, err := ss.staffRepo.FindAll(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}

	items := make([]response.StaffResponse, len(members))
	for i, m := range members {
		items[i] = response.StaffToResponse(m)
	}
	return items, nil
}

func (ss *staffService) Update(ctx context.Context, id int64, req *request.StaffRequest) (*response.StaffResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ss.log.Warn("Update staff validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	staff := &entity.Staff{
		ID:     id,
		Name:   req.Name,
		Phone:  req.Phone,
		Role:   req.Role,
		Salary: req.Salary,
	}
	if err := ss.staffRepo.Update(ctx, staff); err != nil {
		return nil, fmt.Errorf("update staff: %w", err)
	}

	resp := response.StaffToResponse(staff)
	return &resp, nil
}

func (ss *staffService) Delete(ctx context.Context, id int64) error {
	if err := ss.staffRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	return nil
}
