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

// RoomService manages room records. Status is never written here.
type RoomService interface {
	Create(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error)
	GetByID(ctx context.Context, id int64) (*response.RoomResponse, error)
	List(ctx context.Context, req *request.RoomListRequest) ([]response.RoomResponse, error)
	Update(ctx context.Context, id int64, req *request.RoomRequest) (*response.RoomResponse, error)
	Delete(ctx context.Context, id int64) error
}

type roomService struct {
	roomRepo repository.RoomRepository
	cache    cache.Cache
	log      *zap.Logger
}

func NewRoomService(roomRepo repository.RoomRepository, statsCache cache.Cache, log *zap.Logger) RoomService {
	return &roomService{
		roomRepo: roomRepo,
		cache:    statsCache,
		log:      log.With(zap.String("service", "room")),
	}
}

func (rs *roomService) Create(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		rs.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	room := &entity.Room{
		RoomNo:   req.RoomNo,
		RoomType: req.RoomType,
		Bed:      req.Bed,
		Price:    req.Price,
	}
	if err := rs.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	invalidateStats(ctx, rs.cache, rs.log)
	rs.log.Info("Room created", zap.Int64("room_id", room.ID), zap.String("room_no", room.RoomNo))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (rs *roomService) GetByID(ctx context.Context, id int64) (*response.RoomResponse, error) {
	room, err := rs.roomRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %d: %w", id, entity.ErrNotFound)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (rs *roomService) List(ctx context.Context, req *request.RoomListRequest) ([]response.RoomResponse, error) {
	rooms, err := rs.roomRepo.FindAll(ctx, entity.RoomFilter{
		RoomType:      req.RoomType,
		OnlyAvailable: req.OnlyAvailable,
		Search:        req.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	items := make([]response.RoomResponse, len(rooms))
	for i, r := range rooms {
		items[i] = response.RoomToResponse(r)
	}
	return items, nil
}

func (rs *roomService) Update(ctx context.Context, id int64, req *request.RoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		rs.log.Warn("Update room validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	room := &entity.Room{
		ID:       id,
		RoomNo:   req.RoomNo,
		RoomType: req.RoomType,
		Bed:      req.Bed,
		Price:    req.Price,
	}
	if err := rs.roomRepo.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}

	// reload for the status the update left alone
	updated, err := rs.roomRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload room: %w", err)
	}
	if updated == nil {
		return nil, fmt.Errorf("room %d: %w", id, entity.ErrNotFound)
	}

	rs.log.Info("Room updated", zap.Int64("room_id", id))

	resp := response.RoomToResponse(updated)
	return &resp, nil
}

func (rs *roomService) Delete(ctx context.Context, id int64) error {
	if err := rs.roomRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}

	invalidateStats(ctx, rs.cache, rs.log)
	return nil
}
