package service

import (
	"context"

	"planhub/internal/model"
	"planhub/internal/repository"
)

// TimeLogService handles time tracking business logic
type TimeLogService struct {
	repo repository.ITimeLogRepository
}

// NewTimeLogService creates a new time log service
func NewTimeLogService(repo repository.ITimeLogRepository) *TimeLogService {
	return &TimeLogService{repo: repo}
}

func (s *TimeLogService) Create(ctx context.Context, input *model.TimeLogCreate) (*model.TimeLog, error) {
	return s.repo.Create(ctx, input)
}

func (s *TimeLogService) Get(ctx context.Context, id string) (*model.TimeLog, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TimeLogService) List(ctx context.Context, skip, limit int64) ([]model.TimeLog, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *TimeLogService) Update(ctx context.Context, id string, input *model.TimeLogUpdate) (*model.TimeLog, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *TimeLogService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
