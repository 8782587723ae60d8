package service

import (
	"context"

	"planhub/internal/model"
	"planhub/internal/repository"
)

// ProjectService handles project business logic
type ProjectService struct {
	repo repository.IProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.IProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Create inserts a new project, defaulting its status to Planning
func (s *ProjectService) Create(ctx context.Context, input *model.ProjectCreate) (*model.Project, error) {
	if input.Status == "" {
		input.Status = model.ProjectStatusPlanning
	}
	return s.repo.Create(ctx, input)
}

// Get returns a project by id, nil when absent
func (s *ProjectService) Get(ctx context.Context, id string) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of projects
func (s *ProjectService) List(ctx context.Context, skip, limit int64) ([]model.Project, error) {
	return s.repo.List(ctx, skip, limit)
}

// Update applies a partial update, nil when the project does not exist
func (s *ProjectService) Update(ctx context.Context, id string, input *model.ProjectUpdate) (*model.Project, error) {
	return s.repo.Update(ctx, id, input)
}

// Delete removes a project, reporting whether one was removed
func (s *ProjectService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
