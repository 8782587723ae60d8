package repository

import (
	"context"

	"planhub/internal/model"
	"planhub/pkg/docstore"

	"go.mongodb.org/mongo-driver/mongo"
)

// IProjectRepository defines project persistence
type IProjectRepository interface {
	Create(ctx context.Context, input *model.ProjectCreate) (*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	List(ctx context.Context, skip, limit int64) ([]model.Project, error)
	Update(ctx context.Context, id string, input *model.ProjectUpdate) (*model.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ProjectRepository implements project persistence over the projects
// collection
type ProjectRepository struct {
	docs *docstore.Collection[model.Project]
}

func NewProjectRepository(db *mongo.Database) IProjectRepository {
	return &ProjectRepository{docs: docstore.NewCollection[model.Project](db, "projects")}
}

func (r *ProjectRepository) Create(ctx context.Context, input *model.ProjectCreate) (*model.Project, error) {
	return r.docs.Create(ctx, input)
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return r.docs.GetByID(ctx, id)
}

func (r *ProjectRepository) List(ctx context.Context, skip, limit int64) ([]model.Project, error) {
	return r.docs.List(ctx, skip, limit)
}

func (r *ProjectRepository) Update(ctx context.Context, id string, input *model.ProjectUpdate) (*model.Project, error) {
	return r.docs.Update(ctx, id, input)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.docs.Delete(ctx, id)
}
