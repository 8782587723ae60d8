package repository

import (
	"context"

	"planhub/internal/model"
	"planhub/pkg/docstore"

	"go.mongodb.org/mongo-driver/mongo"
)

// IMemberRepository defines member persistence
type IMemberRepository interface {
	Create(ctx context.Context, input *model.MemberCreate) (*model.Member, error)
	GetByID(ctx context.Context, id string) (*model.Member, error)
	List(ctx context.Context, skip, limit int64) ([]model.Member, error)
	Update(ctx context.Context, id string, input *model.MemberUpdate) (*model.Member, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// MemberRepository implements member persistence over the members collection
type MemberRepository struct {
	docs *docstore.Collection[model.Member]
}

func NewMemberRepository(db *mongo.Database) IMemberRepository {
	return &MemberRepository{docs: docstore.NewCollection[model.Member](db, "members")}
}

func (r *MemberRepository) Create(ctx context.Context, input *model.MemberCreate) (*model.Member, error) {
	return r.docs.Create(ctx, input)
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*model.Member, error) {
	return r.docs.GetByID(ctx, id)
}

func (r *MemberRepository) List(ctx context.Context, skip, limit int64) ([]model.Member, error) {
	return r.docs.List(ctx, skip, limit)
}

func (r *MemberRepository) Update(ctx context.Context, id string, input *model.MemberUpdate) (*model.Member, error) {
	return r.docs.Update(ctx, id, input)
}

func (r *MemberRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.docs.Delete(ctx, id)
}
