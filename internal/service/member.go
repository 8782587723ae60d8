package service

import (
	"context"

	"planhub/internal/model"
	"planhub/internal/repository"
)

// MemberService handles team member business logic
type MemberService struct {
	repo repository.IMemberRepository
}

// NewMemberService creates a new member service
func NewMemberService(repo repository.IMemberRepository) *MemberService {
	return &MemberService{repo: repo}
}

func (s *MemberService) Create(ctx context.Context, input *model.MemberCreate) (*model.Member, error) {
	return s.repo.Create(ctx, input)
}

func (s *MemberService) Get(ctx context.Context, id string) (*model.Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MemberService) List(ctx context.Context, skip, limit int64) ([]model.Member, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *MemberService) Update(ctx context.Context, id string, input *model.MemberUpdate) (*model.Member, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *MemberService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
