package service

import (
	"context"
	"fmt"

	"planhub/internal/model"
	"planhub/internal/repository"
	"planhub/pkg/docstore"
)

// AssignmentService computes derived views over task assignments
type AssignmentService struct {
	members repository.IMemberRepository
	tasks   repository.ITaskRepository
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(members repository.IMemberRepository, tasks repository.ITaskRepository) *AssignmentService {
	return &AssignmentService{members: members, tasks: tasks}
}

// Workload sums the estimated hours of a member's non-Done tasks.
// Returns docstore.ErrInvalidID for a malformed id and docstore.ErrNotFound
// when no such member exists.
func (s *AssignmentService) Workload(ctx context.Context, memberID string) (*model.WorkloadSummary, error) {
	oid, err := docstore.ParseID(memberID)
	if err != nil {
		return nil, err
	}

	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, fmt.Errorf("%w: member %s", docstore.ErrNotFound, memberID)
	}

	hours, count, err := s.tasks.ActiveWorkload(ctx, oid)
	if err != nil {
		return nil, err
	}

	return &model.WorkloadSummary{
		MemberID:                    memberID,
		MemberName:                  member.Name,
		AvailabilityPercent:         member.AvailabilityPercent,
		ActiveTasksCount:            count,
		TotalEstimatedHoursAssigned: hours,
	}, nil
}
