package service

import (
	"context"
	"fmt"
	"math"

	"planhub/internal/model"
	"planhub/internal/repository"
	"planhub/pkg/docstore"
)

// TaskService handles task business logic and the time-budget report
type TaskService struct {
	repo     repository.ITaskRepository
	timeLogs repository.ITimeLogRepository
}

// NewTaskService creates a new task service
func NewTaskService(repo repository.ITaskRepository, timeLogs repository.ITimeLogRepository) *TaskService {
	return &TaskService{repo: repo, timeLogs: timeLogs}
}

// Create inserts a new task, defaulting its status to To Do
func (s *TaskService) Create(ctx context.Context, input *model.TaskCreate) (*model.Task, error) {
	if input.Status == "" {
		input.Status = model.TaskStatusTodo
	}
	return s.repo.Create(ctx, input)
}

func (s *TaskService) Get(ctx context.Context, id string) (*model.Task, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TaskService) List(ctx context.Context, skip, limit int64) ([]model.Task, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *TaskService) Update(ctx context.Context, id string, input *model.TaskUpdate) (*model.Task, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *TaskService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// TimeSummary compares the hours logged against a task with its estimate.
// Returns docstore.ErrInvalidID for a malformed id and docstore.ErrNotFound
// when no such task exists.
func (s *TaskService) TimeSummary(ctx context.Context, taskID string) (*model.TaskTimeSummary, error) {
	if !docstore.IsValidID(taskID) {
		return nil, fmt.Errorf("%w: %q", docstore.ErrInvalidID, taskID)
	}

	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("%w: task %s", docstore.ErrNotFound, taskID)
	}

	spent, count, err := s.timeLogs.HoursForTask(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	estimated := task.EstimatedDurationHours
	difference := spent - estimated

	// Percentage is defined as 0 for a non-positive estimate rather than
	// dividing by zero.
	var percentage float64
	if estimated > 0 {
		percentage = math.Round(spent/estimated*100*10) / 10
	}

	return &model.TaskTimeSummary{
		TaskID:          taskID,
		TaskName:        task.Name,
		EstimatedHours:  estimated,
		TotalHoursSpent: spent,
		Difference:      difference,
		PercentageUsed:  percentage,
		TimeLogsCount:   count,
		Status:          budgetStatus(difference),
	}, nil
}

func budgetStatus(difference float64) string {
	switch {
	case difference > 0:
		return model.BudgetStatusOver
	case difference < 0:
		return model.BudgetStatusUnder
	default:
		return model.BudgetStatusOn
	}
}
