package service

import (
	"context"
	"testing"

	"planhub/internal/model"
	"planhub/pkg/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTimeSummaryFixture(estimated float64, spent float64, count int64) (*TaskService, string) {
	taskID := primitive.NewObjectID()
	task := &model.Task{
		ID:                     taskID,
		Name:                   "Implement importer",
		Status:                 model.TaskStatusInProgress,
		EstimatedDurationHours: estimated,
	}
	tasks := &fakeTaskRepo{byID: map[string]*model.Task{taskID.Hex(): task}}
	logs := &fakeTimeLogRepo{hours: spent, count: count}
	return NewTaskService(tasks, logs), taskID.Hex()
}

func TestTimeSummaryUnderBudget(t *testing.T) {
	svc, id := newTimeSummaryFixture(10, 7, 2)

	summary, err := svc.TimeSummary(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, summary.TaskID)
	assert.Equal(t, "Implement importer", summary.TaskName)
	assert.Equal(t, float64(10), summary.EstimatedHours)
	assert.Equal(t, float64(7), summary.TotalHoursSpent)
	assert.Equal(t, float64(-3), summary.Difference)
	assert.Equal(t, 70.0, summary.PercentageUsed)
	assert.Equal(t, int64(2), summary.TimeLogsCount)
	assert.Equal(t, model.BudgetStatusUnder, summary.Status)
}

func TestTimeSummaryZeroEstimateGuardsDivision(t *testing.T) {
	svc, id := newTimeSummaryFixture(0, 5, 1)

	summary, err := svc.TimeSummary(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, 0.0, summary.PercentageUsed)
	assert.Equal(t, float64(5), summary.Difference)
	assert.Equal(t, model.BudgetStatusOver, summary.Status)
}

func TestTimeSummaryOnBudget(t *testing.T) {
	svc, id := newTimeSummaryFixture(8, 8, 3)

	summary, err := svc.TimeSummary(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, float64(0), summary.Difference)
	assert.Equal(t, 100.0, summary.PercentageUsed)
	assert.Equal(t, model.BudgetStatusOn, summary.Status)
}

func TestTimeSummaryNoLogs(t *testing.T) {
	svc, id := newTimeSummaryFixture(4, 0, 0)

	summary, err := svc.TimeSummary(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, float64(0), summary.TotalHoursSpent)
	assert.Equal(t, int64(0), summary.TimeLogsCount)
	assert.Equal(t, model.BudgetStatusUnder, summary.Status)
}

func TestTimeSummaryPercentageRounding(t *testing.T) {
	// 1/3 of the estimate: 33.333...% rounds to one decimal place.
	svc, id := newTimeSummaryFixture(3, 1, 1)

	summary, err := svc.TimeSummary(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 33.3, summary.PercentageUsed)
}

func TestTimeSummaryInvalidID(t *testing.T) {
	svc := NewTaskService(&fakeTaskRepo{}, &fakeTimeLogRepo{})

	_, err := svc.TimeSummary(context.Background(), "not-a-hex-id")
	require.ErrorIs(t, err, docstore.ErrInvalidID)
}

func TestTimeSummaryUnknownTask(t *testing.T) {
	svc := NewTaskService(&fakeTaskRepo{byID: map[string]*model.Task{}}, &fakeTimeLogRepo{})

	_, err := svc.TimeSummary(context.Background(), primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestBudgetStatusClassification(t *testing.T) {
	assert.Equal(t, model.BudgetStatusOver, budgetStatus(0.5))
	assert.Equal(t, model.BudgetStatusUnder, budgetStatus(-0.5))
	assert.Equal(t, model.BudgetStatusOn, budgetStatus(0))
}
