package model

// Budget labels for TaskTimeSummary, classified by the sign of Difference.
const (
	BudgetStatusOver  = "over_budget"
	BudgetStatusUnder = "under_budget"
	BudgetStatusOn    = "on_budget"
)

// WorkloadSummary reports a member's active assignment load: the count and
// summed estimated hours of their non-Done tasks.
type WorkloadSummary struct {
	MemberID                    string  `json:"member_id"`
	MemberName                  string  `json:"member_name"`
	AvailabilityPercent         float64 `json:"availability_percent"`
	ActiveTasksCount            int64   `json:"active_tasks_count"`
	TotalEstimatedHoursAssigned float64 `json:"total_estimated_hours_assigned"`
}

// TaskTimeSummary reports logged hours against a task's estimate.
// PercentageUsed is 0 when the estimate is not positive.
type TaskTimeSummary struct {
	TaskID          string  `json:"task_id"`
	TaskName        string  `json:"task_name"`
	EstimatedHours  float64 `json:"estimated_hours"`
	TotalHoursSpent float64 `json:"total_hours_spent"`
	Difference      float64 `json:"difference"`
	PercentageUsed  float64 `json:"percentage_used"`
	TimeLogsCount   int64   `json:"time_logs_count"`
	Status          string  `json:"status"`
}
