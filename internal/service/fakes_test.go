package service

import (
	"context"
	"errors"

	"planhub/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes keyed by hex id. Methods a test does not
// exercise fail loudly.

var errUnexpectedCall = errors.New("unexpected repository call")

type fakeTaskRepo struct {
	byID          map[string]*model.Task
	workloadHours float64
	workloadCount int64
	workloadFor   primitive.ObjectID
}

func (f *fakeTaskRepo) Create(ctx context.Context, input *model.TaskCreate) (*model.Task, error) {
	return nil, errUnexpectedCall
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, id string) (*model.Task, error) {
	return f.byID[id], nil
}

func (f *fakeTaskRepo) List(ctx context.Context, skip, limit int64) ([]model.Task, error) {
	return nil, errUnexpectedCall
}

func (f *fakeTaskRepo) Update(ctx context.Context, id string, input *model.TaskUpdate) (*model.Task, error) {
	return nil, errUnexpectedCall
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id string) (bool, error) {
	return false, errUnexpectedCall
}

func (f *fakeTaskRepo) ActiveWorkload(ctx context.Context, memberID primitive.ObjectID) (float64, int64, error) {
	f.workloadFor = memberID
	return f.workloadHours, f.workloadCount, nil
}

type fakeTimeLogRepo struct {
	hours    float64
	count    int64
	hoursFor primitive.ObjectID
}

func (f *fakeTimeLogRepo) Create(ctx context.Context, input *model.TimeLogCreate) (*model.TimeLog, error) {
	return nil, errUnexpectedCall
}

func (f *fakeTimeLogRepo) GetByID(ctx context.Context, id string) (*model.TimeLog, error) {
	return nil, errUnexpectedCall
}

func (f *fakeTimeLogRepo) List(ctx context.Context, skip, limit int64) ([]model.TimeLog, error) {
	return nil, errUnexpectedCall
}

func (f *fakeTimeLogRepo) Update(ctx context.Context, id string, input *model.TimeLogUpdate) (*model.TimeLog, error) {
	return nil, errUnexpectedCall
}

func (f *fakeTimeLogRepo) Delete(ctx context.Context, id string) (bool, error) {
	return false, errUnexpectedCall
}

func (f *fakeTimeLogRepo) HoursForTask(ctx context.Context, taskID primitive.ObjectID) (float64, int64, error) {
	f.hoursFor = taskID
	return f.hours, f.count, nil
}

type fakeMemberRepo struct {
	byID map[string]*model.Member
}

func (f *fakeMemberRepo) Create(ctx context.Context, input *model.MemberCreate) (*model.Member, error) {
	return nil, errUnexpectedCall
}

func (f *fakeMemberRepo) GetByID(ctx context.Context, id string) (*model.Member, error) {
	return f.byID[id], nil
}

func (f *fakeMemberRepo) List(ctx context.Context, skip, limit int64) ([]model.Member, error) {
	return nil, errUnexpectedCall
}

func (f *fakeMemberRepo) Update(ctx context.Context, id string, input *model.MemberUpdate) (*model.Member, error) {
	return nil, errUnexpectedCall
}

func (f *fakeMemberRepo) Delete(ctx context.Context, id string) (bool, error) {
	return false, errUnexpectedCall
}

type fakeUserRepo struct {
	byUsername map[string]*model.User
	byEmail    map[string]*model.User
	created    []*model.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	stored := *user
	stored.ID = primitive.NewObjectID()
	f.created = append(f.created, &stored)
	return &stored, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return f.byUsername[username], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.byEmail[email], nil
}
