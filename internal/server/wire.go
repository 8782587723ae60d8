package server

import (
	"planhub/internal/handler"
	"planhub/internal/repository"
	"planhub/internal/service"
	"planhub/pkg/auth"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories bundles every persistence adapter
type Repositories struct {
	Projects repository.IProjectRepository
	Tasks    repository.ITaskRepository
	Members  repository.IMemberRepository
	TimeLogs repository.ITimeLogRepository
	Users    repository.IUserRepository
}

// Services bundles the business layer
type Services struct {
	Projects    *service.ProjectService
	Tasks       *service.TaskService
	Members     *service.MemberService
	TimeLogs    *service.TimeLogService
	Assignments *service.AssignmentService
	Users       *service.UserService
}

// Handlers bundles the HTTP layer
type Handlers struct {
	Projects    *handler.ProjectHandler
	Tasks       *handler.TaskHandler
	Members     *handler.MemberHandler
	TimeLogs    *handler.TimeLogHandler
	Assignments *handler.AssignmentHandler
	Auth        *handler.AuthHandler
}

// InitRepositories wires every repository to the shared database handle
func InitRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Projects: repository.NewProjectRepository(db),
		Tasks:    repository.NewTaskRepository(db),
		Members:  repository.NewMemberRepository(db),
		TimeLogs: repository.NewTimeLogRepository(db),
		Users:    repository.NewUserRepository(db),
	}
}

// InitServices wires the business layer
func InitServices(repos *Repositories, tokens *auth.TokenManager) *Services {
	return &Services{
		Projects:    service.NewProjectService(repos.Projects),
		Tasks:       service.NewTaskService(repos.Tasks, repos.TimeLogs),
		Members:     service.NewMemberService(repos.Members),
		TimeLogs:    service.NewTimeLogService(repos.TimeLogs),
		Assignments: service.NewAssignmentService(repos.Members, repos.Tasks),
		Users:       service.NewUserService(repos.Users, tokens),
	}
}

// InitHandlers wires the HTTP layer
func InitHandlers(services *Services) *Handlers {
	return &Handlers{
		Projects:    handler.NewProjectHandler(services.Projects),
		Tasks:       handler.NewTaskHandler(services.Tasks),
		Members:     handler.NewMemberHandler(services.Members),
		TimeLogs:    handler.NewTimeLogHandler(services.TimeLogs),
		Assignments: handler.NewAssignmentHandler(services.Assignments),
		Auth:        handler.NewAuthHandler(services.Users),
	}
}
