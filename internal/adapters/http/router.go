// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/handlers"
)

// Handlers groups the route handlers mounted by NewRouter.
type Handlers struct {
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Workflow     *handlers.WorkflowHandler
	Project      *handlers.ProjectHandler
	Task         *handlers.TaskHandler
	Hours        *handlers.HoursHandler
	Comment      *handlers.CommentHandler
	Notification *handlers.NotificationHandler
	Health       *handlers.HealthHandler
}

// Guards are the per-group middlewares. Authenticate wraps every route
// except registration, login and health. AuthLimit throttles registration
// and login; nil disables it.
type Guards struct {
	Authenticate func(http.Handler) http.Handler
	AuthLimit    func(http.Handler) http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, g Guards, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if g.AuthLimit != nil {
				r.Use(g.AuthLimit)
			}
			r.Post("/auth/register", h.Auth.Register)
			r.Post("/auth/login", h.Auth.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(g.Authenticate)

			// The caller's own views come before the {userID} routes.
			r.Get("/users/me", h.User.Me)
			r.Patch("/users/me", h.User.UpdateMe)
			r.Get("/users/me/tasks", h.User.MyTasks)
			r.Get("/users/me/hours", h.User.MyHours)
			r.Get("/users/{userID}", h.User.GetUser)
			r.Delete("/users/{userID}", h.User.DeleteUser)
			r.Get("/roles", h.User.ListRoles)

			r.Get("/workflows", h.Workflow.ListWorkflows)
			r.Post("/workflows", h.Workflow.CreateWorkflow)
			r.Get("/workflows/{workflowID}", h.Workflow.GetWorkflow)
			r.Delete("/workflows/{workflowID}", h.Workflow.DeleteWorkflow)
			r.Post("/workflows/{workflowID}/stages", h.Workflow.AddStage)

			r.Get("/projects", h.Project.ListProjects)
			r.Post("/projects", h.Project.CreateProject)
			r.Get("/projects/{projectID}", h.Project.GetProject)
			r.Patch("/projects/{projectID}", h.Project.UpdateProject)
			r.Delete("/projects/{projectID}", h.Project.DeleteProject)
			r.Put("/projects/{projectID}/workflow", h.Project.AttachWorkflow)
			r.Get("/projects/{projectID}/report", h.Project.Report)
			r.Get("/projects/{projectID}/hours", h.Project.TotalHours)
			r.Get("/projects/{projectID}/tasks", h.Project.ListTasks)
			r.Post("/projects/{projectID}/tasks", h.Project.CreateTask)

			r.Get("/tasks/{taskID}", h.Task.GetTask)
			r.Patch("/tasks/{taskID}", h.Task.UpdateTask)
			r.Delete("/tasks/{taskID}", h.Task.DeleteTask)
			r.Put("/tasks/{taskID}/stage", h.Task.MoveTask)
			r.Put("/tasks/{taskID}/responsible", h.Task.SetResponsible)

			r.Get("/tasks/{taskID}/hours", h.Hours.ListByTask)
			r.Post("/tasks/{taskID}/hours", h.Hours.LogHours)
			r.Get("/tasks/{taskID}/hours/total", h.Hours.TaskTotal)
			r.Put("/hours/{entryID}", h.Hours.EditEntry)
			r.Delete("/hours/{entryID}", h.Hours.DeleteEntry)

			r.Get("/tasks/{taskID}/comments", h.Comment.ListByTask)
			r.Post("/tasks/{taskID}/comments", h.Comment.AddComment)
			r.Put("/comments/{commentID}", h.Comment.EditComment)
			r.Delete("/comments/{commentID}", h.Comment.DeleteComment)

			r.Get("/notifications", h.Notification.List)
			r.Post("/notifications/{notificationID}/read", h.Notification.MarkRead)
		})
	})

	return r
}
