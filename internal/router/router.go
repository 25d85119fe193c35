package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskdeck/web/api/handler"
)

type Handlers struct {
	Auth   *apiHandler.AuthHandler
	Task   *apiHandler.TaskHandler
	Health *apiHandler.HealthHandler
}

// New wires the page routes. The access gate wraps every task-management
// route; the auth pages and logout stay open.
func New(handlers Handlers, accessGate func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Public pages
	r.GET("/signup", handlers.Auth.SignupForm)
	r.POST("/signup", handlers.Auth.Signup)
	r.GET("/login", handlers.Auth.LoginForm)
	r.POST("/login", handlers.Auth.Login)
	r.GET("/logout", handlers.Auth.Logout)

	// Session-gated pages
	r.GET("/dashboard", accessGate(handlers.Task.Dashboard))
	r.POST("/add-task", accessGate(handlers.Task.AddTask))
	r.POST("/delete/{id}", accessGate(handlers.Task.DeleteTask))

	return r
}
