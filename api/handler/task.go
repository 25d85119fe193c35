package handler

import (
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskdeck/web/api/view"
	"github.com/taskdeck/web/domain"
	"github.com/taskdeck/web/internal/middleware"
	"github.com/taskdeck/web/pkg/httpcontext"
	taskUC "github.com/taskdeck/web/usecase/task"
)

// dueDateLayout matches the value format of an HTML date input.
const dueDateLayout = "2006-01-02"

type TaskHandler struct {
	baseHandler
	uc       *taskUC.UseCase
	renderer *view.Renderer
}

func NewTaskHandler(uc *taskUC.UseCase, renderer *view.Renderer, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		renderer:    renderer,
	}
}

// Dashboard lists the session owner's tasks, most recent first.
func (h *TaskHandler) Dashboard(ctx *fasthttp.RequestCtx) {
	session := middleware.SessionFrom(ctx)
	if session == nil {
		h.redirect(ctx, loginPath)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ListForOwner(stdCtx, session.User.ID)
	if err != nil {
		h.renderFailure(ctx, err)
		return
	}

	if err := h.renderer.Render(ctx, "dashboard.html", view.DashboardData{
		User:  session.User,
		Tasks: tasks,
	}); err != nil {
		h.logger.Error("dashboard render failed", zap.Error(err))
	}
}

// AddTask inserts one task owned by the session account and redirects back
// to the dashboard.
func (h *TaskHandler) AddTask(ctx *fasthttp.RequestCtx) {
	session := middleware.SessionFrom(ctx)
	if session == nil {
		h.redirect(ctx, loginPath)
		return
	}

	args := ctx.PostArgs()
	input := taskUC.Input{
		Title:       string(args.Peek("title")),
		Description: string(args.Peek("description")),
		Category:    string(args.Peek("category")),
		Priority:    string(args.Peek("priority")),
		DueDate:     parseDueDate(string(args.Peek("dueDate"))),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if _, err := h.uc.Create(stdCtx, session.User.ID, input); err != nil {
		h.renderFailure(ctx, err)
		return
	}
	h.redirect(ctx, dashboardPath)
}

// DeleteTask removes the task named by the path id. Ownership is not
// verified before deletion.
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	session := middleware.SessionFrom(ctx)
	if session == nil {
		h.redirect(ctx, loginPath)
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.renderFailure(ctx, domain.ErrInvalidPayload)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, session.User.ID, id); err != nil {
		h.renderFailure(ctx, err)
		return
	}
	h.redirect(ctx, dashboardPath)
}

func parseDueDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(dueDateLayout, value)
	if err != nil {
		return nil
	}
	return &parsed
}
