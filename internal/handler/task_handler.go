package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"huddle/internal/auth"
	"huddle/internal/errors"
	"huddle/internal/repository"
	"huddle/internal/service"
)

// TaskHandler handles task endpoints.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTaskRequest represents a task creation request.
type CreateTaskRequest struct {
	Title      string     `json:"title" validate:"required,min=1,max=255"`
	Details    string     `json:"details" validate:"max=2000"`
	ProjectID  *uuid.UUID `json:"project_id,omitempty"`
	AssigneeID *uint      `json:"assignee_id,omitempty"`
	DueAt      *time.Time `json:"due_at,omitempty"`
}

// UpdateTaskStatusRequest represents a status change request.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=TODO IN_PROGRESS DONE"`
}

// AssignTaskRequest represents an assignment change request. A nil assignee
// unassigns the task.
type AssignTaskRequest struct {
	AssigneeID *uint `json:"assignee_id"`
}

// CreateTask godoc
// @Summary Create a task in the team
// @Tags tasks
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param request body CreateTaskRequest true "Task data"
// @Success 201 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /teams/{teamId}/tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	sess, err := auth.RequireAuth(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}

	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), sess.UserID, teamID, service.TaskInput{
		Title:      req.Title,
		Details:    req.Details,
		ProjectID:  req.ProjectID,
		AssigneeID: req.AssigneeID,
		DueAt:      req.DueAt,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, task)
}

// ListTasks godoc
// @Summary List the team's tasks
// @Tags tasks
// @Produce json
// @Param teamId path string true "Team ID"
// @Param project_id query string false "Filter by project"
// @Param status query string false "Filter by status"
// @Param assignee_id query int false "Filter by assignee"
// @Success 200 {array} model.Task
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /teams/{teamId}/tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	sess, err := auth.RequireAuth(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}

	var filter repository.TaskFilter
	if v := c.QueryParam("project_id"); v != "" {
		projectID, err := uuid.Parse(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid project_id",
				Code:  "INVALID_UUID",
			})
		}
		filter.ProjectID = &projectID
	}
	filter.Status = c.QueryParam("status")
	if v := c.QueryParam("assignee_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid assignee_id",
				Code:  "INVALID_USER_ID",
			})
		}
		assigneeID := uint(id)
		filter.AssigneeID = &assigneeID
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), sess.UserID, teamID, filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// UpdateStatus godoc
// @Summary Update a task's status
// @Tags tasks
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param taskId path string true "Task ID"
// @Param request body UpdateTaskStatusRequest true "New status"
// @Success 200 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.Result
// @Router /teams/{teamId}/tasks/{taskId}/status [put]
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	sess, err := auth.RequireAuth(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}
	taskID, err := parseUUIDParam(c, "taskId")
	if err != nil {
		return err
	}

	var req UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.UpdateStatus(c.Request().Context(), sess.UserID, teamID, taskID, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

// AssignTask godoc
// @Summary Assign or unassign a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param taskId path string true "Task ID"
// @Param request body AssignTaskRequest true "Assignee"
// @Success 200 {object} model.Task
// @Failure 400 {object} errors.Result
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.Result
// @Router /teams/{teamId}/tasks/{taskId}/assign [put]
func (h *TaskHandler) AssignTask(c echo.Context) error {
	sess, err := auth.RequireAuth(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}
	taskID, err := parseUUIDParam(c, "taskId")
	if err != nil {
		return err
	}

	var req AssignTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	task, err := h.taskService.AssignTask(c.Request().Context(), sess.UserID, teamID, taskID, req.AssigneeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param teamId path string true "Team ID"
// @Param taskId path string true "Task ID"
// @Success 200 {object} errors.Result
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.Result
// @Router /teams/{teamId}/tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	sess, err := auth.RequireAdmin(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}
	taskID, err := parseUUIDParam(c, "taskId")
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), sess.UserID, teamID, taskID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, errors.OK)
}
