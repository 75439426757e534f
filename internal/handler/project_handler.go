package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"huddle/internal/auth"
	"huddle/internal/errors"
	"huddle/internal/service"
)

// ProjectHandler handles project endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProjectRequest represents a project creation request.
type CreateProjectRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// CreateProject godoc
// @Summary Create a project in the team
// @Tags projects
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param request body CreateProjectRequest true "Project data"
// @Success 201 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /teams/{teamId}/projects [post]
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	sess, err := auth.RequireAdmin(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}

	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projectService.CreateProject(c.Request().Context(), sess.UserID, teamID, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, project)
}

// ListProjects godoc
// @Summary List the team's projects
// @Tags projects
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {array} model.Project
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /teams/{teamId}/projects [get]
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	sess, err := auth.RequireAuth(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}

	projects, err := h.projectService.ListProjects(c.Request().Context(), sess.UserID, teamID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, projects)
}

// DeleteProject godoc
// @Summary Delete a project and its tasks
// @Tags projects
// @Produce json
// @Param teamId path string true "Team ID"
// @Param projectId path string true "Project ID"
// @Success 200 {object} errors.Result
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.Result
// @Router /teams/{teamId}/projects/{projectId} [delete]
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	sess, err := auth.RequireAdmin(auth.SessionFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	teamID, err := parseUUIDParam(c, "teamId")
	if err != nil {
		return err
	}
	projectID, err := parseUUIDParam(c, "projectId")
	if err != nil {
		return err
	}

	if err := h.projectService.DeleteProject(c.Request().Context(), sess.UserID, teamID, projectID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, errors.OK)
}
