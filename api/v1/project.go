package v1

import (
	"net/http"
	"strconv"

	"github.com/designsync-api/dto"
	"github.com/designsync-api/middleware"
	"github.com/designsync-api/models"
	"github.com/designsync-api/services"
	"github.com/designsync-api/utils"
	"github.com/gin-gonic/gin"
)

var projectService = services.NewProjectService()

// CreateProject godoc
// @Summary Register a design project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project"
// @Success 201 {object} models.Project
// @Router /projects [post]
func CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	project, err := projectService.CreateProject(middleware.CurrentUserID(c), req)
	if err != nil {
		respondServiceError(c, err, "Project not found")
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, project)
}

// ListProjects godoc
// @Summary List projects with pagination and filtering
// @Tags projects
// @Produce json
// @Param platform query string false "web or app"
// @Param category query string false "Category"
// @Param status query string false "resolved or unresolved"
// @Param userId query string false "Owner id"
// @Param search query string false "Search term for project name/description"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.ProjectListResponse
// @Router /projects [get]
func ListProjects(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(services.DefaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = services.DefaultPageSize
	}

	filter := dto.ProjectFilter{
		Platform: c.Query("platform"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		UserID:   c.Query("userId"),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}

	response, err := projectService.ListProjects(filter)
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, response)
}

// ListMyProjects returns the caller's own projects
func ListMyProjects(c *gin.Context) {
	projects, err := projectService.ListUserProjects(middleware.CurrentUserID(c))
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, projects)
}

// GetProject godoc
// @Summary Get the full project tree
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectDetailResponse
// @Router /projects/{id} [get]
func GetProject(c *gin.Context) {
	detail, err := projectService.GetProjectDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Project not found")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, detail)
}

// UpdateProject edits a project's basic fields
func UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	project, err := projectService.UpdateProject(
		c.Request.Context(),
		c.Param("id"),
		middleware.CurrentUserID(c),
		middleware.IsAdmin(c),
		req,
	)
	if err != nil {
		respondServiceError(c, err, "Project not found")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, project)
}

// UpdateProjectStatus toggles a project between resolved and unresolved
func UpdateProjectStatus(c *gin.Context) {
	var req dto.UpdateProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "status must be one of: resolved, unresolved")
		return
	}

	project, err := projectService.UpdateStatus(
		c.Request.Context(),
		c.Param("id"),
		middleware.CurrentUserID(c),
		middleware.IsAdmin(c),
		models.ProjectStatus(req.Status),
	)
	if err != nil {
		respondServiceError(c, err, "Project not found")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, project)
}

// DeleteProject soft-deletes a project
func DeleteProject(c *gin.Context) {
	err := projectService.DeleteProject(
		c.Request.Context(),
		c.Param("id"),
		middleware.CurrentUserID(c),
		middleware.IsAdmin(c),
	)
	if err != nil {
		respondServiceError(c, err, "Project not found")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
