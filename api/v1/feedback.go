package v1

import (
	"net/http"

	"github.com/designsync-api/dto"
	"github.com/designsync-api/middleware"
	"github.com/designsync-api/services"
	"github.com/designsync-api/utils"
	"github.com/gin-gonic/gin"
)

var feedbackService = services.NewFeedbackService()

// CreateFeedback stores a reviewer's comments and ratings
func CreateFeedback(c *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	response, err := feedbackService.CreateFeedback(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		respondServiceError(c, err, "Project not found")
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, response)
}

// ListFeedbacks returns every comment left on a project, newest first
func ListFeedbacks(c *gin.Context) {
	feedbacks, err := feedbackService.GetFeedbacksByProject(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Project not found")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, feedbacks)
}

// GetRatings returns per-category rating averages
func GetRatings(c *gin.Context) {
	ratings, err := feedbackService.GetProjectRatings(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Project not found")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, ratings)
}
