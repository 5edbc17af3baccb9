package v1

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/designsync-api/dto"
	"github.com/designsync-api/middleware"
	"github.com/designsync-api/services"
	"github.com/designsync-api/utils"
	"github.com/gin-gonic/gin"
)

var (
	designService   = services.NewDesignService()
	questionService = services.NewQuestionService()
)

// CreateDesign handles the multipart upload of a design and its screens
func CreateDesign(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	name := c.PostForm("name")
	if strings.TrimSpace(name) == "" {
		name = c.PostForm("designName")
	}

	req := dto.CreateDesignRequest{
		Name:              name,
		Images:            form.File["images"],
		CustomQuestions:   parseStringArray("customQuestions", c.PostForm("customQuestions")),
		SelectedQuestions: parseStringArray("selectedQuestions", c.PostForm("selectedQuestions")),
		QuestionCategory:  c.PostForm("questionCategory"),
	}

	response, err := designService.CreateDesign(
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

	utils.RespondSuccess(c, http.StatusCreated, response)
}

// ListDesigns returns a project's designs with their images
func ListDesigns(c *gin.Context) {
	designs, err := designService.ListDesigns(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Project not found")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, designs)
}

// ListQuestions returns a project's questions in display order
func ListQuestions(c *gin.Context) {
	questions, err := questionService.GetQuestionsByProject(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Project not found")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, questions)
}

// parseStringArray decodes a JSON string array form field; bad input is logged and ignored
func parseStringArray(field, raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		utils.Logger.WithError(err).Warnf("Ignoring unparsable %s value", field)
		return nil
	}
	return values
}
