package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/designsync-api/dto"
	"github.com/designsync-api/lib/cache"
	"github.com/designsync-api/lib/storage"
	"github.com/designsync-api/models"
	"github.com/designsync-api/repositories"
	"github.com/designsync-api/utils"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo     *repositories.ProjectRepository
	designRepo      *repositories.DesignRepository
	questionService *QuestionService
	feedbackService *FeedbackService
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo:     repositories.NewProjectRepository(),
		designRepo:      repositories.NewDesignRepository(),
		questionService: NewQuestionService(),
		feedbackService: NewFeedbackService(),
	}
}

// CreateProject registers a project together with its feedback types
func (s *ProjectService) CreateProject(userID string, req dto.CreateProjectRequest) (models.Project, error) {
	name := strings.TrimSpace(req.Name)
	category := strings.TrimSpace(req.Category)
	if name == "" || req.Platform == "" || category == "" {
		return models.Project{}, validationErrorf("Missing required fields: name, platform, category")
	}

	platform := models.Platform(req.Platform)
	if !platform.Valid() {
		return models.Project{}, validationErrorf("platform must be one of: web, app")
	}

	project := models.Project{
		UserID:      userID,
		Name:        name,
		Description: utils.NilIfBlank(req.Description),
		Platform:    platform,
		Category:    category,
		Status:      models.ProjectStatusUnresolved,
	}

	project, err := s.projectRepo.CreateWithFeedbackTypes(project, normalizeFeedbackTypes(req.FeedbackTypes))
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// ListProjects retrieves projects with pagination and filtering, each with its thumbnail
func (s *ProjectService) ListProjects(filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	var response dto.ProjectListResponse

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = DefaultPageSize
	}
	if filter.PageSize > MaxPageSize {
		filter.PageSize = MaxPageSize
	}

	projects, totalCount, err := s.projectRepo.FindWithPagination(filter)
	if err != nil {
		return response, fmt.Errorf("failed to fetch projects: %w", err)
	}

	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	response = dto.ProjectListResponse{
		Projects:   s.withThumbnails(projects),
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}
	return response, nil
}

// ListUserProjects returns every project owned by a user, newest first
func (s *ProjectService) ListUserProjects(userID string) ([]dto.ProjectListItem, error) {
	projects, err := s.projectRepo.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	return s.withThumbnails(projects), nil
}

// GetThumbnail returns the first screen of the earliest design; lookup failures yield nil
func (s *ProjectService) GetThumbnail(projectID string) *string {
	image, err := s.designRepo.FindThumbnail(projectID)
	if err != nil {
		utils.Logger.WithError(err).Warnf("Failed to get thumbnail for project %s", projectID)
		return nil
	}
	if image == nil {
		return nil
	}
	return &image.ImageURL
}

func (s *ProjectService) withThumbnails(projects []models.Project) []dto.ProjectListItem {
	items := make([]dto.ProjectListItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, dto.ProjectListItem{
			Project:      project,
			ThumbnailURL: s.GetThumbnail(project.ID),
		})
	}
	return items
}

// GetProjectDetail assembles the project → design → image/question → feedback tree.
// Failing sub-lookups are logged and degrade to empty collections.
func (s *ProjectService) GetProjectDetail(ctx context.Context, id string) (*dto.ProjectDetailResponse, error) {
	key := cache.ProjectDetailKey(id)

	var cached dto.ProjectDetailResponse
	if hit, err := cache.Default.Get(ctx, key, &cached); err != nil {
		utils.Logger.WithError(err).Warnf("Failed to read project cache for %s", id)
	} else if hit {
		return &cached, nil
	}

	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}

	feedbackTypes, err := s.projectRepo.FindFeedbackTypes(id)
	if err != nil {
		utils.Logger.WithError(err).Errorf("Failed to fetch feedback types for project %s", id)
	}
	if feedbackTypes == nil {
		feedbackTypes = []string{}
	}

	detail := &dto.ProjectDetailResponse{
		ID:             project.ID,
		UserID:         project.UserID,
		Name:           project.Name,
		Description:    project.Description,
		Platform:       project.Platform,
		Category:       project.Category,
		Status:         project.Status,
		CreatedAt:      project.CreatedAt,
		UpdatedAt:      project.UpdatedAt,
		FeedbackTypes:  feedbackTypes,
		AverageRatings: s.feedbackService.GetAverageRatingsByProject(id),
		Designs:        s.buildDesignDetails(id),
	}

	if err := cache.Default.Set(ctx, key, detail); err != nil {
		utils.Logger.WithError(err).Warnf("Failed to write project cache for %s", id)
	}
	return detail, nil
}

func (s *ProjectService) buildDesignDetails(projectID string) []dto.DesignDetail {
	designs, err := s.designRepo.FindByProjectIDWithImages(projectID)
	if err != nil {
		utils.Logger.WithError(err).Errorf("Failed to fetch designs for project %s", projectID)
		return []dto.DesignDetail{}
	}

	details := make([]dto.DesignDetail, 0, len(designs))
	for _, design := range designs {
		images := make([]dto.DesignImageItem, 0, len(design.Images))
		for _, image := range design.Images {
			images = append(images, dto.DesignImageItem{
				ID:           image.ID,
				ImageURL:     image.ImageURL,
				ScreenNumber: image.ScreenNumber,
				DisplayOrder: image.DisplayOrder,
			})
		}

		questions := s.questionService.GetQuestionsByDesign(design.ID)
		questionDetails := make([]dto.QuestionDetail, 0, len(questions))
		for _, q := range questions {
			feedbacks, err := s.feedbackService.GetFeedbacksByDesignAndQuestion(design.ID, q.ID)
			if err != nil {
				utils.Logger.WithError(err).Errorf("Failed to fetch feedbacks for question %s", q.ID)
				feedbacks = []dto.FeedbackItem{}
			}
			for i := range feedbacks {
				// the tree already places each comment, so drop the redundant ids
				feedbacks[i].ProjectID = ""
				feedbacks[i].DesignID = nil
				feedbacks[i].QuestionID = nil
			}
			questionDetails = append(questionDetails, dto.QuestionDetail{
				ID:               q.ID,
				QuestionText:     q.QuestionText,
				QuestionType:     q.QuestionType,
				QuestionCategory: q.QuestionCategory,
				DisplayOrder:     q.DisplayOrder,
				Feedbacks:        feedbacks,
			})
		}

		details = append(details, dto.DesignDetail{
			ID:        design.ID,
			Name:      design.Name,
			Images:    images,
			Questions: questionDetails,
		})
	}
	return details
}

// authorize loads a project and checks that the caller owns it or is an admin
func (s *ProjectService) authorize(projectID, userID string, isAdmin bool) (models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrNotFound
		}
		return models.Project{}, err
	}

	if !isAdmin && project.UserID != userID {
		return models.Project{}, fmt.Errorf("%w: you don't have permission to modify this project", ErrForbidden)
	}
	return project, nil
}

// UpdateProject edits name, description, platform and category
func (s *ProjectService) UpdateProject(ctx context.Context, projectID, userID string, isAdmin bool, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.authorize(projectID, userID, isAdmin)
	if err != nil {
		return models.Project{}, err
	}

	platform := models.Platform(req.Platform)
	if !platform.Valid() {
		return models.Project{}, validationErrorf("platform must be one of: web, app")
	}
	name := strings.TrimSpace(req.Name)
	category := strings.TrimSpace(req.Category)
	if name == "" || category == "" {
		return models.Project{}, validationErrorf("Missing required fields: name, platform, category")
	}

	project.Name = name
	project.Platform = platform
	project.Category = category
	if req.Description != nil {
		project.Description = utils.NilIfBlank(*req.Description)
	}

	if err := s.projectRepo.Update(project); err != nil {
		return models.Project{}, fmt.Errorf("failed to update project: %w", err)
	}

	s.invalidate(ctx, projectID)
	return s.projectRepo.FindByID(projectID)
}

// UpdateStatus marks a project resolved or unresolved
func (s *ProjectService) UpdateStatus(ctx context.Context, projectID, userID string, isAdmin bool, status models.ProjectStatus) (models.Project, error) {
	if !status.Valid() {
		return models.Project{}, validationErrorf("status must be one of: resolved, unresolved")
	}

	if _, err := s.authorize(projectID, userID, isAdmin); err != nil {
		return models.Project{}, err
	}

	if err := s.projectRepo.UpdateStatus(projectID, status); err != nil {
		return models.Project{}, fmt.Errorf("failed to update project status: %w", err)
	}

	s.invalidate(ctx, projectID)
	return s.projectRepo.FindByID(projectID)
}

// DeleteProject soft-deletes a project and removes its screens from the image CDN
func (s *ProjectService) DeleteProject(ctx context.Context, projectID, userID string, isAdmin bool) error {
	if _, err := s.authorize(projectID, userID, isAdmin); err != nil {
		return err
	}

	images, err := s.designRepo.FindImagesByProjectID(projectID)
	if err != nil {
		return fmt.Errorf("error fetching project images: %w", err)
	}

	if err := s.projectRepo.Delete(projectID); err != nil {
		return err
	}
	s.invalidate(ctx, projectID)

	if storage.Store == nil {
		return nil
	}
	for _, image := range images {
		if image.PublicID == "" {
			continue
		}
		// continue with the remaining images even if one fails
		if err := storage.Store.Delete(ctx, image.PublicID); err != nil {
			utils.Logger.WithError(err).Warnf("Failed to delete image %s", image.PublicID)
		}
	}
	return nil
}

func (s *ProjectService) invalidate(ctx context.Context, projectID string) {
	if err := cache.Default.Delete(ctx, cache.ProjectDetailKey(projectID)); err != nil {
		utils.Logger.WithError(err).Warnf("Failed to invalidate project cache for %s", projectID)
	}
}

func normalizeFeedbackTypes(types []string) []string {
	seen := make(map[string]bool, len(types))
	out := make([]string, 0, len(types))
	for _, t := range types {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
