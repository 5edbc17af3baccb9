package repositories

import (
	"strings"

	"github.com/designsync-api/database"
	"github.com/designsync-api/dto"
	"github.com/designsync-api/models"
	"gorm.io/gorm"
)

// likeEscaper makes user input match literally inside a LIKE pattern
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ?", id)
	return project, result.Error
}

// FindByUserID retrieves all projects belonging to a user, newest first
func (r *ProjectRepository) FindByUserID(userID string) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&projects)
	return projects, result.Error
}

// CreateWithFeedbackTypes inserts the project and its feedback types in one transaction
func (r *ProjectRepository) CreateWithFeedbackTypes(project models.Project, feedbackTypes []string) (models.Project, error) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		if len(feedbackTypes) == 0 {
			return nil
		}

		rows := make([]models.ProjectFeedbackType, 0, len(feedbackTypes))
		for _, t := range feedbackTypes {
			rows = append(rows, models.ProjectFeedbackType{
				ProjectID:    project.ID,
				FeedbackType: t,
			})
		}
		return tx.Create(&rows).Error
	})
	return project, err
}

// Update writes the editable columns of an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := database.DB.Model(&models.Project{ID: project.ID}).
		Select("name", "description", "platform", "category").
		Updates(&project)
	return result.Error
}

// UpdateStatus sets only the status column
func (r *ProjectRepository) UpdateStatus(id string, status models.ProjectStatus) error {
	return database.DB.Model(&models.Project{}).Where("id = ?", id).Update("status", status).Error
}

// Delete soft-deletes a project
func (r *ProjectRepository) Delete(id string) error {
	return database.DB.Delete(&models.Project{}, "id = ?", id).Error
}

// Exists checks if a live project exists
func (r *ProjectRepository) Exists(id string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetOwnerID returns the user ID who owns the project
func (r *ProjectRepository) GetOwnerID(id string) (string, error) {
	type ProjectOwner struct {
		UserID string
	}

	var owner ProjectOwner
	err := database.DB.Model(&models.Project{}).Select("user_id").Where("id = ?", id).First(&owner).Error
	return owner.UserID, err
}

// FindFeedbackTypes returns the feedback type ids chosen for a project
func (r *ProjectRepository) FindFeedbackTypes(projectID string) ([]string, error) {
	var types []string
	err := database.DB.Model(&models.ProjectFeedbackType{}).
		Where("project_id = ?", projectID).
		Order("feedback_type asc").
		Pluck("feedback_type", &types).Error
	return types, err
}

// FindWithPagination retrieves projects with pagination and filtering, newest first
func (r *ProjectRepository) FindWithPagination(filter dto.ProjectFilter) ([]models.Project, int64, error) {
	var projects []models.Project
	var totalCount int64

	db := database.DB.Model(&models.Project{})

	if filter.Platform != "" {
		db = db.Where("platform = ?", filter.Platform)
	}
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.UserID != "" {
		db = db.Where("user_id = ?", filter.UserID)
	}

	// LOWER/LIKE instead of ILIKE so the query also runs on SQLite
	if search := strings.TrimSpace(filter.Search); search != "" {
		searchPattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		db = db.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(COALESCE(description, '')) LIKE ? ESCAPE '\')`, searchPattern, searchPattern)
	}

	db = db.Session(&gorm.Session{})
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	if err := db.Order("created_at desc").Limit(filter.PageSize).Offset(offset).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}
