package repositories

import (
	"github.com/designsync-api/database"
	"github.com/designsync-api/models"
	"gorm.io/gorm"
)

// DesignRepository handles database operations for designs and their images
type DesignRepository struct{}

// NewDesignRepository creates a new design repository instance
func NewDesignRepository() *DesignRepository {
	return &DesignRepository{}
}

// Create inserts a design
func (r *DesignRepository) Create(design models.Design) (models.Design, error) {
	result := database.DB.Omit("Images").Create(&design)
	return design, result.Error
}

// CreateImage inserts one design image
func (r *DesignRepository) CreateImage(image models.DesignImage) (models.DesignImage, error) {
	result := database.DB.Create(&image)
	return image, result.Error
}

// FindByProjectIDWithImages returns a project's designs with images preloaded in display order
func (r *DesignRepository) FindByProjectIDWithImages(projectID string) ([]models.Design, error) {
	var designs []models.Design
	result := database.DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Where("project_id = ?", projectID).
		Order("created_at asc").
		Find(&designs)
	return designs, result.Error
}

// FindImagesByProjectID returns every image of every design in a project
func (r *DesignRepository) FindImagesByProjectID(projectID string) ([]models.DesignImage, error) {
	var images []models.DesignImage
	result := database.DB.
		Joins("JOIN designs ON designs.id = design_images.design_id").
		Where("designs.project_id = ?", projectID).
		Order("design_images.display_order asc").
		Find(&images)
	return images, result.Error
}

// FindThumbnail returns the first image of the earliest design, or nil when the project has none
func (r *DesignRepository) FindThumbnail(projectID string) (*models.DesignImage, error) {
	var designs []models.Design
	if err := database.DB.Select("id").
		Where("project_id = ?", projectID).
		Order("created_at asc").
		Limit(1).
		Find(&designs).Error; err != nil {
		return nil, err
	}
	if len(designs) == 0 {
		return nil, nil
	}

	var images []models.DesignImage
	if err := database.DB.
		Where("design_id = ?", designs[0].ID).
		Order("display_order asc").
		Limit(1).
		Find(&images).Error; err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, nil
	}
	return &images[0], nil
}
