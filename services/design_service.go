package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/designsync-api/dto"
	"github.com/designsync-api/lib/cache"
	"github.com/designsync-api/lib/storage"
	"github.com/designsync-api/models"
	"github.com/designsync-api/repositories"
	"github.com/designsync-api/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MaxDesignImages      = 20
	DefaultMaxImageBytes = 10 * 1024 * 1024
)

// DesignService handles business logic for designs and their screens
type DesignService struct {
	designRepo      *repositories.DesignRepository
	projectRepo     *repositories.ProjectRepository
	questionService *QuestionService

	// MaxImageBytes caps the size of a single uploaded screen
	MaxImageBytes int64
}

// NewDesignService creates a new design service instance
func NewDesignService() *DesignService {
	return &DesignService{
		designRepo:      repositories.NewDesignRepository(),
		projectRepo:     repositories.NewProjectRepository(),
		questionService: NewQuestionService(),
		MaxImageBytes:   DefaultMaxImageBytes,
	}
}

// ValidateImages checks count, size and content type of uploaded screens
func (s *DesignService) ValidateImages(files []*multipart.FileHeader) error {
	if len(files) == 0 {
		return validationErrorf("At least one image is required")
	}
	if len(files) > MaxDesignImages {
		return validationErrorf("Too many images: at most %d files are allowed", MaxDesignImages)
	}
	for _, fh := range files {
		if s.MaxImageBytes > 0 && fh.Size > s.MaxImageBytes {
			return validationErrorf("File %s exceeds the %d MB limit", fh.Filename, s.MaxImageBytes/(1024*1024))
		}
		contentType, err := imageContentType(fh)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", fh.Filename, err)
		}
		if !strings.HasPrefix(contentType, "image/") {
			return validationErrorf("Only image files are allowed")
		}
	}
	return nil
}

// imageContentType returns the part's declared type, sniffing the first bytes when the client sent none
func imageContentType(fh *multipart.FileHeader) (string, error) {
	contentType := fh.Header.Get("Content-Type")
	if contentType != "" && contentType != "application/octet-stream" {
		return contentType, nil
	}

	file, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}

// CreateDesign stores a design, uploads its screens and creates its questions.
// Screens that fail to upload or save are logged and skipped.
func (s *DesignService) CreateDesign(ctx context.Context, projectID, userID string, isAdmin bool, req dto.CreateDesignRequest) (*dto.CreateDesignResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationErrorf("Design name is required")
	}
	if err := s.ValidateImages(req.Images); err != nil {
		return nil, err
	}

	ownerID, err := s.projectRepo.GetOwnerID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	if !isAdmin && ownerID != userID {
		return nil, fmt.Errorf("%w: only the project owner can upload designs", ErrForbidden)
	}

	design, err := s.designRepo.Create(models.Design{ProjectID: projectID, Name: name})
	if err != nil {
		return nil, fmt.Errorf("failed to create design: %w", err)
	}

	folder := fmt.Sprintf("projects/%s/designs/%s", projectID, design.ID)
	images := make([]models.DesignImage, 0, len(req.Images))
	for i, fh := range req.Images {
		image, err := s.uploadImage(ctx, folder, fh, design.ID, i)
		if err != nil {
			utils.Logger.WithError(err).Errorf("Failed to upload image %d (%s) for design %s", i+1, fh.Filename, design.ID)
			continue
		}
		images = append(images, image)
	}

	questions := BuildDesignQuestions(req.CustomQuestions, req.SelectedQuestions, strings.TrimSpace(req.QuestionCategory))
	if len(questions) > 0 {
		if _, err := s.questionService.CreateQuestions(projectID, &design.ID, questions); err != nil {
			utils.Logger.WithError(err).Errorf("Failed to save questions for design %s", design.ID)
		}
	}

	if err := cache.Default.Delete(ctx, cache.ProjectDetailKey(projectID)); err != nil {
		utils.Logger.WithError(err).Warnf("Failed to invalidate project cache for %s", projectID)
	}

	return &dto.CreateDesignResponse{Design: design, Images: images}, nil
}

func (s *DesignService) uploadImage(ctx context.Context, folder string, fh *multipart.FileHeader, designID string, index int) (models.DesignImage, error) {
	if storage.Store == nil {
		return models.DesignImage{}, storage.ErrNotConfigured
	}

	file, err := fh.Open()
	if err != nil {
		return models.DesignImage{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return models.DesignImage{}, err
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	result, err := storage.Store.Upload(ctx, storage.UploadInput{
		Folder:      folder,
		FileName:    uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename)),
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		return models.DesignImage{}, err
	}

	return s.designRepo.CreateImage(models.DesignImage{
		DesignID:     designID,
		ImageURL:     result.URL,
		PublicID:     result.PublicID,
		ScreenNumber: index + 1,
		DisplayOrder: index,
	})
}

// ListDesigns returns a project's designs with their images
func (s *DesignService) ListDesigns(projectID string) ([]models.Design, error) {
	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	designs, err := s.designRepo.FindByProjectIDWithImages(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch designs: %w", err)
	}
	if designs == nil {
		designs = []models.Design{}
	}
	return designs, nil
}
