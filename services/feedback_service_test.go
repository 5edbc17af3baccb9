package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/designsync-api/database"
	"github.com/designsync-api/dto"
	"github.com/designsync-api/lib/cache"
	"github.com/designsync-api/models"
)

func TestCreateFeedbackValidation(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "owner@example.com", models.RoleUser)
	project := createProject(t, owner.ID, "Shop", time.Now())
	svc := NewFeedbackService()
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreateFeedbackRequest
		want error
	}{
		{
			name: "missing project",
			req:  dto.CreateFeedbackRequest{Feedbacks: []dto.ScreenFeedbackInput{{FeedbackText: "hi"}}},
			want: ErrValidation,
		},
		{
			name: "no feedbacks",
			req:  dto.CreateFeedbackRequest{ProjectID: project.ID},
			want: ErrValidation,
		},
		{
			name: "rating out of range",
			req: dto.CreateFeedbackRequest{
				ProjectID: project.ID,
				Ratings:   map[string]int{"usability": 6},
				Feedbacks: []dto.ScreenFeedbackInput{{FeedbackText: "hi"}},
			},
			want: ErrValidation,
		},
		{
			name: "only blank texts",
			req: dto.CreateFeedbackRequest{
				ProjectID: project.ID,
				Feedbacks: []dto.ScreenFeedbackInput{{FeedbackText: "  "}, {FeedbackText: ""}},
			},
			want: ErrValidation,
		},
		{
			name: "unknown project",
			req: dto.CreateFeedbackRequest{
				ProjectID: "00000000-0000-0000-0000-000000000000",
				Feedbacks: []dto.ScreenFeedbackInput{{FeedbackText: "hi"}},
			},
			want: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateFeedback(ctx, owner.ID, tt.req); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateFeedbackStoresRatingsOnFirstFeedback(t *testing.T) {
	setupTestDB(t)
	memCache := newMemoryCache()
	cache.Default = memCache

	owner := createUser(t, "owner@example.com", models.RoleUser)
	reviewer := createUser(t, "reviewer@example.com", models.RoleUser)
	project := createProject(t, owner.ID, "Shop", time.Now())

	res, err := NewFeedbackService().CreateFeedback(context.Background(), reviewer.ID, dto.CreateFeedbackRequest{
		ProjectID: project.ID,
		Ratings: map[string]int{
			"user-flow":   5,
			"ux-writing":  0,
			"custom-type": 3,
		},
		Feedbacks: []dto.ScreenFeedbackInput{
			{FeedbackText: ""},
			{FeedbackText: "The flow is smooth"},
			{FeedbackText: "Copy could be shorter"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var feedbacks []models.Feedback
	database.DB.Where("project_id = ?", project.ID).Find(&feedbacks)
	if len(feedbacks) != 2 {
		t.Fatalf("expected 2 stored feedbacks, got %d", len(feedbacks))
	}

	var main models.Feedback
	database.DB.First(&main, "id = ?", res.FeedbackID)
	if main.FeedbackText != "The flow is smooth" {
		t.Errorf("expected ratings on the first non-blank feedback, got %q", main.FeedbackText)
	}

	var ratings []models.FeedbackRating
	database.DB.Where("feedback_id = ?", res.FeedbackID).Order("feedback_type asc").Find(&ratings)
	if len(ratings) != 2 {
		t.Fatalf("expected 2 ratings (zero skipped), got %d", len(ratings))
	}
	if ratings[0].FeedbackType != "User Flow" || ratings[0].Rating != 5 {
		t.Errorf("unexpected rating: %+v", ratings[0])
	}
	if ratings[1].FeedbackType != "custom-type" {
		t.Errorf("expected unknown type kept verbatim, got %s", ratings[1].FeedbackType)
	}

	if len(memCache.deletes) != 1 || memCache.deletes[0] != cache.ProjectDetailKey(project.ID) {
		t.Errorf("expected project detail invalidation, got %v", memCache.deletes)
	}
}

func TestAverageRatingsRoundToOneDecimal(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "owner@example.com", models.RoleUser)
	project := createProject(t, owner.ID, "Shop", time.Now())
	svc := NewFeedbackService()
	ctx := context.Background()

	for _, score := range []int{5, 4, 4} {
		_, err := svc.CreateFeedback(ctx, owner.ID, dto.CreateFeedbackRequest{
			ProjectID: project.ID,
			Ratings:   map[string]int{"usability": score},
			Feedbacks: []dto.ScreenFeedbackInput{{FeedbackText: "ok"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	averages := svc.GetAverageRatingsByProject(project.ID)
	if averages["Usability"] != 4.3 {
		t.Errorf("expected 4.3, got %v", averages["Usability"])
	}

	empty := svc.GetAverageRatingsByProject("00000000-0000-0000-0000-000000000000")
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty map, got %v", empty)
	}
}

func TestGetFeedbacksByProjectNewestFirst(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "owner@example.com", models.RoleUser)
	project := createProject(t, owner.ID, "Shop", time.Now())
	base := time.Now().Add(-time.Hour)

	database.DB.Create(&models.Feedback{ProjectID: project.ID, UserID: &owner.ID, FeedbackText: "old", CreatedAt: base})
	database.DB.Create(&models.Feedback{ProjectID: project.ID, FeedbackText: "new", CreatedAt: base.Add(time.Minute)})

	items, err := NewFeedbackService().GetFeedbacksByProject(project.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].FeedbackText != "new" {
		t.Fatalf("expected newest first, got %+v", items)
	}
	if items[0].UserName != nil {
		t.Errorf("expected anonymous feedback to have no user name")
	}
	if items[1].UserName == nil || *items[1].UserName != "user-owner@example.com" {
		t.Errorf("expected author name, got %v", items[1].UserName)
	}

	if _, err := NewFeedbackService().GetFeedbacksByProject("00000000-0000-0000-0000-000000000000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRoundToTenth(t *testing.T) {
	tests := map[float64]float64{
		4.333: 4.3,
		4.36:  4.4,
		3:     3,
		2.96:  3,
	}
	for in, want := range tests {
		if got := RoundToTenth(in); got != want {
			t.Errorf("RoundToTenth(%v): expected %v, got %v", in, want, got)
		}
	}
}

func TestProjectRatingsAndQuestionsHideDeletedProjects(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "owner@example.com", models.RoleUser)
	project := createProject(t, owner.ID, "Shop", time.Now())
	feedbacks := NewFeedbackService()
	questions := NewQuestionService()

	ratings, err := feedbacks.GetProjectRatings(project.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ratings == nil || len(ratings) != 0 {
		t.Errorf("expected empty ratings, got %v", ratings)
	}

	if err := database.DB.Delete(&models.Project{}, "id = ?", project.ID).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := feedbacks.GetProjectRatings(project.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for ratings, got %v", err)
	}
	if _, err := questions.GetQuestionsByProject(project.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for questions, got %v", err)
	}
}
