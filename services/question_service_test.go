package services

import (
	"testing"
	"time"

	"github.com/designsync-api/models"
)

func TestBuildDesignQuestions(t *testing.T) {
	questions := BuildDesignQuestions(
		[]string{" First custom ", "", "Second custom"},
		[]string{"   ", "Template one"},
		"usability",
	)

	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	if questions[0].QuestionText != "First custom" || questions[0].QuestionType != models.QuestionTypeCustom {
		t.Errorf("unexpected first question: %+v", questions[0])
	}
	if questions[2].QuestionText != "Template one" || questions[2].QuestionType != models.QuestionTypeTemplate {
		t.Errorf("unexpected last question: %+v", questions[2])
	}
	if questions[1].QuestionCategory != "usability" {
		t.Errorf("expected category to be carried, got %q", questions[1].QuestionCategory)
	}
}

func TestBuildDesignQuestionsEmpty(t *testing.T) {
	if questions := BuildDesignQuestions(nil, []string{""}, ""); len(questions) != 0 {
		t.Errorf("expected no questions, got %d", len(questions))
	}
}

func TestGetQuestionsByProjectOrdered(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "owner@example.com", models.RoleUser)
	project := createProject(t, owner.ID, "Shop", time.Now())
	svc := NewQuestionService()

	if _, err := svc.CreateQuestions(project.ID, nil, BuildDesignQuestions([]string{"A", "B", "C"}, nil, "")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	questions, err := svc.GetQuestionsByProject(project.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, q := range questions {
		if q.DisplayOrder != i {
			t.Errorf("expected display order %d, got %d", i, q.DisplayOrder)
		}
	}
	if questions[2].QuestionText != "C" {
		t.Errorf("expected C last, got %s", questions[2].QuestionText)
	}
	if questions[0].QuestionCategory != nil {
		t.Errorf("expected nil category for blank input")
	}

	if got := svc.GetQuestionsByDesign("00000000-0000-0000-0000-000000000000"); got == nil || len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}
}
