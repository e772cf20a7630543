package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vocational-api/internal/catalog"
	"vocational-api/internal/domain"
	"vocational-api/internal/repository"
)

type mockCatalog struct {
	questions []domain.Question
	courses   []domain.Course
	err       error
}

func (m *mockCatalog) Questions(_ context.Context) ([]domain.Question, error) {
	return m.questions, m.err
}

func (m *mockCatalog) Courses(_ context.Context) ([]domain.Course, error) {
	return m.courses, m.err
}

func (m *mockCatalog) DimensionIndex(_ context.Context) (map[string]domain.Dimension, error) {
	if m.err != nil {
		return nil, m.err
	}
	index := make(map[string]domain.Dimension, len(m.questions))
	for _, q := range m.questions {
		index[q.ID] = q.Dimension
	}
	return index, nil
}

type mockAssessmentRepo struct {
	saved   map[uuid.UUID]domain.Assessment
	saveErr error
}

func newMockAssessmentRepo() *mockAssessmentRepo {
	return &mockAssessmentRepo{saved: make(map[uuid.UUID]domain.Assessment)}
}

func (m *mockAssessmentRepo) Save(_ context.Context, a domain.Assessment) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved[a.ID] = a
	return nil
}

func (m *mockAssessmentRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Assessment, error) {
	a, ok := m.saved[id]
	if !ok {
		return domain.Assessment{}, repository.ErrAssessmentNotFound
	}
	return a, nil
}

func (m *mockAssessmentRepo) UpdateRating(_ context.Context, id uuid.UUID, rating int) error {
	a, ok := m.saved[id]
	if !ok {
		return repository.ErrAssessmentNotFound
	}
	a.UserRating = &rating
	m.saved[id] = a
	return nil
}

type mapIdempotencyStore struct {
	entries map[string]uuid.UUID
}

func (m *mapIdempotencyStore) Lookup(_ context.Context, key string) (uuid.UUID, bool) {
	id, ok := m.entries[key]
	return id, ok
}

func (m *mapIdempotencyStore) Store(_ context.Context, key string, id uuid.UUID) error {
	m.entries[key] = id
	return nil
}

func testCatalog() *mockCatalog {
	return &mockCatalog{
		questions: []domain.Question{
			{ID: "R1", Text: "q", Dimension: domain.DimRealistic},
			{ID: "R2", Text: "q", Dimension: domain.DimRealistic},
			{ID: "I1", Text: "q", Dimension: domain.DimInvestigative},
			{ID: "S1", Text: "q", Dimension: domain.DimSocial},
		},
		courses: []domain.Course{
			{ID: "ing", Title: "Ingenieria", RiasecScores: domain.ProfileVector{R: 5, I: 3}},
			{ID: "arte", Title: "Bellas Artes", RiasecScores: domain.ProfileVector{A: 5}},
			{ID: "social", Title: "Trabajo Social", RiasecScores: domain.ProfileVector{S: 5}},
		},
	}
}

func TestSubmitEndToEnd(t *testing.T) {
	repo := newMockAssessmentRepo()
	svc := NewAssessmentService(zap.NewNop(), testCatalog(), repo, nil, nil, 5)

	result, err := svc.Submit(context.Background(), SubmitInput{
		Answers: []domain.Answer{
			{QuestionID: "R1", Score: 5},
			{QuestionID: "R2", Score: 5},
			{QuestionID: "I1", Score: 1},
			{QuestionID: "S1", Score: 3},
		},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	want := domain.ProfileVector{R: 5.0, I: 1.0, S: 3.0}
	if result.Scores != want {
		t.Fatalf("expected scores %+v, got %+v", want, result.Scores)
	}
	if result.DominantProfile != "RSI" {
		t.Fatalf("expected dominant profile RSI, got %s", result.DominantProfile)
	}
	if len(result.TopCourses) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(result.TopCourses))
	}
	if result.TopCourses[0].Course.ID != "ing" {
		t.Fatalf("expected ing first, got %s", result.TopCourses[0].Course.ID)
	}

	stored, ok := repo.saved[result.ID]
	if !ok {
		t.Fatalf("expected assessment persisted under returned id")
	}
	if stored.DominantProfile != "RSI" || len(stored.TopCourseIDs) != 3 {
		t.Fatalf("unexpected persisted assessment: %+v", stored)
	}
}

func TestSubmitRejectsOutOfRangeRating(t *testing.T) {
	svc := NewAssessmentService(zap.NewNop(), testCatalog(), newMockAssessmentRepo(), nil, nil, 5)

	_, err := svc.Submit(context.Background(), SubmitInput{
		Answers: []domain.Answer{{QuestionID: "R1", Score: 6}},
	})
	if !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("expected ErrInvalidRating, got %v", err)
	}

	_, err = svc.Submit(context.Background(), SubmitInput{
		Answers: []domain.Answer{{QuestionID: "R1", Score: 0}},
	})
	if !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("expected ErrInvalidRating for score 0, got %v", err)
	}
}

func TestSubmitFailsWhenCatalogUnavailable(t *testing.T) {
	broken := &mockCatalog{err: catalog.ErrCatalogUnavailable}
	repo := newMockAssessmentRepo()
	svc := NewAssessmentService(zap.NewNop(), broken, repo, nil, nil, 5)

	_, err := svc.Submit(context.Background(), SubmitInput{
		Answers: []domain.Answer{{QuestionID: "R1", Score: 3}},
	})
	if !errors.Is(err, catalog.ErrCatalogUnavailable) {
		t.Fatalf("expected catalog error, got %v", err)
	}
	if len(repo.saved) != 0 {
		t.Fatalf("expected no partial persistence on catalog failure")
	}
}

func TestSubmitFailsWhenPersistenceFails(t *testing.T) {
	repo := newMockAssessmentRepo()
	repo.saveErr = errors.New("db down")
	svc := NewAssessmentService(zap.NewNop(), testCatalog(), repo, nil, nil, 5)

	_, err := svc.Submit(context.Background(), SubmitInput{
		Answers: []domain.Answer{{QuestionID: "R1", Score: 3}},
	})
	if err == nil {
		t.Fatalf("expected error when save fails")
	}
}

func TestSubmitEmptyAnswersYieldsZeroProfile(t *testing.T) {
	svc := NewAssessmentService(zap.NewNop(), testCatalog(), newMockAssessmentRepo(), nil, nil, 5)

	result, err := svc.Submit(context.Background(), SubmitInput{})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Scores != (domain.ProfileVector{}) {
		t.Fatalf("expected zero vector, got %+v", result.Scores)
	}
	for _, m := range result.TopCourses {
		if m.Score != 0.0 {
			t.Fatalf("expected all scores 0.0 against zero profile, got %v", m.Score)
		}
	}
}

func TestSubmitIdempotentReplay(t *testing.T) {
	repo := newMockAssessmentRepo()
	store := &mapIdempotencyStore{entries: make(map[string]uuid.UUID)}
	svc := NewAssessmentService(zap.NewNop(), testCatalog(), repo, store, nil, 5)

	input := SubmitInput{
		Answers:        []domain.Answer{{QuestionID: "R1", Score: 5}},
		IdempotencyKey: "client-key-1",
	}

	first, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected replayed submission to return original id, got %s vs %s", first.ID, second.ID)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected a single persisted record, got %d", len(repo.saved))
	}
	if second.DominantProfile != first.DominantProfile {
		t.Fatalf("expected identical replayed result")
	}
}

func TestSubmitFeedback(t *testing.T) {
	repo := newMockAssessmentRepo()
	svc := NewAssessmentService(zap.NewNop(), testCatalog(), repo, nil, nil, 5)

	result, err := svc.Submit(context.Background(), SubmitInput{
		Answers: []domain.Answer{{QuestionID: "R1", Score: 4}},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	other, err := svc.Submit(context.Background(), SubmitInput{
		Answers: []domain.Answer{{QuestionID: "I1", Score: 2}},
	})
	if err != nil {
		t.Fatalf("submit other: %v", err)
	}

	if err := svc.SubmitFeedback(context.Background(), result.ID, 6); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("expected ErrInvalidRating for rating 6, got %v", err)
	}
	if err := svc.SubmitFeedback(context.Background(), uuid.New(), 3); !errors.Is(err, ErrAssessmentNotFound) {
		t.Fatalf("expected ErrAssessmentNotFound, got %v", err)
	}

	if err := svc.SubmitFeedback(context.Background(), result.ID, 3); err != nil {
		t.Fatalf("feedback: %v", err)
	}
	updated := repo.saved[result.ID]
	if updated.UserRating == nil || *updated.UserRating != 3 {
		t.Fatalf("expected rating 3 recorded, got %+v", updated.UserRating)
	}
	untouched := repo.saved[other.ID]
	if untouched.UserRating != nil {
		t.Fatalf("expected other assessment untouched, got rating %v", *untouched.UserRating)
	}
}
