package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vocational-api/internal/catalog"
	"vocational-api/internal/domain"
	"vocational-api/internal/email"
	"vocational-api/internal/repository"
	"vocational-api/internal/riasec"
)

var (
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrCatalogUnavailable = catalog.ErrCatalogUnavailable
	ErrAssessmentNotFound = repository.ErrAssessmentNotFound
)

// SubmitInput son los datos crudos de una evaluacion enviada.
type SubmitInput struct {
	Answers        []domain.Answer
	Email          string
	IdempotencyKey string
}

// Result es la evaluacion completa ya armada, lista para el transporte.
type Result struct {
	ID              uuid.UUID
	Scores          domain.ProfileVector
	TopCourses      []riasec.Match
	DominantProfile string
}

// AssessmentService orquesta el pipeline de evaluacion: validar, agregar,
// rankear, clasificar y persistir. Es el unico componente que toca los
// colaboradores externos (catalogo, persistencia, redis, email).
type AssessmentService struct {
	logger      *zap.Logger
	catalog     catalog.Source
	assessments repository.AssessmentRepository
	idempotency IdempotencyStore
	results     email.Sender
	matchLimit  int
}

func NewAssessmentService(
	logger *zap.Logger,
	source catalog.Source,
	assessments repository.AssessmentRepository,
	idempotency IdempotencyStore,
	results email.Sender,
	matchLimit int,
) *AssessmentService {
	if matchLimit <= 0 {
		matchLimit = riasec.DefaultMatchLimit
	}
	return &AssessmentService{
		logger:      logger,
		catalog:     source,
		assessments: assessments,
		idempotency: idempotency,
		results:     results,
		matchLimit:  matchLimit,
	}
}

// Submit procesa una evaluacion de punta a punta. Si el catalogo o la
// persistencia fallan, falla la operacion entera: nunca se devuelve un
// resultado sin persistir ni un resultado parcial.
func (s *AssessmentService) Submit(ctx context.Context, input SubmitInput) (Result, error) {
	for _, a := range input.Answers {
		if err := a.Validate(); err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrInvalidRating, err)
		}
	}

	dims, err := s.catalog.DimensionIndex(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load question index: %w", err)
	}
	courses, err := s.catalog.Courses(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load courses: %w", err)
	}

	if s.idempotency != nil && input.IdempotencyKey != "" {
		if id, ok := s.idempotency.Lookup(ctx, input.IdempotencyKey); ok {
			return s.replay(ctx, id, courses)
		}
	}

	scores, unknown := riasec.Aggregate(input.Answers, dims)
	if len(unknown) > 0 {
		s.logger.Warn("answers with unknown question ids ignored",
			zap.Strings("question_ids", unknown))
	}

	matches := riasec.Rank(scores, courses, s.matchLimit)
	dominant := riasec.Classify(scores)

	topIDs := make([]string, len(matches))
	for i, m := range matches {
		topIDs[i] = m.Course.ID
	}

	assessment := domain.Assessment{
		ID:              uuid.New(),
		Scores:          scores,
		DominantProfile: dominant,
		Answers:         input.Answers,
		TopCourseIDs:    topIDs,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.assessments.Save(ctx, assessment); err != nil {
		return Result{}, fmt.Errorf("save assessment: %w", err)
	}

	if s.idempotency != nil && input.IdempotencyKey != "" {
		if err := s.idempotency.Store(ctx, input.IdempotencyKey, assessment.ID); err != nil {
			s.logger.Warn("idempotency store failed", zap.Error(err))
		}
	}

	result := Result{
		ID:              assessment.ID,
		Scores:          scores,
		TopCourses:      matches,
		DominantProfile: dominant,
	}

	// El email es best-effort: el registro ya esta persistido, un fallo de
	// SMTP no puede voltear la operacion.
	if s.results != nil && input.Email != "" {
		if err := s.results.SendResults(ctx, input.Email, result.ID.String(), dominant, scores); err != nil {
			s.logger.Warn("results email failed",
				zap.String("assessment_id", assessment.ID.String()),
				zap.Error(err))
		}
	}

	return result, nil
}

// replay reconstruye el resultado de una evaluacion ya persistida cuando un
// reintento llega con la misma idempotency key. El ranking es determinista,
// asi que re-rankear los scores guardados reproduce los matches originales.
func (s *AssessmentService) replay(ctx context.Context, id uuid.UUID, courses []domain.Course) (Result, error) {
	stored, err := s.assessments.GetByID(ctx, id)
	if err != nil {
		return Result{}, fmt.Errorf("replay assessment %s: %w", id, err)
	}
	s.logger.Info("duplicate submission replayed", zap.String("assessment_id", id.String()))
	return Result{
		ID:              stored.ID,
		Scores:          stored.Scores,
		TopCourses:      riasec.Rank(stored.Scores, courses, s.matchLimit),
		DominantProfile: stored.DominantProfile,
	}, nil
}

// SubmitFeedback registra el rating del usuario sobre una evaluacion ya
// existente. Rating fuera de [1,5] es fault del cliente; id inexistente es
// not-found y no registra nada.
func (s *AssessmentService) SubmitFeedback(ctx context.Context, id uuid.UUID, rating int) error {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}
	if err := s.assessments.UpdateRating(ctx, id, rating); err != nil {
		return err
	}
	s.logger.Info("feedback recorded",
		zap.String("assessment_id", id.String()),
		zap.Int("rating", rating))
	return nil
}
