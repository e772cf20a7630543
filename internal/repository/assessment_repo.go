package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"vocational-api/internal/domain"
)

var ErrAssessmentNotFound = errors.New("assessment not found")

type AssessmentRepository interface {
	Save(ctx context.Context, assessment domain.Assessment) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Assessment, error)
	// UpdateRating fija el rating de feedback una vez. Devuelve
	// ErrAssessmentNotFound si el id no existe.
	UpdateRating(ctx context.Context, id uuid.UUID, rating int) error
}

type PgAssessmentRepository struct {
	pool *pgxpool.Pool
}

func NewPgAssessmentRepository(pool *pgxpool.Pool) *PgAssessmentRepository {
	return &PgAssessmentRepository{pool: pool}
}

func (r *PgAssessmentRepository) Save(ctx context.Context, assessment domain.Assessment) error {
	const query = `
		INSERT INTO assessments (id, scores, dominant_profile, answers_json, top_courses_json, user_rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	answersJSON, err := json.Marshal(assessment.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	coursesJSON, err := json.Marshal(assessment.TopCourseIDs)
	if err != nil {
		return fmt.Errorf("marshal top courses: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		assessment.ID,
		assessment.Scores.ToVector(),
		assessment.DominantProfile,
		answersJSON,
		coursesJSON,
		assessment.UserRating,
		assessment.CreatedAt,
	)
	return err
}

func (r *PgAssessmentRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Assessment, error) {
	const query = `
		SELECT id, scores, dominant_profile, answers_json, top_courses_json, user_rating, created_at
		FROM assessments
		WHERE id = $1
	`

	var (
		assessment  domain.Assessment
		scores      pgvector.Vector
		answersJSON []byte
		coursesJSON []byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&assessment.ID,
		&scores,
		&assessment.DominantProfile,
		&answersJSON,
		&coursesJSON,
		&assessment.UserRating,
		&assessment.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Assessment{}, ErrAssessmentNotFound
	}
	if err != nil {
		return domain.Assessment{}, err
	}

	if assessment.Scores, err = domain.ProfileFromVector(scores); err != nil {
		return domain.Assessment{}, err
	}
	if err := json.Unmarshal(answersJSON, &assessment.Answers); err != nil {
		return domain.Assessment{}, fmt.Errorf("unmarshal answers: %w", err)
	}
	if err := json.Unmarshal(coursesJSON, &assessment.TopCourseIDs); err != nil {
		return domain.Assessment{}, fmt.Errorf("unmarshal top courses: %w", err)
	}
	return assessment, nil
}

func (r *PgAssessmentRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating int) error {
	const query = `
		UPDATE assessments
		SET user_rating = $2
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, id, rating)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAssessmentNotFound
	}
	return nil
}
