package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"vocational-api/internal/catalog"
	"vocational-api/internal/domain"
)

// PgCourseRepository sirve el catalogo de carreras desde Postgres, con el
// vector RIASEC en una columna vector(6). Alternativa al catalogo en archivo
// para despliegues donde las carreras se administran en la base.
type PgCourseRepository struct {
	pool *pgxpool.Pool
}

func NewPgCourseRepository(pool *pgxpool.Pool) *PgCourseRepository {
	return &PgCourseRepository{pool: pool}
}

func (r *PgCourseRepository) List(ctx context.Context) ([]domain.Course, error) {
	const query = `
		SELECT id, title, description, area, embedding
		FROM courses
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var (
			course    domain.Course
			embedding pgvector.Vector
		)
		if err := rows.Scan(&course.ID, &course.Title, &course.Description, &course.Area, &embedding); err != nil {
			return nil, err
		}
		if course.RiasecScores, err = domain.ProfileFromVector(embedding); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

// Nearest lista las k carreras mas cercanas a un perfil usando el operador
// de distancia coseno de pgvector. Util para inspeccion via SQL; el ranking
// autoritativo del pipeline sigue siendo el in-process.
func (r *PgCourseRepository) Nearest(ctx context.Context, profile domain.ProfileVector, k int) ([]domain.Course, error) {
	if k <= 0 {
		k = 5
	}
	const query = `
		SELECT id, title, description, area, embedding
		FROM courses
		ORDER BY embedding <=> $1
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, profile.ToVector(), k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var (
			course    domain.Course
			embedding pgvector.Vector
		)
		if err := rows.Scan(&course.ID, &course.Title, &course.Description, &course.Area, &embedding); err != nil {
			return nil, err
		}
		if course.RiasecScores, err = domain.ProfileFromVector(embedding); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

// PgCatalogSource combina las preguntas (siempre en archivo) con las carreras
// en Postgres para cumplir la interfaz catalog.Source completa.
type PgCatalogSource struct {
	questions *catalog.FileSource
	courses   *PgCourseRepository
}

func NewPgCatalogSource(questions *catalog.FileSource, courses *PgCourseRepository) *PgCatalogSource {
	return &PgCatalogSource{questions: questions, courses: courses}
}

func (s *PgCatalogSource) Questions(ctx context.Context) ([]domain.Question, error) {
	return s.questions.Questions(ctx)
}

func (s *PgCatalogSource) DimensionIndex(ctx context.Context) (map[string]domain.Dimension, error) {
	return s.questions.DimensionIndex(ctx)
}

func (s *PgCatalogSource) Courses(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, catalog.ErrCatalogUnavailable
	}
	return courses, nil
}
