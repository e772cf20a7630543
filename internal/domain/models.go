package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// MinRating y MaxRating limitan tanto el puntaje de una respuesta
	// como el rating de feedback del usuario.
	MinRating = 1
	MaxRating = 5
)

var ErrRatingOutOfRange = errors.New("rating out of range")

// Answer es una respuesta individual del cuestionario: pregunta + puntaje 1-5.
type Answer struct {
	QuestionID string `json:"question_id"`
	Score      int    `json:"score"`
}

// Validate rechaza puntajes fuera de [1,5]. Nunca se recorta en silencio.
func (a Answer) Validate() error {
	if a.Score < MinRating || a.Score > MaxRating {
		return fmt.Errorf("answer %q: score %d: %w", a.QuestionID, a.Score, ErrRatingOutOfRange)
	}
	return nil
}

// Question es un item del cuestionario con su dimension explicita.
type Question struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Dimension Dimension `json:"dimension"`
}

// Course es una entrada del catalogo. Datos de referencia inmutables despues
// de la carga; MatchScore es transitorio y solo se escribe sobre copias.
type Course struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Area         string        `json:"area"`
	RiasecScores ProfileVector `json:"riasec_scores"`
	MatchScore   float64       `json:"match_score"`
}

// Assessment es el registro persistido de una evaluacion completa.
// Se crea una sola vez al enviar el cuestionario; el unico campo mutable
// posterior es UserRating, via la operacion de feedback.
type Assessment struct {
	ID              uuid.UUID     `json:"id"`
	Scores          ProfileVector `json:"scores"`
	DominantProfile string        `json:"dominant_profile"`
	Answers         []Answer      `json:"answers"`
	TopCourseIDs    []string      `json:"top_course_ids"`
	UserRating      *int          `json:"user_rating,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}
