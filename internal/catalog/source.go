package catalog

import (
	"context"
	"errors"

	"vocational-api/internal/domain"
)

// ErrCatalogUnavailable indica que la fuente del catalogo no pudo entregar
// sus datos. Nunca se degrada a un catalogo vacio en silencio.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// Source es el colaborador que provee el cuestionario y el catalogo de
// carreras. Las implementaciones deben fallar fuerte si les falta el
// backing data, no devolver listas vacias.
type Source interface {
	Questions(ctx context.Context) ([]domain.Question, error)
	Courses(ctx context.Context) ([]domain.Course, error)
	// DimensionIndex mapea id de pregunta a su dimension declarada.
	// Reemplaza la convencion implicita de inferir la dimension del prefijo.
	DimensionIndex(ctx context.Context) (map[string]domain.Dimension, error)
}
