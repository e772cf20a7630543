package riasec

import (
	"math"
	"sort"

	"vocational-api/internal/domain"
)

// DefaultMatchLimit es la cantidad de carreras recomendadas por defecto.
const DefaultMatchLimit = 5

// Match empareja una copia de la entrada del catalogo con su similitud.
// El catalogo compartido nunca se muta: cada Match lleva su propia copia.
type Match struct {
	Course domain.Course
	Score  float64
}

// CosineSimilarity calcula la similitud coseno entre dos perfiles RIASEC:
// producto punto dividido por el producto de las normas. Si alguna norma es
// cero la similitud se define como 0.0, nunca se divide por cero.
func CosineSimilarity(a, b domain.ProfileVector) float64 {
	av := a.Values()
	bv := b.Values()

	var dot, normA, normB float64
	for i := range av {
		dot += av[i] * bv[i]
		normA += av[i] * av[i]
		normB += bv[i] * bv[i]
	}

	normA = math.Sqrt(normA)
	normB = math.Sqrt(normB)
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (normA * normB)
}

// Rank puntua todo el catalogo contra el perfil del usuario y devuelve los
// mejores limit resultados en orden descendente. El orden es estable: ante
// empate de score se conserva el orden original del catalogo. El largo del
// resultado es min(limit, len(catalog)); limit <= 0 cae al default.
func Rank(user domain.ProfileVector, catalog []domain.Course, limit int) []Match {
	if limit <= 0 {
		limit = DefaultMatchLimit
	}

	matches := make([]Match, len(catalog))
	for i, course := range catalog {
		score := CosineSimilarity(user, course.RiasecScores)
		course.MatchScore = score
		matches[i] = Match{Course: course, Score: score}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if limit < len(matches) {
		matches = matches[:limit]
	}
	return matches
}
