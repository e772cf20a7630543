package riasec

import (
	"sort"

	"vocational-api/internal/domain"
)

// Classify deriva el codigo de perfil dominante: las 3 dimensiones con mayor
// puntaje, concatenadas en orden descendente. Ante empate gana la dimension
// que aparece primero en el orden canonico R,I,A,S,E,C, por eso el sort
// estable sobre ese orden alcanza para que el resultado sea determinista.
// Siempre devuelve exactamente 3 caracteres.
func Classify(v domain.ProfileVector) string {
	ordered := make([]domain.Dimension, len(domain.Dimensions))
	copy(ordered, domain.Dimensions[:])

	sort.SliceStable(ordered, func(i, j int) bool {
		return v.Get(ordered[i]) > v.Get(ordered[j])
	})

	code := make([]byte, 0, 3)
	for _, d := range ordered[:3] {
		code = append(code, d[0])
	}
	return string(code)
}
