package riasec

import (
	"vocational-api/internal/domain"
)

// Aggregate reduce las respuestas a un perfil RIASEC promediando el puntaje
// por dimension. La dimension de cada pregunta sale del indice explicito
// (catalogo); si el id no figura ahi, se infiere del primer simbolo del id.
// Los ids que no resuelven a ninguna dimension no aportan a nada y se
// devuelven en unknown para que el llamador decida que hacer con ellos.
//
// Una secuencia vacia produce el vector cero. Dimensiones sin respuestas
// quedan en 0.0 explicito.
func Aggregate(answers []domain.Answer, dims map[string]domain.Dimension) (domain.ProfileVector, []string) {
	var (
		sums    [6]float64
		counts  [6]int
		unknown []string
	)

	index := make(map[domain.Dimension]int, len(domain.Dimensions))
	for i, d := range domain.Dimensions {
		index[d] = i
	}

	for _, a := range answers {
		d, ok := dims[a.QuestionID]
		if !ok {
			d, ok = domain.ParseDimension(a.QuestionID)
		}
		if !ok {
			unknown = append(unknown, a.QuestionID)
			continue
		}
		i := index[d]
		sums[i] += float64(a.Score)
		counts[i]++
	}

	var v domain.ProfileVector
	for i, d := range domain.Dimensions {
		if counts[i] > 0 {
			v.Set(d, sums[i]/float64(counts[i]))
		}
	}
	return v, unknown
}
