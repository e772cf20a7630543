package domain

import (
	"fmt"

	pgvector "github.com/pgvector/pgvector-go"
)

// Dimension es una de las seis dimensiones RIASEC. Conjunto cerrado:
// nunca se extiende en runtime.
type Dimension string

const (
	DimRealistic     Dimension = "R"
	DimInvestigative Dimension = "I"
	DimArtistic      Dimension = "A"
	DimSocial        Dimension = "S"
	DimEnterprising  Dimension = "E"
	DimConventional  Dimension = "C"
)

// Dimensions fija el orden canonico R,I,A,S,E,C. Este orden define el
// desempate del perfil dominante y el layout del vector persistido.
var Dimensions = [6]Dimension{
	DimRealistic,
	DimInvestigative,
	DimArtistic,
	DimSocial,
	DimEnterprising,
	DimConventional,
}

// ParseDimension interpreta el primer simbolo de un string como dimension.
func ParseDimension(s string) (Dimension, bool) {
	if s == "" {
		return "", false
	}
	d := Dimension(s[:1])
	switch d {
	case DimRealistic, DimInvestigative, DimArtistic, DimSocial, DimEnterprising, DimConventional:
		return d, true
	}
	return "", false
}

// ProfileVector es el perfil RIASEC de 6 componentes. Siempre esta completo:
// una dimension sin respuestas vale 0.0, nunca queda ausente.
type ProfileVector struct {
	R float64 `json:"R"`
	I float64 `json:"I"`
	A float64 `json:"A"`
	S float64 `json:"S"`
	E float64 `json:"E"`
	C float64 `json:"C"`
}

// Get devuelve el valor de una dimension.
func (v ProfileVector) Get(d Dimension) float64 {
	switch d {
	case DimRealistic:
		return v.R
	case DimInvestigative:
		return v.I
	case DimArtistic:
		return v.A
	case DimSocial:
		return v.S
	case DimEnterprising:
		return v.E
	case DimConventional:
		return v.C
	}
	return 0
}

// Set asigna el valor de una dimension.
func (v *ProfileVector) Set(d Dimension, value float64) {
	switch d {
	case DimRealistic:
		v.R = value
	case DimInvestigative:
		v.I = value
	case DimArtistic:
		v.A = value
	case DimSocial:
		v.S = value
	case DimEnterprising:
		v.E = value
	case DimConventional:
		v.C = value
	}
}

// Values devuelve las componentes en el orden canonico.
func (v ProfileVector) Values() [6]float64 {
	return [6]float64{v.R, v.I, v.A, v.S, v.E, v.C}
}

// ToVector convierte el perfil al tipo vector de pgvector para persistencia.
func (v ProfileVector) ToVector() pgvector.Vector {
	vals := v.Values()
	out := make([]float32, len(vals))
	for i, f := range vals {
		out[i] = float32(f)
	}
	return pgvector.NewVector(out)
}

// ProfileFromVector reconstruye un perfil desde una columna vector(6).
func ProfileFromVector(vec pgvector.Vector) (ProfileVector, error) {
	slice := vec.Slice()
	if len(slice) != len(Dimensions) {
		return ProfileVector{}, fmt.Errorf("profile vector has %d components, expected %d", len(slice), len(Dimensions))
	}
	var v ProfileVector
	for i, d := range Dimensions {
		v.Set(d, float64(slice[i]))
	}
	return v, nil
}
