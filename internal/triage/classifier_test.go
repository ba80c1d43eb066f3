package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSpecialty(t *testing.T) {
	tests := []struct {
		symptom string
		want    string
	}{
		{"chest pain", SpecialtyCardiology},
		{"shortness of breath", SpecialtyCardiology},
		{"heart palpitations", SpecialtyCardiology},
		{"high bp", SpecialtyCardiology},
		{"itchy rash", SpecialtyDermatology},
		{"eczema flare", SpecialtyDermatology},
		{"knee pain", SpecialtyOrthopedics},
		{"sprained ankle joint", SpecialtyOrthopedics},
		{"lower back ache and pain", SpecialtyOrthopedics},
		{"missed period", SpecialtyGynecology},
		{"pregnancy cramps", SpecialtyGynecology},
		{"headache", SpecialtyGeneralMedicine},
		{"fatigue", SpecialtyGeneralMedicine},
		{"", SpecialtyGeneralMedicine},
	}
	for _, tt := range tests {
		t.Run(tt.symptom, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeSpecialty(tt.symptom))
		})
	}
}

func TestComputeSpecialtyCaseInsensitive(t *testing.T) {
	assert.Equal(t, SpecialtyCardiology, ComputeSpecialty("CHEST Pressure"))
	assert.Equal(t, SpecialtyDermatology, ComputeSpecialty("Skin Problem"))
}

func TestComputeSpecialtyPriorityOrder(t *testing.T) {
	// "chest" (cardiac) outranks "pain" (orthopedic) because the cardiac
	// rule is checked first.
	assert.Equal(t, SpecialtyCardiology, ComputeSpecialty("chest pain"))
	// "skin" outranks "bleeding" for the same reason.
	assert.Equal(t, SpecialtyDermatology, ComputeSpecialty("skin bleeding"))
}
