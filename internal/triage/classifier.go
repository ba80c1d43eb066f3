package triage

import (
	"regexp"
	"strings"
)

// Specialty names produced by the classifier.
const (
	SpecialtyCardiology      = "Cardiology"
	SpecialtyDermatology     = "Dermatology"
	SpecialtyOrthopedics     = "Orthopedics"
	SpecialtyGynecology      = "Gynecology"
	SpecialtyGeneralMedicine = "General Medicine"
)

// Keyword rules in fixed priority order; the first match wins. The
// classifier only ever sees the free-text symptom, never the answers.
var specialtyRules = []struct {
	pattern   *regexp.Regexp
	specialty string
}{
	{regexp.MustCompile(`chest|breath|heart|palpit|bp`), SpecialtyCardiology},
	{regexp.MustCompile(`rash|skin|itch|eczema`), SpecialtyDermatology},
	{regexp.MustCompile(`bone|fracture|sprain|joint|knee|back|pain`), SpecialtyOrthopedics},
	{regexp.MustCompile(`preg|period|vaginal|bleeding|cramp`), SpecialtyGynecology},
}

// ComputeSpecialty classifies a symptom into one of five specialties,
// defaulting to General Medicine when no keyword rule matches.
func ComputeSpecialty(symptom string) string {
	s := strings.ToLower(symptom)
	for _, rule := range specialtyRules {
		if rule.pattern.MatchString(s) {
			return rule.specialty
		}
	}
	return SpecialtyGeneralMedicine
}
