package triage

import "strings"

// QuestionCount is the fixed length of the triage form.
const QuestionCount = 10

// Question is one prompt with its closed option set.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// The bank is fixed: every patient answers the same ten questions in the
// same order, whatever the symptom says.
var questionBank = []Question{
	{Prompt: "How long have you had this symptom?", Options: []string{"<1 day", "1-3 days", ">3 days"}},
	{Prompt: "Is it getting worse?", Options: []string{"No", "Slowly", "Rapidly"}},
	{Prompt: "Do you have fever?", Options: []string{"No", "Mild", "High"}},
	{Prompt: "Any vomiting or diarrhea?", Options: []string{"No", "Sometimes", "Yes"}},
	{Prompt: "Do you have breathing difficulty?", Options: []string{"No", "Mild", "Yes"}},
	{Prompt: "Any chest pain or pressure?", Options: []string{"No", "Occasional", "Severe"}},
	{Prompt: "Is there swelling at site?", Options: []string{"No", "Mild", "Yes"}},
	{Prompt: "Any bleeding?", Options: []string{"No", "Minor", "Major"}},
	{Prompt: "Any recent injury?", Options: []string{"No", "Yes"}},
	{Prompt: "Is the symptom recurring?", Options: []string{"No", "Intermittent", "Constant"}},
}

// Questions returns the ordered question sequence for a symptom. The
// symptom must be non-empty but never changes the sequence.
func Questions(symptom string) ([]Question, error) {
	if strings.TrimSpace(symptom) == "" {
		return nil, ErrEmptySymptom
	}
	out := make([]Question, len(questionBank))
	copy(out, questionBank)
	return out, nil
}
