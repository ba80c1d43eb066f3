package triage

import (
	"strings"
	"time"
)

// Progress is a patient's partially completed triage form. An empty string
// in Answers means the question at that index has not been answered yet.
type Progress struct {
	Symptom         string    `json:"symptom"`
	Answers         []string  `json:"answers"`
	CurrentQuestion int       `json:"current_question"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewProgress starts a fresh form for a symptom.
func NewProgress(symptom string) (Progress, error) {
	symptom = strings.TrimSpace(symptom)
	if symptom == "" {
		return Progress{}, ErrEmptySymptom
	}
	return Progress{
		Symptom: symptom,
		Answers: make([]string, QuestionCount),
	}, nil
}

// Validate checks the progress shape against the fixed question bank.
func (p *Progress) Validate() error {
	if strings.TrimSpace(p.Symptom) == "" {
		return ErrEmptySymptom
	}
	if len(p.Answers) != QuestionCount {
		return ErrBadProgress
	}
	if p.CurrentQuestion < 0 || p.CurrentQuestion >= QuestionCount {
		return ErrBadProgress
	}
	// A position is only reachable by answering everything before it, so
	// a record claiming otherwise skipped the advancement guard.
	for i := 0; i < p.CurrentQuestion; i++ {
		if p.Answers[i] == "" {
			return ErrBadProgress
		}
	}
	return nil
}

// Answer records the chosen option for the current question.
func (p *Progress) Answer(option string) error {
	if option == "" {
		return ErrUnanswered
	}
	p.Answers[p.CurrentQuestion] = option
	return nil
}

// Advance moves to the next question. It refuses to move past an
// unanswered question.
func (p *Progress) Advance() error {
	if p.Answers[p.CurrentQuestion] == "" {
		return ErrUnanswered
	}
	if p.CurrentQuestion < QuestionCount-1 {
		p.CurrentQuestion++
	}
	return nil
}

// Back moves to the previous question, stopping at the first.
func (p *Progress) Back() {
	if p.CurrentQuestion > 0 {
		p.CurrentQuestion--
	}
}

// Complete reports whether every question has an answer.
func (p *Progress) Complete() bool {
	if len(p.Answers) != QuestionCount {
		return false
	}
	for _, a := range p.Answers {
		if a == "" {
			return false
		}
	}
	return true
}
