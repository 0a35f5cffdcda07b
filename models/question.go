package models

import "fmt"

// OptionKey is one of the four fixed answer slots.
type OptionKey string

const (
	OptionA OptionKey = "a"
	OptionB OptionKey = "b"
	OptionC OptionKey = "c"
	OptionD OptionKey = "d"
)

// OptionKeys lists the slots in display order.
var OptionKeys = []OptionKey{OptionA, OptionB, OptionC, OptionD}

func (k OptionKey) Valid() bool {
	switch k {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	}
	return false
}

// QuestionOption holds either display text or an image reference, never both.
type QuestionOption struct {
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

func (o QuestionOption) Empty() bool {
	return o.Text == "" && o.ImageURL == ""
}

type Question struct {
	ID            string                       `json:"id"`
	CategoryID    string                       `json:"categoryId"`
	Text          string                       `json:"text"`
	Options       map[OptionKey]QuestionOption `json:"options"`
	CorrectAnswer OptionKey                    `json:"correctAnswer"`
}

func (q Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question id is required")
	}
	if q.Text == "" {
		return fmt.Errorf("question text is required")
	}
	if len(q.Options) != len(OptionKeys) {
		return fmt.Errorf("question %s must have exactly %d options", q.ID, len(OptionKeys))
	}
	for _, key := range OptionKeys {
		if _, ok := q.Options[key]; !ok {
			return fmt.Errorf("question %s is missing option %q", q.ID, key)
		}
	}
	if !q.CorrectAnswer.Valid() {
		return fmt.Errorf("question %s has invalid correct answer %q", q.ID, q.CorrectAnswer)
	}
	return nil
}
