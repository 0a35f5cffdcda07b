package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math"
	"sync"

	"techquiz/models"
)

type SessionStatus string

const (
	// SessionAnswering means no selection has been made for the active
	// question yet.
	SessionAnswering SessionStatus = "answering"
	// SessionRevealed means a selection was made and correctness is exposed.
	SessionRevealed SessionStatus = "revealed"
	// SessionFinished is terminal; the session is discarded on reaching it.
	SessionFinished SessionStatus = "finished"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoQuestions     = errors.New("category has no questions")
	ErrInvalidOption   = errors.New("invalid option")
	ErrNotRevealed     = errors.New("no answer selected for the current question")
)

// quizSession walks one learner through one category's question list. It is
// transient: never persisted, discarded on finish or exit.
type quizSession struct {
	id           string
	categoryID   string
	categoryName string
	questions    []models.Question

	index    int
	score    int
	selected models.OptionKey
	revealed bool
}

// SessionQuestion is the learner-facing view of the active question. The
// correct answer is withheld until the selection is revealed.
type SessionQuestion struct {
	ID      string                                     `json:"id"`
	Text    string                                     `json:"text"`
	Options map[models.OptionKey]models.QuestionOption `json:"options"`
}

// SessionResult is the final payload handed to the result display.
type SessionResult struct {
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	CategoryName   string `json:"category_name"`
	Percentage     int    `json:"percentage"`
}

// SessionView is a snapshot of session state safe to hand to a client.
type SessionView struct {
	SessionID      string           `json:"session_id"`
	CategoryID     string           `json:"category_id"`
	CategoryName   string           `json:"category_name"`
	Status         SessionStatus    `json:"status"`
	QuestionIndex  int              `json:"question_index"`
	TotalQuestions int              `json:"total_questions"`
	Score          int              `json:"score"`
	Question       *SessionQuestion `json:"question,omitempty"`
	Selected       models.OptionKey `json:"selected,omitempty"`
	CorrectAnswer  models.OptionKey `json:"correct_answer,omitempty"`
	Correct        bool             `json:"correct"`
	Result         *SessionResult   `json:"result,omitempty"`
}

// SessionService owns all active quiz sessions.
type SessionService struct {
	content *ContentService

	mu       sync.Mutex
	sessions map[string]*quizSession
}

func NewSessionService(content *ContentService) *SessionService {
	return &SessionService{
		content:  content,
		sessions: make(map[string]*quizSession),
	}
}

// Start creates a session over the category's question list. An unknown
// category or one with zero questions never starts a session; the caller
// sends the learner back to the home view.
func (s *SessionService) Start(categoryID string) (SessionView, error) {
	category, ok := s.content.Category(categoryID)
	if !ok {
		return SessionView{}, ErrCategoryNotFound
	}

	questions := s.content.QuestionsForCategory(categoryID)
	if len(questions) == 0 {
		return SessionView{}, ErrNoQuestions
	}

	session := &quizSession{
		id:           generateSessionID(),
		categoryID:   category.ID,
		categoryName: category.Name,
		questions:    questions,
	}

	s.mu.Lock()
	s.sessions[session.id] = session
	view := session.view()
	s.mu.Unlock()

	return view, nil
}

// Get returns the current state of a session.
func (s *SessionService) Get(sessionID string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return SessionView{}, ErrSessionNotFound
	}
	return session.view(), nil
}

// Select records the learner's answer for the active question and reveals
// correctness. A correct selection increments the score exactly once:
// selecting again while revealed is ignored and the current state is
// returned unchanged.
func (s *SessionService) Select(sessionID string, option models.OptionKey) (SessionView, error) {
	if !option.Valid() {
		return SessionView{}, ErrInvalidOption
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return SessionView{}, ErrSessionNotFound
	}

	if session.revealed {
		return session.view(), nil
	}

	session.selected = option
	session.revealed = true
	if option == session.questions[session.index].CorrectAnswer {
		session.score++
	}
	return session.view(), nil
}

// Advance moves past a revealed question. On the last question the session
// finishes: the result payload is built, the session is discarded, and the
// returned view is the only place the result exists.
func (s *SessionService) Advance(sessionID string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return SessionView{}, ErrSessionNotFound
	}
	if !session.revealed {
		return SessionView{}, ErrNotRevealed
	}

	if session.index == len(session.questions)-1 {
		view := session.finishedView()
		delete(s.sessions, sessionID)
		return view, nil
	}

	session.index++
	session.selected = ""
	session.revealed = false
	return session.view(), nil
}

// End discards a session; navigating away is a valid exit from any state.
func (s *SessionService) End(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

func (q *quizSession) view() SessionView {
	question := q.questions[q.index]
	view := SessionView{
		SessionID:      q.id,
		CategoryID:     q.categoryID,
		CategoryName:   q.categoryName,
		Status:         SessionAnswering,
		QuestionIndex:  q.index,
		TotalQuestions: len(q.questions),
		Score:          q.score,
		Question: &SessionQuestion{
			ID:      question.ID,
			Text:    question.Text,
			Options: question.Options,
		},
	}

	if q.revealed {
		view.Status = SessionRevealed
		view.Selected = q.selected
		view.CorrectAnswer = question.CorrectAnswer
		view.Correct = q.selected == question.CorrectAnswer
	}
	return view
}

func (q *quizSession) finishedView() SessionView {
	total := len(q.questions)
	return SessionView{
		SessionID:      q.id,
		CategoryID:     q.categoryID,
		CategoryName:   q.categoryName,
		Status:         SessionFinished,
		QuestionIndex:  q.index,
		TotalQuestions: total,
		Score:          q.score,
		Result: &SessionResult{
			Score:          q.score,
			TotalQuestions: total,
			CategoryName:   q.categoryName,
			Percentage:     int(math.Round(float64(q.score) / float64(total) * 100)),
		},
	}
}

func generateSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
