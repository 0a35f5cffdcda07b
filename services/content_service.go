package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"techquiz/data"
	"techquiz/models"
	"techquiz/storage"
)

const (
	categoriesKey = "quiz-categories"
	questionsKey  = "quiz-questions"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrQuestionNotFound = errors.New("question not found")
)

// ContentService is the single source of truth for categories and
// questions. All reads and writes go through it; every mutation persists
// the affected collection to durable storage before returning.
type ContentService struct {
	store storage.Store

	mu         sync.RWMutex
	categories []models.Category
	questions  []models.Question
	lastID     int64
}

// NewContentService loads both collections from storage, falling back to
// the built-in seed dataset when an entry is absent, undecodable, or fails
// validation. Seeded collections are persisted immediately.
func NewContentService(store storage.Store) (*ContentService, error) {
	s := &ContentService{store: store}
	ctx := context.Background()

	categories, ok := loadCollection[models.Category](ctx, store, categoriesKey)
	if !ok {
		categories = data.SeedCategories()
		if err := s.persist(ctx, categoriesKey, categories); err != nil {
			return nil, fmt.Errorf("persist seed categories: %w", err)
		}
	}

	questions, ok := loadCollection[models.Question](ctx, store, questionsKey)
	if !ok {
		questions = data.SeedQuestions()
		if err := s.persist(ctx, questionsKey, questions); err != nil {
			return nil, fmt.Errorf("persist seed questions: %w", err)
		}
	}

	s.categories = categories
	s.questions = questions
	return s, nil
}

type validator interface {
	Validate() error
}

// loadCollection reads and validates one persisted collection. Any read,
// decode, or validation failure is treated as "absent": logged and reported
// via the second return value, never surfaced as an error.
func loadCollection[T validator](ctx context.Context, store storage.Store, key string) ([]T, bool) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("Failed to read %s, using seed data: %v", key, err)
		}
		return nil, false
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("Failed to decode %s, using seed data: %v", key, err)
		return nil, false
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			log.Printf("Invalid record in %s, using seed data: %v", key, err)
			return nil, false
		}
	}
	return items, true
}

func (s *ContentService) persist(ctx context.Context, key string, collection any) error {
	raw, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// nextID produces a prefixed epoch-millisecond id, bumped when two ids are
// generated within the same millisecond.
func (s *ContentService) nextID(prefix string) string {
	now := time.Now().UnixMilli()
	if now <= s.lastID {
		now = s.lastID + 1
	}
	s.lastID = now
	return fmt.Sprintf("%s-%d", prefix, now)
}

// Categories returns all categories in stored order.
func (s *ContentService) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Category returns the category with the given id.
func (s *ContentService) Category(id string) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, category := range s.categories {
		if category.ID == id {
			return category, true
		}
	}
	return models.Category{}, false
}

type AddCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (s *ContentService) AddCategory(ctx context.Context, in AddCategoryInput) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := models.Category{
		ID:          s.nextID("cat"),
		Name:        in.Name,
		Description: in.Description,
		Icon:        in.Icon,
	}
	s.categories = append(s.categories, category)

	if err := s.persist(ctx, categoriesKey, s.categories); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// CategoryUpdate carries a partial update; nil fields are left untouched.
type CategoryUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

func (s *ContentService) UpdateCategory(ctx context.Context, id string, upd CategoryUpdate) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		if upd.Name != nil {
			s.categories[i].Name = *upd.Name
		}
		if upd.Description != nil {
			s.categories[i].Description = *upd.Description
		}
		if upd.Icon != nil {
			s.categories[i].Icon = *upd.Icon
		}
		if err := s.persist(ctx, categoriesKey, s.categories); err != nil {
			return models.Category{}, err
		}
		return s.categories[i], nil
	}
	return models.Category{}, ErrCategoryNotFound
}

// DeleteCategory removes the category and cascades to every question that
// references it. Both collections are persisted before returning.
func (s *ContentService) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.categories[:0:0]
	found := false
	for _, category := range s.categories {
		if category.ID == id {
			found = true
			continue
		}
		kept = append(kept, category)
	}
	if !found {
		return ErrCategoryNotFound
	}
	s.categories = kept

	remaining := s.questions[:0:0]
	for _, question := range s.questions {
		if question.CategoryID == id {
			continue
		}
		remaining = append(remaining, question)
	}
	s.questions = remaining

	if err := s.persist(ctx, categoriesKey, s.categories); err != nil {
		return err
	}
	return s.persist(ctx, questionsKey, s.questions)
}

// Questions returns all questions in stored order.
func (s *ContentService) Questions() []models.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Question returns the question with the given id.
func (s *ContentService) Question(id string) (models.Question, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, question := range s.questions {
		if question.ID == id {
			return question, true
		}
	}
	return models.Question{}, false
}

type AddQuestionInput struct {
	CategoryID    string                                     `json:"categoryId" binding:"required"`
	Text          string                                     `json:"text" binding:"required"`
	Options       map[models.OptionKey]models.QuestionOption `json:"options" binding:"required"`
	CorrectAnswer models.OptionKey                           `json:"correctAnswer" binding:"required"`
}

// AddQuestion appends a new question. The category id is not checked
// against the category collection; referential integrity is maintained
// operationally by the cascade in DeleteCategory.
func (s *ContentService) AddQuestion(ctx context.Context, in AddQuestionInput) (models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	question := models.Question{
		ID:            s.nextID("q"),
		CategoryID:    in.CategoryID,
		Text:          in.Text,
		Options:       in.Options,
		CorrectAnswer: in.CorrectAnswer,
	}
	s.questions = append(s.questions, question)

	if err := s.persist(ctx, questionsKey, s.questions); err != nil {
		return models.Question{}, err
	}
	return question, nil
}

// QuestionUpdate carries a partial update; nil fields are left untouched.
// Options, when present, replaces the whole option set.
type QuestionUpdate struct {
	CategoryID    *string                                    `json:"categoryId"`
	Text          *string                                    `json:"text"`
	Options       map[models.OptionKey]models.QuestionOption `json:"options"`
	CorrectAnswer *models.OptionKey                          `json:"correctAnswer"`
}

func (s *ContentService) UpdateQuestion(ctx context.Context, id string, upd QuestionUpdate) (models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.questions {
		if s.questions[i].ID != id {
			continue
		}
		if upd.CategoryID != nil {
			s.questions[i].CategoryID = *upd.CategoryID
		}
		if upd.Text != nil {
			s.questions[i].Text = *upd.Text
		}
		if upd.Options != nil {
			s.questions[i].Options = upd.Options
		}
		if upd.CorrectAnswer != nil {
			s.questions[i].CorrectAnswer = *upd.CorrectAnswer
		}
		if err := s.persist(ctx, questionsKey, s.questions); err != nil {
			return models.Question{}, err
		}
		return s.questions[i], nil
	}
	return models.Question{}, ErrQuestionNotFound
}

func (s *ContentService) DeleteQuestion(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.questions[:0:0]
	found := false
	for _, question := range s.questions {
		if question.ID == id {
			found = true
			continue
		}
		kept = append(kept, question)
	}
	if !found {
		return ErrQuestionNotFound
	}
	s.questions = kept

	return s.persist(ctx, questionsKey, s.questions)
}

// QuestionsForCategory filters questions by category id, preserving stored
// order.
func (s *ContentService) QuestionsForCategory(categoryID string) []models.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Question
	for _, question := range s.questions {
		if question.CategoryID == categoryID {
			out = append(out, question)
		}
	}
	return out
}
