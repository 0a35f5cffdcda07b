package services

import (
	"context"
	"errors"
	"testing"

	"techquiz/models"
	"techquiz/storage"
)

func newSessionFixture(t *testing.T) (*SessionService, *ContentService) {
	t.Helper()
	content, err := NewContentService(storage.NewMemory())
	if err != nil {
		t.Fatalf("new content service: %v", err)
	}
	return NewSessionService(content), content
}

// answerAll walks the whole session, choosing the correct option when
// correct is true and a guaranteed-wrong option otherwise, and returns the
// final view.
func answerAll(t *testing.T, sessions *SessionService, content *ContentService, sessionID string, correct bool) SessionView {
	t.Helper()

	view, err := sessions.Get(sessionID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}

	for {
		question, ok := content.Question(view.Question.ID)
		if !ok {
			t.Fatalf("active question %s not in content store", view.Question.ID)
		}

		choice := question.CorrectAnswer
		if !correct {
			for _, key := range models.OptionKeys {
				if key != question.CorrectAnswer {
					choice = key
					break
				}
			}
		}

		if view, err = sessions.Select(sessionID, choice); err != nil {
			t.Fatalf("select: %v", err)
		}
		if view.Status != SessionRevealed {
			t.Fatalf("expected revealed after select, got %s", view.Status)
		}

		if view, err = sessions.Advance(sessionID); err != nil {
			t.Fatalf("advance: %v", err)
		}
		if view.Status == SessionFinished {
			return view
		}
	}
}

func TestSessionVisitsEveryQuestionInOrder(t *testing.T) {
	sessions, content := newSessionFixture(t)

	view, err := sessions.Start("web-dev")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if view.Status != SessionAnswering {
		t.Fatalf("expected answering, got %s", view.Status)
	}
	if view.TotalQuestions != 5 {
		t.Fatalf("expected 5 questions, got %d", view.TotalQuestions)
	}

	expected := content.QuestionsForCategory("web-dev")
	for i, want := range expected {
		if view.QuestionIndex != i {
			t.Fatalf("expected index %d, got %d", i, view.QuestionIndex)
		}
		if view.Question.ID != want.ID {
			t.Fatalf("expected question %s at index %d, got %s", want.ID, i, view.Question.ID)
		}

		if view, err = sessions.Select(view.SessionID, models.OptionA); err != nil {
			t.Fatalf("select: %v", err)
		}
		if view, err = sessions.Advance(view.SessionID); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	if view.Status != SessionFinished {
		t.Fatalf("expected finished after last question, got %s", view.Status)
	}
	if view.Result == nil {
		t.Fatal("finished view missing result payload")
	}
	if view.Result.Score < 0 || view.Result.Score > 5 {
		t.Fatalf("score %d out of range", view.Result.Score)
	}
}

func TestPerfectScore(t *testing.T) {
	sessions, content := newSessionFixture(t)

	view, err := sessions.Start("cs-basics")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	final := answerAll(t, sessions, content, view.SessionID, true)
	if final.Result.Score != 5 || final.Result.TotalQuestions != 5 {
		t.Fatalf("expected 5/5, got %d/%d", final.Result.Score, final.Result.TotalQuestions)
	}
	if final.Result.CategoryName != "CS Basics" {
		t.Fatalf("expected category name CS Basics, got %q", final.Result.CategoryName)
	}
	if final.Result.Percentage != 100 {
		t.Fatalf("expected 100%%, got %d", final.Result.Percentage)
	}
}

func TestZeroScore(t *testing.T) {
	sessions, content := newSessionFixture(t)

	view, err := sessions.Start("cs-basics")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	final := answerAll(t, sessions, content, view.SessionID, false)
	if final.Result.Score != 0 {
		t.Fatalf("expected score 0, got %d", final.Result.Score)
	}
	if final.Result.Percentage != 0 {
		t.Fatalf("expected 0%%, got %d", final.Result.Percentage)
	}
}

func TestPercentageRounding(t *testing.T) {
	sessions, content := newSessionFixture(t)
	ctx := context.Background()

	category, err := content.AddCategory(ctx, AddCategoryInput{Name: "Tiny"})
	if err != nil {
		t.Fatalf("add category: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := content.AddQuestion(ctx, AddQuestionInput{
			CategoryID: category.ID,
			Text:       "Pick a",
			Options: map[models.OptionKey]models.QuestionOption{
				models.OptionA: {Text: "1"},
				models.OptionB: {Text: "2"},
				models.OptionC: {Text: "3"},
				models.OptionD: {Text: "4"},
			},
			CorrectAnswer: models.OptionA,
		}); err != nil {
			t.Fatalf("add question: %v", err)
		}
	}

	view, err := sessions.Start(category.ID)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	// 1 of 3 correct: 33.33… rounds to 33.
	if view, err = sessions.Select(view.SessionID, models.OptionA); err != nil {
		t.Fatalf("select: %v", err)
	}
	if view, err = sessions.Advance(view.SessionID); err != nil {
		t.Fatalf("advance: %v", err)
	}
	for i := 0; i < 2; i++ {
		if view, err = sessions.Select(view.SessionID, models.OptionB); err != nil {
			t.Fatalf("select: %v", err)
		}
		if view, err = sessions.Advance(view.SessionID); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	if view.Result.Percentage != 33 {
		t.Fatalf("expected 33%%, got %d", view.Result.Percentage)
	}
}

func TestSelectWhileRevealedIsIgnored(t *testing.T) {
	sessions, content := newSessionFixture(t)

	view, err := sessions.Start("web-dev")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	question, _ := content.Question(view.Question.ID)

	view, err = sessions.Select(view.SessionID, question.CorrectAnswer)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if view.Score != 1 {
		t.Fatalf("expected score 1 after correct select, got %d", view.Score)
	}

	// Re-selecting the correct answer while revealed must not double-count.
	view, err = sessions.Select(view.SessionID, question.CorrectAnswer)
	if err != nil {
		t.Fatalf("repeat select: %v", err)
	}
	if view.Score != 1 {
		t.Fatalf("repeat select changed score to %d", view.Score)
	}
	if view.Selected != question.CorrectAnswer {
		t.Fatalf("repeat select changed selection to %q", view.Selected)
	}

	// A different option while revealed is equally ignored.
	var other models.OptionKey
	for _, key := range models.OptionKeys {
		if key != question.CorrectAnswer {
			other = key
			break
		}
	}
	view, err = sessions.Select(view.SessionID, other)
	if err != nil {
		t.Fatalf("select other: %v", err)
	}
	if view.Selected != question.CorrectAnswer || view.Score != 1 {
		t.Fatalf("revealed state changed: selected=%q score=%d", view.Selected, view.Score)
	}
}

func TestAdvanceRequiresReveal(t *testing.T) {
	sessions, _ := newSessionFixture(t)

	view, err := sessions.Start("web-dev")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	if _, err := sessions.Advance(view.SessionID); !errors.Is(err, ErrNotRevealed) {
		t.Fatalf("expected ErrNotRevealed, got %v", err)
	}
}

func TestCorrectAnswerHiddenUntilRevealed(t *testing.T) {
	sessions, _ := newSessionFixture(t)

	view, err := sessions.Start("web-dev")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if view.CorrectAnswer != "" {
		t.Fatalf("correct answer leaked before reveal: %q", view.CorrectAnswer)
	}

	view, err = sessions.Select(view.SessionID, models.OptionB)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if view.CorrectAnswer == "" {
		t.Fatal("correct answer missing after reveal")
	}
}

func TestStartRejectsUnknownAndEmptyCategories(t *testing.T) {
	sessions, content := newSessionFixture(t)
	ctx := context.Background()

	if _, err := sessions.Start("nope"); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}

	empty, err := content.AddCategory(ctx, AddCategoryInput{Name: "Empty"})
	if err != nil {
		t.Fatalf("add category: %v", err)
	}
	if _, err := sessions.Start(empty.ID); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestFinishedSessionIsDiscarded(t *testing.T) {
	sessions, content := newSessionFixture(t)

	view, err := sessions.Start("ai-ml")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	id := view.SessionID

	answerAll(t, sessions, content, id, true)

	if _, err := sessions.Get(id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after finish, got %v", err)
	}
}

func TestEndDiscardsMidSession(t *testing.T) {
	sessions, _ := newSessionFixture(t)

	view, err := sessions.Start("ai-ml")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	if err := sessions.End(view.SessionID); err != nil {
		t.Fatalf("end session: %v", err)
	}
	if _, err := sessions.Get(view.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after end, got %v", err)
	}
	if err := sessions.End(view.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on repeat end, got %v", err)
	}
}

func TestSnapshotIgnoresLaterContentChanges(t *testing.T) {
	sessions, content := newSessionFixture(t)
	ctx := context.Background()

	view, err := sessions.Start("web-dev")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	// Deleting a not-yet-visited question must not affect the running pass.
	if err := content.DeleteQuestion(ctx, "web-5"); err != nil {
		t.Fatalf("delete question: %v", err)
	}
	if view.TotalQuestions != 5 {
		t.Fatalf("expected snapshot of 5 questions, got %d", view.TotalQuestions)
	}

	final := answerAll(t, sessions, content, view.SessionID, false)
	if final.Result.TotalQuestions != 5 {
		t.Fatalf("expected 5 total in result, got %d", final.Result.TotalQuestions)
	}
}

func TestMalformedQuestionNeverScores(t *testing.T) {
	sessions, content := newSessionFixture(t)
	ctx := context.Background()

	category, err := content.AddCategory(ctx, AddCategoryInput{Name: "Broken"})
	if err != nil {
		t.Fatalf("add category: %v", err)
	}
	// Correct answer points at an unpopulated option slot.
	if _, err := content.AddQuestion(ctx, AddQuestionInput{
		CategoryID: category.ID,
		Text:       "No right answer to pick",
		Options: map[models.OptionKey]models.QuestionOption{
			models.OptionA: {Text: "x"},
			models.OptionB: {Text: "y"},
			models.OptionC: {},
			models.OptionD: {Text: "z"},
		},
		CorrectAnswer: models.OptionC,
	}); err != nil {
		t.Fatalf("add question: %v", err)
	}

	view, err := sessions.Start(category.ID)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	view, err = sessions.Select(view.SessionID, models.OptionA)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if view.Score != 0 {
		t.Fatalf("expected score 0 for malformed question, got %d", view.Score)
	}
}

func TestSelectRejectsInvalidOption(t *testing.T) {
	sessions, _ := newSessionFixture(t)

	view, err := sessions.Start("web-dev")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	if _, err := sessions.Select(view.SessionID, "e"); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}
