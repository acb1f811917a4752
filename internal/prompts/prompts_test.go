package prompts

import (
	"testing"

	"github.com/julianstephens/bandprep/internal/constants"
)

func TestLoadBanks(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("failed to load banks: %v", err)
	}

	if b.Reading.Title == "" || b.Reading.Passage == "" {
		t.Error("reading drill is missing title or passage")
	}
	if b.QuestionCount() == 0 {
		t.Fatal("reading drill has no questions")
	}
	if len(b.AnswerKey()) != b.QuestionCount() {
		t.Errorf("answer key length %d != question count %d", len(b.AnswerKey()), b.QuestionCount())
	}
	for i, label := range b.AnswerKey() {
		switch label {
		case "T", "F", "NG":
		default:
			t.Errorf("question %d has invalid key label %q", i+1, label)
		}
	}
}

func TestWritingPrompts(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("failed to load banks: %v", err)
	}

	for _, task := range []string{constants.WritingTask1, constants.WritingTask2} {
		p := b.RandomWritingPrompt(task)
		if p == "" {
			t.Errorf("empty prompt for %s", task)
		}
	}

	// Unknown task falls back rather than panicking.
	if b.RandomWritingPrompt("task9") == "" {
		t.Error("unknown task should fall back to a real prompt")
	}
}

func TestSpeakingPrompts(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("failed to load banks: %v", err)
	}

	for _, part := range []string{constants.SpeakingPart1, constants.SpeakingPart2, constants.SpeakingPart3} {
		p := b.RandomSpeakingPrompt(part)
		if p == "" {
			t.Errorf("empty prompt for %s", part)
		}
	}

	if b.RandomSpeakingPrompt("part9") == "" {
		t.Error("unknown part should fall back to a real prompt")
	}
}
