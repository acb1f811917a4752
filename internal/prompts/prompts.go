// Package prompts holds the static practice content: the reading drill with
// its fixed answer key, and the writing and speaking prompt banks. The banks
// ship embedded in the binary and never change at runtime.
package prompts

import (
	"fmt"
	"math/rand"
	"sync"

	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/bandprep/internal/constants"
)

//go:embed banks.yaml
var rawBanks []byte

// ReadingQuestion is one True/False/Not-Given statement with its key answer.
type ReadingQuestion struct {
	Text   string `yaml:"text"`
	Answer string `yaml:"answer"`
}

// ReadingDrill is the reading comprehension exercise.
type ReadingDrill struct {
	Title     string            `yaml:"title"`
	Passage   string            `yaml:"passage"`
	Questions []ReadingQuestion `yaml:"questions"`
}

// Banks is the full parsed prompt content.
type Banks struct {
	Reading  ReadingDrill        `yaml:"reading"`
	Writing  map[string][]string `yaml:"writing"`
	Speaking map[string][]string `yaml:"speaking"`
}

var (
	loadOnce sync.Once
	loaded   *Banks
	loadErr  error
)

// Load parses the embedded banks. The result is cached; repeated calls are
// cheap.
func Load() (*Banks, error) {
	loadOnce.Do(func() {
		var b Banks
		if err := yaml.Unmarshal(rawBanks, &b); err != nil {
			loadErr = fmt.Errorf("failed to parse prompt banks: %w", err)
			return
		}
		if err := b.validate(); err != nil {
			loadErr = err
			return
		}
		loaded = &b
	})
	return loaded, loadErr
}

func (b *Banks) validate() error {
	if len(b.Reading.Questions) == 0 {
		return fmt.Errorf("reading drill has no questions")
	}
	for i, q := range b.Reading.Questions {
		switch q.Answer {
		case "T", "F", "NG":
		default:
			return fmt.Errorf("reading question %d has invalid answer %q", i+1, q.Answer)
		}
	}
	for _, task := range []string{constants.WritingTask1, constants.WritingTask2} {
		if len(b.Writing[task]) == 0 {
			return fmt.Errorf("no writing prompts for %s", task)
		}
	}
	for _, part := range []string{constants.SpeakingPart1, constants.SpeakingPart2, constants.SpeakingPart3} {
		if len(b.Speaking[part]) == 0 {
			return fmt.Errorf("no speaking prompts for %s", part)
		}
	}
	return nil
}

// QuestionCount returns the fixed length of the reading answer sheet.
func (b *Banks) QuestionCount() int {
	return len(b.Reading.Questions)
}

// AnswerKey returns the fixed reading answer key, one label per question.
func (b *Banks) AnswerKey() []string {
	key := make([]string, len(b.Reading.Questions))
	for i, q := range b.Reading.Questions {
		key[i] = q.Answer
	}
	return key
}

// RandomWritingPrompt picks a prompt for the given task. Unknown tasks fall
// back to task 2.
func (b *Banks) RandomWritingPrompt(task string) string {
	pool, ok := b.Writing[task]
	if !ok || len(pool) == 0 {
		pool = b.Writing[constants.WritingTask2]
	}
	return pool[rand.Intn(len(pool))]
}

// RandomSpeakingPrompt picks a prompt for the given part. Unknown parts fall
// back to part 1.
func (b *Banks) RandomSpeakingPrompt(part string) string {
	pool, ok := b.Speaking[part]
	if !ok || len(pool) == 0 {
		pool = b.Speaking[constants.SpeakingPart1]
	}
	return pool[rand.Intn(len(pool))]
}
