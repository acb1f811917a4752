package reading

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/bandprep/internal/prompts"
	"github.com/julianstephens/bandprep/internal/scoring"
)

// AnswersChangedMsg carries the full answer sheet after any edit. The owner
// persists it; the component never touches the store.
type AnswersChangedMsg struct {
	Answers []string
}

type SubmitMsg struct{}

type ClearMsg struct{}

type Model struct {
	drill   prompts.ReadingDrill
	key     []string
	answers []string
	cursor  int
	width   int
	height  int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	passageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			MarginBottom(1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	blankStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true).
			MarginTop(1)
)

// answerCycle is the order the space key steps through.
var answerCycle = []string{"", "T", "F", "NG"}

func New(drill prompts.ReadingDrill, key, answers []string, width, height int) Model {
	sheet := make([]string, len(drill.Questions))
	copy(sheet, answers)
	return Model{
		drill:   drill,
		key:     key,
		answers: sheet,
		width:   width,
		height:  height,
	}
}

func (m *Model) SetAnswers(answers []string) {
	sheet := make([]string, len(m.drill.Questions))
	copy(sheet, answers)
	m.answers = sheet
}

func (m Model) Answers() []string {
	out := make([]string, len(m.answers))
	copy(out, m.answers)
	return out
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.answers)-1 {
				m.cursor++
			}
		case "t":
			return m.setAnswer("T")
		case "f":
			return m.setAnswer("F")
		case "n":
			return m.setAnswer("NG")
		case " ":
			return m.setAnswer(nextAnswer(m.answers[m.cursor]))
		case "backspace":
			return m.setAnswer("")
		case "s", "enter":
			return m, func() tea.Msg { return SubmitMsg{} }
		case "c":
			return m, func() tea.Msg { return ClearMsg{} }
		}
	}
	return m, nil
}

func (m Model) setAnswer(value string) (Model, tea.Cmd) {
	m.answers[m.cursor] = value
	sheet := m.Answers()
	return m, func() tea.Msg { return AnswersChangedMsg{Answers: sheet} }
}

func nextAnswer(current string) string {
	for i, a := range answerCycle {
		if a == current {
			return answerCycle[(i+1)%len(answerCycle)]
		}
	}
	return answerCycle[0]
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var sections []string

	sections = append(sections, titleStyle.Render(m.drill.Title))
	sections = append(sections, passageStyle.Width(m.width-8).Render(m.drill.Passage))

	for i, q := range m.drill.Questions {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		answer := m.answers[i]
		var rendered string
		if answer == "" {
			rendered = blankStyle.Render("[ ]")
		} else {
			rendered = answerStyle.Render("[" + answer + "]")
		}
		sections = append(sections, fmt.Sprintf("%s%s %d. %s", marker, rendered, i+1, q.Text))
	}

	score := scoring.Score(m.answers, m.key)
	sections = append(sections, scoreStyle.Render(fmt.Sprintf("Score: %d/%d", score, len(m.key))))

	helpText := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		MarginTop(1).
		Render("t/f/n set · space cycle · s submit · c clear")
	sections = append(sections, helpText)

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Left,
		lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 4).Render(content),
	)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
