package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateQuiz(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || m.quiz == nil {
		return m, nil
	}
	q := m.quiz.Current()

	switch s := km.String(); s {
	case "esc":
		m.mode = modeRead
	case "up", "k":
		m.quizCursor = max(0, m.quizCursor-1)
	case "down", "j":
		m.quizCursor = min(len(q.Options)-1, m.quizCursor+1)
	case " ":
		m.selectOption(m.quizCursor)
	case "enter":
		if !m.quiz.CanAdvance() {
			m.selectOption(m.quizCursor)
		}
		m.quiz.Next()
		m.afterQuizMove()
	case "left", "backspace":
		m.quiz.Previous()
		m.afterQuizMove()
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			opt := int(s[0] - '1')
			if opt < len(q.Options) {
				m.quizCursor = opt
				m.selectOption(opt)
			}
		}
	}
	return m, nil
}

func (m *Model) selectOption(opt int) {
	if err := m.quiz.Select(opt); err != nil {
		m.setError(err.Error())
	}
}

// afterQuizMove puts the cursor on the stored answer and finishes the quiz
// once the last question has been answered.
func (m *Model) afterQuizMove() {
	if m.quiz.Done() {
		m.setStatus(fmt.Sprintf("Your score: %d out of %d", m.quiz.Score(), m.quiz.Len()))
		m.log.Info().Int("score", m.quiz.Score()).Int("questions", m.quiz.Len()).Msg("quiz completed")
		m.mode = modeRead
		return
	}
	m.quizCursor = 0
	if sel, ok := m.quiz.Selected(); ok {
		m.quizCursor = sel
	}
}

func (m *Model) viewQuiz() string {
	if m.quiz == nil {
		return ""
	}
	q := m.quiz.Current()
	selected, answered := m.quiz.Selected()

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.quiz.Title()))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("Question %d of %d", m.quiz.Index()+1, m.quiz.Len())))
	b.WriteString("\n")
	b.WriteString(q.Prompt)
	b.WriteString("\n\n")
	for i, opt := range q.Options {
		cursor := "  "
		if i == m.quizCursor {
			cursor = "> "
		}
		mark := "( )"
		if answered && i == selected {
			mark = "(•)"
		}
		line := fmt.Sprintf("%s%s %d. %s", cursor, mark, i+1, opt)
		if i == m.quizCursor {
			line = selectedOptionStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	next := "enter: next"
	if m.quiz.IsLast() {
		next = "enter: submit"
	}
	b.WriteString(statusStyle.Render("↑/↓: choose  1-9: answer  " + next + "  ←: previous  esc: back"))
	if m.status != "" && m.statusErr {
		b.WriteString("\n")
		b.WriteString(m.renderStatus())
	}
	return b.String()
}
