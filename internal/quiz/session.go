package quiz

import "fmt"

// Session walks through a bank one question at a time.
type Session struct {
	bank    Bank
	current int
	answers []int
	done    bool
}

const unanswered = -1

// NewSession starts a session at the first question.
func NewSession(b Bank) *Session {
	answers := make([]int, len(b.Questions))
	for i := range answers {
		answers[i] = unanswered
	}
	return &Session{bank: b, answers: answers}
}

// Title is the bank title.
func (s *Session) Title() string { return s.bank.Title }

// Len is the number of questions.
func (s *Session) Len() int { return len(s.bank.Questions) }

// Index is the zero-based position of the current question.
func (s *Session) Index() int { return s.current }

// Current returns the question being asked.
func (s *Session) Current() Question { return s.bank.Questions[s.current] }

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool { return s.current == len(s.bank.Questions)-1 }

// Done reports whether the quiz has been completed.
func (s *Session) Done() bool { return s.done }

// Select records option as the answer to the current question.
func (s *Session) Select(option int) error {
	if option < 0 || option >= len(s.Current().Options) {
		return ErrOptionOutOfRange
	}
	s.answers[s.current] = option
	return nil
}

// SelectText records the option whose text is choice.
func (s *Session) SelectText(choice string) error {
	for i, opt := range s.Current().Options {
		if opt == choice {
			return s.Select(i)
		}
	}
	return fmt.Errorf("%q: %w", choice, ErrOptionOutOfRange)
}

// Selected returns the chosen option for the current question.
func (s *Session) Selected() (int, bool) {
	a := s.answers[s.current]
	return a, a != unanswered
}

// CanAdvance reports whether the current question has an answer.
func (s *Session) CanAdvance() bool {
	_, ok := s.Selected()
	return ok
}

// Next moves to the following question, or completes the quiz on the last
// one. It does nothing until the current question is answered.
func (s *Session) Next() {
	if s.done || !s.CanAdvance() {
		return
	}
	if s.IsLast() {
		s.done = true
		return
	}
	s.current++
}

// Previous moves back one question.
func (s *Session) Previous() {
	if s.done || s.current == 0 {
		return
	}
	s.current--
}

// Score counts correct answers.
func (s *Session) Score() int {
	score := 0
	for i, q := range s.bank.Questions {
		if s.answers[i] == q.Correct {
			score++
		}
	}
	return score
}

// Restart clears all answers.
func (s *Session) Restart() {
	*s = *NewSession(s.bank)
}
