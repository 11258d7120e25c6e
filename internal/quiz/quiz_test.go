package quiz

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSessionFlow(t *testing.T) {
	s := NewSession(DefaultBank())
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	s.Next()
	if s.Index() != 0 {
		t.Fatal("Next advanced without an answer")
	}

	if err := s.Select(0); err != nil {
		t.Fatalf("Select: %v", err)
	}
	s.Next()
	s.Previous()
	if got, ok := s.Selected(); !ok || got != 0 {
		t.Errorf("answer lost after Previous: %d, %v", got, ok)
	}
	s.Next()

	s.Select(3)
	s.Next()
	s.Select(2)
	if !s.IsLast() {
		t.Fatal("expected last question")
	}
	s.Next()

	if !s.Done() {
		t.Fatal("quiz should be done")
	}
	if got := s.Score(); got != 2 {
		t.Errorf("Score() = %d, want 2", got)
	}

	s.Restart()
	if s.Done() || s.Index() != 0 || s.Score() != 0 {
		t.Error("Restart did not clear the session")
	}
}

func TestSelectOutOfRange(t *testing.T) {
	s := NewSession(DefaultBank())
	for _, opt := range []int{-1, 4} {
		if err := s.Select(opt); !errors.Is(err, ErrOptionOutOfRange) {
			t.Errorf("Select(%d) err = %v", opt, err)
		}
	}
	if s.CanAdvance() {
		t.Error("rejected selection should not count as an answer")
	}
}

func TestSelectText(t *testing.T) {
	s := NewSession(DefaultBank())
	opts := s.Current().Options
	if err := s.SelectText(opts[1]); err != nil {
		t.Fatalf("SelectText: %v", err)
	}
	if sel, ok := s.Selected(); !ok || sel != 1 {
		t.Errorf("Selected = %d, %v, want 1", sel, ok)
	}
	if err := s.SelectText("not an option"); !errors.Is(err, ErrOptionOutOfRange) {
		t.Errorf("SelectText(unknown) err = %v", err)
	}
	if sel, _ := s.Selected(); sel != 1 {
		t.Error("unknown choice should keep the earlier answer")
	}
}

func TestPreviousOnFirst(t *testing.T) {
	s := NewSession(DefaultBank())
	s.Previous()
	if s.Index() != 0 {
		t.Errorf("Index() = %d, want 0", s.Index())
	}
}

func TestLoadBank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	data := `
questions:
  - question: "Who designed the analytical engine?"
    options: ["Babbage", "Turing", "Hopper"]
    answer: 0
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	b, err := LoadBank(path)
	if err != nil {
		t.Fatalf("LoadBank: %v", err)
	}
	if b.Title != DefaultBank().Title {
		t.Errorf("Title = %q, want default", b.Title)
	}
	if len(b.Questions) != 1 || b.Questions[0].Options[0] != "Babbage" {
		t.Errorf("unexpected bank: %+v", b)
	}
}

func TestParseBankInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty", "title: nothing\n", ErrEmptyBank},
		{"bad answer", "questions:\n  - question: q\n    options: [a, b]\n    answer: 5\n", ErrOptionOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBank([]byte(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := ParseBank([]byte("questions: [")); err == nil {
		t.Error("expected decode error")
	}
}
