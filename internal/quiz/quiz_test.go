package quiz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var sampleQuestions = `[
  {"question": "Capital of France?", "options": ["a) London", "b) Paris"], "answer": "b"},
  {"question": "2+2?", "options": ["a) 4", "b) 5"], "answer": "a"}
]`

func writeQuestions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	questions, err := Load(writeQuestions(t, sampleQuestions))
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].Answer != "b" {
		t.Errorf("answer = %q, want %q", questions[0].Answer, "b")
	}
}

func TestLoadRejectsMalformedContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "oops"},
		{name: "missing answer", content: `[{"question": "q", "options": []}]`},
		{name: "empty question", content: `[{"question": "", "options": [], "answer": "a"}]`},
		{name: "wrong options type", content: `[{"question": "q", "options": "a,b", "answer": "a"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeQuestions(t, tt.content)); err == nil {
				t.Errorf("Load() accepted %q", tt.content)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCheck(t *testing.T) {
	q := Question{Answer: "b"}

	tests := []struct {
		input string
		want  bool
	}{
		{input: "b", want: true},
		{input: "B", want: true},
		{input: " b \n", want: true},
		{input: "a", want: false},
		{input: "", want: false},
	}

	for _, tt := range tests {
		if got := q.Check(tt.input); got != tt.want {
			t.Errorf("Check(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestRunPlainScoring(t *testing.T) {
	questions, err := Load(writeQuestions(t, sampleQuestions))
	if err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	score := RunPlain(questions, strings.NewReader("b\nb\n"), &out)

	if score != 1 {
		t.Errorf("score = %d, want 1", score)
	}
	text := out.String()
	if !strings.Contains(text, "Correct!") {
		t.Errorf("output missing correct feedback:\n%s", text)
	}
	if !strings.Contains(text, "Wrong! Correct answer: a") {
		t.Errorf("output missing wrong feedback:\n%s", text)
	}
	if !strings.Contains(text, "Quiz Complete! Your Score: 1/2") {
		t.Errorf("output missing final score:\n%s", text)
	}
}

func TestRunPlainStopsOnEOF(t *testing.T) {
	questions, err := Load(writeQuestions(t, sampleQuestions))
	if err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	score := RunPlain(questions, strings.NewReader(""), &out)
	if score != 0 {
		t.Errorf("score = %d, want 0 when input ends immediately", score)
	}
}
