// Package quiz loads a question file and runs the terminal quiz game.
package quiz

import (
	"bufio"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

// Question is one quiz entry. Answer holds the expected option letter.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Check reports whether answer matches q after trimming and lowercasing.
func (q Question) Check(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == strings.ToLower(q.Answer)
}

// Load reads and validates the question file.
func Load(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := validate(data); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return questions, nil
}

// RunPlain plays the quiz over line-oriented I/O and returns the score.
// Questions are asked in file order; input ending early ends the game.
func RunPlain(questions []Question, in io.Reader, out io.Writer) int {
	fmt.Fprintf(out, "Welcome to the Quiz Game!\n\n")
	reader := bufio.NewReader(in)
	score := 0
	for i, q := range questions {
		fmt.Fprintf(out, "%d. %s\n", i+1, q.Question)
		for _, opt := range q.Options {
			fmt.Fprintln(out, opt)
		}
		fmt.Fprintln(out, "Your answer (a / b / c / d):")

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		if q.Check(line) {
			fmt.Fprintf(out, "Correct!\n\n")
			score++
		} else {
			fmt.Fprintf(out, "Wrong! Correct answer: %s\n\n", q.Answer)
		}
	}
	fmt.Fprintf(out, "Quiz Complete! Your Score: %d/%d\n", score, len(questions))
	return score
}

// validate checks raw question-file bytes against the embedded JSON Schema.
func validate(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("questions-schema.json", strings.NewReader(schemaJSON)); err != nil {
		return err
	}
	schema, err := compiler.Compile("questions-schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	return schema.Validate(doc)
}
