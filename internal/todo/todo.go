// Package todo manages the task list persisted to a JSON file. The file is
// schema-validated on load and rewritten whole on every change; last writer
// wins, there is no cross-process locking.
package todo

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

// ErrInvalidIndex is returned when removing a task that does not exist.
var ErrInvalidIndex = errors.New("invalid index")

// Task is a single to-do entry.
type Task struct {
	Description string `json:"description"`
}

// Store reads and writes the task file.
type Store struct {
	Path string
}

// Load returns the current task list. A missing file is an empty list, not
// an error.
func (s *Store) Load() ([]Task, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	if err := validate(data); err != nil {
		return nil, fmt.Errorf("validate %s: %w", s.Path, err)
	}
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path, err)
	}
	return tasks, nil
}

// Save writes the full task list back to disk.
func (s *Store) Save(tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.Path, err)
	}
	return nil
}

// Add appends a task and persists the list.
func (s *Store) Add(description string) error {
	tasks, err := s.Load()
	if err != nil {
		return err
	}
	tasks = append(tasks, Task{Description: description})
	return s.Save(tasks)
}

// Remove deletes the task at index and persists the list. The file is not
// touched when the index is out of range.
func (s *Store) Remove(index int) error {
	tasks, err := s.Load()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(tasks) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	tasks = append(tasks[:index], tasks[index+1:]...)
	return s.Save(tasks)
}

// validate checks raw task-file bytes against the embedded JSON Schema.
func validate(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("tasks-schema.json", strings.NewReader(schemaJSON)); err != nil {
		return err
	}
	schema, err := compiler.Compile("tasks-schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	return schema.Validate(doc)
}
