// Package main provides todo - a minimal file-backed task list.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/csvtool/csvtool/internal/config"
	"github.com/csvtool/csvtool/internal/todo"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "todo",
	ReportTimestamp: false,
})

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Configuration error", "err", err)
	}
	store := &todo.Store{Path: cfg.TasksFile}

	switch command := os.Args[1]; command {
	case "add":
		runAdd(store, os.Args[2:])
	case "list":
		runList(store)
	case "remove":
		runRemove(store, os.Args[2:])
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`todo - A simple CLI to-do list

Usage:
    todo add <task description>
    todo list
    todo remove <index>

Tasks persist to a JSON file (tasks.json by default, see csvtool.toml).`)
}

func runAdd(store *todo.Store, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: add requires a task description")
		os.Exit(1)
	}
	if err := store.Add(strings.Join(args, " ")); err != nil {
		logger.Fatal("Add failed", "err", err)
	}
	fmt.Println("Task added.")
}

func runList(store *todo.Store) {
	tasks, err := store.Load()
	if err != nil {
		logger.Fatal("List failed", "err", err)
	}
	for i, task := range tasks {
		fmt.Printf("%d: %s\n", i, task.Description)
	}
}

func runRemove(store *todo.Store, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: remove requires an index")
		os.Exit(1)
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("Invalid index.")
		os.Exit(1)
	}
	if err := store.Remove(index); err != nil {
		if errors.Is(err, todo.ErrInvalidIndex) {
			fmt.Println("Invalid index.")
			os.Exit(1)
		}
		logger.Fatal("Remove failed", "err", err)
	}
	fmt.Println("Task removed.")
}
