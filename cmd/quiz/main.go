// Package main provides quiz - a terminal quiz game driven by a static
// question file.
package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/csvtool/csvtool/internal/config"
	"github.com/csvtool/csvtool/internal/quiz"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "quiz",
	ReportTimestamp: false,
})

func main() {
	file := flag.String("file", "", "Question file path (default from config)")
	plain := flag.Bool("plain", false, "Force the plain line-oriented interface")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Configuration error", "err", err)
	}

	path := cfg.QuestionsFile
	if *file != "" {
		path = *file
	}

	questions, err := quiz.Load(path)
	if err != nil {
		logger.Fatal("Cannot load questions", "err", err)
	}

	if _, err := quiz.Run(questions, *plain); err != nil {
		logger.Fatal("Quiz failed", "err", err)
	}
}
