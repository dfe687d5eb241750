package main

import (
	"os"

	"github.com/lshigami/quizforge/internal/cli"
)

// @title QuizForge API
// @version 1.0
// @description Generates multiple-choice quizzes from prompts, web pages, PDFs and YouTube videos, and runs wallet based quiz and fact check games.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:5000
// @BasePath /api
// @schemes http https
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
