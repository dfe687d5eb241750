package ingest

import (
	"regexp"
	"strings"
)

type matcher struct {
	name    string
	pattern *regexp.Regexp
}

// Every pattern captures: number, question, options A-D, answer letter.
var matchers = []matcher{
	{
		name:    "bold_markdown",
		pattern: regexp.MustCompile(`\*\*Question (\d+):\*\* (.*?)\n\nA\) (.*?)\nB\) (.*?)\nC\) (.*?)\nD\) (.*?)\n\n\*\*Correct Answer: (\w)\*\*`),
	},
	{
		name:    "plain_numbered",
		pattern: regexp.MustCompile(`Question (\d+): (.*?)\nA\) (.*?)\nB\) (.*?)\nC\) (.*?)\nD\) (.*?)\nCorrect Answer: (\w)`),
	},
	{
		name: "lenient",
		pattern: regexp.MustCompile(`(?:Q(?:uestion)?\.?\s*)?(\d+)[\.:]\s*(.*?)\s*(?:Choices|Options)?:?\s*\n` +
			`\s*[Aa]\)\s*(.*?)\s*\n\s*[Bb]\)\s*(.*?)\s*\n\s*[Cc]\)\s*(.*?)\s*\n\s*[Dd]\)\s*(.*?)\s*\n` +
			`\s*(?:Correct\s*(?:Answer)?:?\s*|\[Answer\]\s*:?\s*)(\w)`),
	},
}

var optionLetters = [4]string{"A", "B", "C", "D"}

// ExtractQuestions parses a backend response with the first matcher that produces
// at least one valid question. Results from different matchers are never merged.
func ExtractQuestions(text string) QuestionSet {
	questions, _ := extractWithMatcher(text)
	return questions
}

func extractWithMatcher(text string) (QuestionSet, string) {
	for _, m := range matchers {
		var questions QuestionSet
		for _, match := range m.pattern.FindAllStringSubmatch(text, -1) {
			if q, ok := buildQuestion(match); ok {
				questions = append(questions, q)
			}
		}
		if len(questions) > 0 {
			return questions, m.name
		}
	}
	return QuestionSet{}, ""
}

func buildQuestion(match []string) (GeneratedQuestion, bool) {
	if len(match) != 8 {
		return GeneratedQuestion{}, false
	}
	q := GeneratedQuestion{
		Question:      strings.TrimSpace(match[2]),
		CorrectAnswer: strings.ToUpper(strings.TrimSpace(match[7])),
	}
	for i, letter := range optionLetters {
		q.Options[i] = letter + ") " + strings.TrimSpace(match[3+i])
	}
	if q.Question == "" || !isOptionLetter(q.CorrectAnswer) {
		return GeneratedQuestion{}, false
	}
	return q, true
}

func isOptionLetter(s string) bool {
	for _, letter := range optionLetters {
		if s == letter {
			return true
		}
	}
	return false
}
