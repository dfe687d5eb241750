package ingest

import (
	"reflect"
	"testing"
)

const boldResponse = "Here is your quiz.\n\n" +
	"**Question 1:** What gas do plants absorb?\n\nA) Oxygen\nB) Carbon dioxide\nC) Nitrogen\nD) Helium\n\n**Correct Answer: B**\n\n" +
	"**Question 2:** Where does photosynthesis happen?\n\nA) Chloroplast\nB) Nucleus\nC) Ribosome\nD) Vacuole\n\n**Correct Answer: A**\n\n" +
	"**Question 3:** Which pigment is green?\n\nA) Carotene\nB) Melanin\nC) Chlorophyll\nD) Keratin\n\n**Correct Answer: c**\n"

func TestExtractQuestionsBoldMarkdown(t *testing.T) {
	got := ExtractQuestions(boldResponse)
	if len(got) != 3 {
		t.Fatalf("expected 3 questions, got %d: %+v", len(got), got)
	}
	want := GeneratedQuestion{
		Question:      "What gas do plants absorb?",
		Options:       [4]string{"A) Oxygen", "B) Carbon dioxide", "C) Nitrogen", "D) Helium"},
		CorrectAnswer: "B",
	}
	if got[0] != want {
		t.Fatalf("first question mismatch:\nwant=%+v\ngot=%+v", want, got[0])
	}
	if got[1].Question != "Where does photosynthesis happen?" || got[2].Question != "Which pigment is green?" {
		t.Fatalf("questions out of order: %+v", got)
	}
	if got[2].CorrectAnswer != "C" {
		t.Fatalf("expected upper-cased answer C, got %q", got[2].CorrectAnswer)
	}
	for i, q := range got {
		if !isOptionLetter(q.CorrectAnswer) {
			t.Fatalf("question %d has invalid answer %q", i, q.CorrectAnswer)
		}
	}
}

func TestExtractQuestionsPlainNumbered(t *testing.T) {
	text := "Question 1: What is 2 + 2?\nA) 3\nB) 4\nC) 5\nD) 22\nCorrect Answer: B\n\n" +
		"Question 2: What is the capital of France?\nA) Paris\nB) Rome\nC) Madrid\nD) Berlin\nCorrect Answer: A"

	got, matcher := extractWithMatcher(text)
	if matcher != "plain_numbered" {
		t.Fatalf("expected plain_numbered matcher, got %q", matcher)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got))
	}
	if got[1].Options[0] != "A) Paris" || got[1].CorrectAnswer != "A" {
		t.Fatalf("unexpected second question: %+v", got[1])
	}
}

func TestExtractQuestionsLenient(t *testing.T) {
	text := "Q1. What is H2O?\na) Water\nb) Salt\nc) Sand\nd) Air\nCorrect: a\n\n" +
		"2: Which planet is red?\nA) Venus\nB) Mars\nC) Earth\nD) Jupiter\n[Answer]: B\n"

	got, matcher := extractWithMatcher(text)
	if matcher != "lenient" {
		t.Fatalf("expected lenient matcher, got %q", matcher)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 questions, got %d: %+v", len(got), got)
	}
	if got[0].Question != "What is H2O?" || got[0].Options[0] != "A) Water" || got[0].CorrectAnswer != "A" {
		t.Fatalf("unexpected first question: %+v", got[0])
	}
	if got[1].Options[1] != "B) Mars" || got[1].CorrectAnswer != "B" {
		t.Fatalf("unexpected second question: %+v", got[1])
	}
}

func TestExtractQuestionsRejectsInvalidAnswerLetter(t *testing.T) {
	text := "Question 1: Pick one\nA) a\nB) b\nC) c\nD) d\nCorrect Answer: E\n\n" +
		"Question 2: Pick another\nA) a\nB) b\nC) c\nD) d\nCorrect Answer: D"

	got := ExtractQuestions(text)
	if len(got) != 1 {
		t.Fatalf("expected only the valid question, got %d: %+v", len(got), got)
	}
	if got[0].Question != "Pick another" || got[0].CorrectAnswer != "D" {
		t.Fatalf("unexpected question kept: %+v", got[0])
	}
}

func TestExtractQuestionsOnlyInvalidLettersIsEmpty(t *testing.T) {
	text := "Question 1: Pick one\nA) a\nB) b\nC) c\nD) d\nCorrect Answer: E"
	if got := ExtractQuestions(text); len(got) != 0 {
		t.Fatalf("expected no questions, got %+v", got)
	}
}

func TestExtractQuestionsDropsEmptyQuestionText(t *testing.T) {
	text := "Question 1: \nA) a\nB) b\nC) c\nD) d\nCorrect Answer: A"
	if got := ExtractQuestions(text); len(got) != 0 {
		t.Fatalf("expected empty question text to be discarded, got %+v", got)
	}
}

func TestExtractQuestionsNoMatches(t *testing.T) {
	got := ExtractQuestions("I'm sorry, I cannot help with that request.")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected an empty non-nil set, got %#v", got)
	}
}

func TestExtractQuestionsDoesNotMergeMatchers(t *testing.T) {
	// The bold block wins; the plain block below it is ignored.
	text := "**Question 1:** Bold?\n\nA) w\nB) x\nC) y\nD) z\n\n**Correct Answer: A**\n\n" +
		"Question 2: Plain?\nA) w\nB) x\nC) y\nD) z\nCorrect Answer: B"

	got := ExtractQuestions(text)
	if len(got) != 1 || got[0].Question != "Bold?" {
		t.Fatalf("expected only the bold question, got %+v", got)
	}
}

func TestExtractQuestionsIsIdempotent(t *testing.T) {
	first := ExtractQuestions(boldResponse)
	second := ExtractQuestions(boldResponse)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("extraction is not deterministic:\nfirst=%+v\nsecond=%+v", first, second)
	}
}
