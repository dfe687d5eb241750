package ingest

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/lshigami/quizforge/internal/ingest")

// Pipeline turns a Source into a QuestionSet.
type Pipeline struct {
	fetcher   *Fetcher
	generator *Generator
	recorder  Recorder
}

func NewPipeline(fetcher *Fetcher, generator *Generator, recorder Recorder) *Pipeline {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Pipeline{fetcher: fetcher, generator: generator, recorder: recorder}
}

// ProduceQuestions fetches content for src, asks the generator for count
// questions and parses the response. An empty result is ErrExtractionEmpty.
func (p *Pipeline) ProduceQuestions(ctx context.Context, src Source, count int) (QuestionSet, error) {
	ctx, span := tracer.Start(ctx, "ingest.ProduceQuestions")
	defer span.End()
	span.SetAttributes(attribute.String("source.kind", string(src.Kind)), attribute.Int("question.count", count))

	questions, err := p.produce(ctx, src, count)
	p.recorder.ObserveOutcome(src.Kind, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("question.extracted", len(questions)))
	return questions, nil
}

func (p *Pipeline) produce(ctx context.Context, src Source, count int) (QuestionSet, error) {
	if count <= 0 {
		return nil, newError(ErrInvalidInput, "Question count must be positive", fmt.Errorf("got %d", count))
	}

	content, err := p.fetcher.Fetch(ctx, src)
	if err != nil {
		return nil, err
	}
	p.recorder.ObserveContent(src.Kind, content.Provenance)
	log.Info().Str("source", string(src.Kind)).Str("provenance", string(content.Provenance)).Int("length", len(content.Text)).Msg("Content fetched for quiz generation")

	text := content.Text
	if src.Kind == SourceVideo {
		text = withContentType(content)
	}

	response, err := p.generator.Generate(ctx, text, count)
	if err != nil {
		return nil, err
	}

	questions, matcher := extractWithMatcher(response)
	if len(questions) == 0 {
		log.Warn().Int("responseLength", len(response)).Msg("No questions could be extracted from generation response")
		return nil, ErrExtractionEmpty
	}
	p.recorder.ObserveMatcher(matcher)
	return questions, nil
}
