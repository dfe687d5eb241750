package ingest

// Provenance records which acquisition strategy produced a RawContent.
type Provenance string

const (
	ProvenancePrompt             Provenance = "prompt"
	ProvenancePDF                Provenance = "pdf"
	ProvenanceURL                Provenance = "url"
	ProvenanceTranscript         Provenance = "transcript"
	ProvenancePrimarySummary     Provenance = "primary_summary"
	ProvenanceAlternativeSummary Provenance = "alternative_summary"
	ProvenanceVideoDescription   Provenance = "video_description"
)

// RawContent is the text handed to the generation step.
type RawContent struct {
	Text       string
	Provenance Provenance
}

// SourceKind selects how a Source is fetched.
type SourceKind string

const (
	SourcePrompt   SourceKind = "prompt"
	SourceDocument SourceKind = "pdf"
	SourceURL      SourceKind = "url"
	SourceVideo    SourceKind = "video"
)

// Source describes where quiz content comes from. Only the field matching Kind is read.
type Source struct {
	Kind     SourceKind
	Text     string
	Document []byte
	URL      string
}

func PromptSource(text string) Source {
	return Source{Kind: SourcePrompt, Text: text}
}

func DocumentSource(data []byte) Source {
	return Source{Kind: SourceDocument, Document: data}
}

func URLSource(rawURL string) Source {
	return Source{Kind: SourceURL, URL: rawURL}
}

func VideoSource(videoURL string) Source {
	return Source{Kind: SourceVideo, URL: videoURL}
}

// GeneratedQuestion is one multiple-choice question parsed from a backend response.
// Options always holds four entries prefixed "A) " through "D) ".
type GeneratedQuestion struct {
	Question      string
	Options       [4]string
	CorrectAnswer string
}

// QuestionSet is the ordered result of extraction.
type QuestionSet []GeneratedQuestion

// VideoDetails is the metadata needed for the description fallback.
type VideoDetails struct {
	Title       string
	Description string
}
