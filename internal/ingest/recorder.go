package ingest

// Recorder receives pipeline observations. internal/metrics provides the
// prometheus implementation.
type Recorder interface {
	ObserveContent(kind SourceKind, provenance Provenance)
	ObserveFallback()
	ObserveMatcher(name string)
	ObserveOutcome(kind SourceKind, err error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveContent(SourceKind, Provenance) {}
func (nopRecorder) ObserveFallback()                      {}
func (nopRecorder) ObserveMatcher(string)                 {}
func (nopRecorder) ObserveOutcome(SourceKind, error)      {}
