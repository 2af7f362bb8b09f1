package phone

import "github.com/vortex-fintech/phonex/errors"

// Logger is the subset of logger.LoggerInterface the extractor writes to.
type Logger interface {
	Infow(msg string, kv ...any)
	Warnw(msg string, kv ...any)
	Debugw(msg string, kv ...any)
}

// Recorder receives extraction counters (see metrics.Extraction).
type Recorder interface {
	ObserveCandidates(n int)
	ObserveRejected(reason string)
	ObserveUnique(n int)
}

type nopLogger struct{}

func (nopLogger) Infow(string, ...any)  {}
func (nopLogger) Warnw(string, ...any)  {}
func (nopLogger) Debugw(string, ...any) {}

type nopRecorder struct{}

func (nopRecorder) ObserveCandidates(int)  {}
func (nopRecorder) ObserveRejected(string) {}
func (nopRecorder) ObserveUnique(int)      {}

// Extractor runs FindCandidates, Normalize and Dedupe over a text.
// Logging, counters and redaction are side channels only: they never change the result.
type Extractor struct {
	log    Logger
	rec    Recorder
	redact func(string) string
}

type Option func(*Extractor)

func WithLogger(l Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.log = l
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(e *Extractor) {
		if r != nil {
			e.rec = r
		}
	}
}

// WithRedactor masks candidates and numbers before they reach the log.
func WithRedactor(fn func(string) string) Option {
	return func(e *Extractor) {
		if fn != nil {
			e.redact = fn
		}
	}
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		log:    nopLogger{},
		rec:    nopRecorder{},
		redact: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the unique canonical numbers found in text, in order of first appearance.
func (e *Extractor) Extract(text string) []string {
	candidates := FindCandidates(text)
	e.log.Infow("potential phone numbers found", "count", len(candidates))
	e.rec.ObserveCandidates(len(candidates))

	normalized := make([]string, 0, len(candidates))
	for _, c := range candidates {
		n, err := Normalize(c)
		if err != nil {
			reason, _ := errors.ReasonOf(err)
			e.log.Warnw("invalid phone number", "candidate", e.redact(c), "reason", reason)
			e.rec.ObserveRejected(reason)
			continue
		}
		e.log.Debugw("normalized phone number", "number", e.redact(n))
		normalized = append(normalized, n)
	}

	unique := Dedupe(normalized)
	e.log.Infow("unique numbers found", "count", len(unique), "status", "success")
	e.rec.ObserveUnique(len(unique))
	return unique
}

var defaultExtractor = NewExtractor()

// Extract runs the pipeline without logging or metrics.
func Extract(text string) []string {
	return defaultExtractor.Extract(text)
}
