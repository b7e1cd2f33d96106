package apierror

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"
)

// Record is the structured entry written for every classified failure.
type Record struct {
	Context   string    `json:"context"`
	Message   string    `json:"message"`
	Stack     string    `json:"stack,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Reporter is the operator-visible sink for failure records. Production
// deployments inject one backed by an external monitoring service; when none
// is configured, records go to the local structured log instead.
type Reporter interface {
	Report(rec Record)
}

// Handler is the single chokepoint translating any failure into a
// user-facing string and an operator record.
type Handler struct {
	log      *slog.Logger
	reporter Reporter
}

func NewHandler(log *slog.Logger, reporter Reporter) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{log: log, reporter: reporter}
}

// Handle logs the failure under the given context label and returns the
// classified user-facing message.
func (h *Handler) Handle(v any, context, fallback string) string {
	rec := Record{
		Context:   context,
		Message:   describe(v),
		Timestamp: time.Now().UTC(),
	}
	if _, ok := v.(error); ok {
		rec.Stack = string(debug.Stack())
	}

	if h.reporter != nil {
		h.reporter.Report(rec)
	} else {
		h.log.Error("request failed",
			slog.String("context", rec.Context),
			slog.String("message", rec.Message),
			slog.Time("timestamp", rec.Timestamp),
		)
	}

	return Message(v, fallback)
}

// describe renders the raw failure for the operator record, as opposed to the
// classified user-facing message.
func describe(v any) string {
	if err, ok := v.(error); ok && err != nil {
		return err.Error()
	}
	return fmt.Sprintf("%v", v)
}
