package crash

import (
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

// maxBreadcrumbs bounds the breadcrumbs attached to one event
const maxBreadcrumbs = 100

// DefaultFlushTimeout is how long Report waits for the event to ship
const DefaultFlushTimeout = 2 * time.Second

// SentryReporter sends each report as a fatal Sentry event carrying the
// fault log as breadcrumbs.
type SentryReporter struct {
	hub          *sentry.Hub
	flushTimeout time.Duration
}

// NewSentryReporter creates a reporter on hub. A nil hub uses the current
// global hub; a zero timeout uses DefaultFlushTimeout.
func NewSentryReporter(hub *sentry.Hub, flushTimeout time.Duration) *SentryReporter {
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if flushTimeout <= 0 {
		flushTimeout = DefaultFlushTimeout
	}
	return &SentryReporter{hub: hub, flushTimeout: flushTimeout}
}

// Report captures the report and waits for delivery
func (s *SentryReporter) Report(r Report) {
	s.hub.WithScope(func(scope *sentry.Scope) {
		for _, rec := range r.Records {
			scope.AddBreadcrumb(&sentry.Breadcrumb{
				Type:     "debug",
				Category: "faultlog",
				Message:  rec.String(),
				Level:    sentry.LevelInfo,
				Data: map[string]interface{}{
					"file": rec.File,
					"line": rec.Line,
				},
			}, maxBreadcrumbs)
		}
		scope.SetTag("faultlog.records", strconv.Itoa(len(r.Records)))

		switch v := r.Value.(type) {
		case nil:
			s.hub.CaptureMessage("fault log dump")
		case error, string:
			s.hub.Recover(v)
		default:
			s.hub.Recover(errors.Errorf("panic: %v", v))
		}
	})
	s.hub.Flush(s.flushTimeout)
}
