package sim

import (
	"log/slog"
	"os"

	"github.com/sarchlab/assassyn/simlog"
)

// FailureSink is the one seam simulation-time violations (XEQ
// collision, idle threshold exceeded) are routed through, per spec
// §7/§4.13. The default implementation logs then exits the process;
// tests inject a recording sink (mocked with github.com/golang/mock,
// see sim/mock_failuresink_test.go).
type FailureSink interface {
	Fatal(msg string)
}

// DefaultFailureSink logs msg at simlog.LevelFatalDiag then terminates
// the process with a non-zero status.
type DefaultFailureSink struct {
	Logger *slog.Logger
}

// NewDefaultFailureSink builds a DefaultFailureSink logging through
// simlog.Default.
func NewDefaultFailureSink() *DefaultFailureSink {
	return &DefaultFailureSink{Logger: simlog.Default}
}

func (s *DefaultFailureSink) Fatal(msg string) {
	logger := s.Logger
	if logger == nil {
		logger = simlog.Default
	}
	logger.Log(nil, simlog.LevelFatalDiag, msg)
	os.Exit(1)
}
