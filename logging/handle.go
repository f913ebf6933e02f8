package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/tickmesh/tickmesh"
)

// Handle is what a component embeds to emit log Records. It is itself a
// tickmesh.Edge (via the embedded BatchLink), so Simulator.Register
// binds its owner automatically like any other outbound edge; connect
// it to a Logger's Port with tickmesh.ConnectBatch.
type Handle struct {
	*tickmesh.BatchLink[Record]
	component string
	minLevel  logrus.Level
}

// NewHandle constructs an unowned Handle for the given component name.
// Records emitted above minLevel (logrus's usual severity ordering —
// e.g. minLevel InfoLevel lets Info/Warn/Error/Fatal/Panic through but
// drops Debug/Trace) are silently dropped before ever reaching a Link.
func NewHandle(component string, minLevel logrus.Level) *Handle {
	return &Handle{
		BatchLink: tickmesh.NewBatchLink[Record](),
		component: component,
		minLevel:  minLevel,
	}
}

// Emit records one log line at the given level, tagging it with
// component-level Fields and an optional numeric Value for percentile
// aggregation. It is a no-op, not an error, when level is filtered out.
func (h *Handle) Emit(sim *tickmesh.Simulator, level logrus.Level, msg string, value float64, fields logrus.Fields) error {
	if level > h.minLevel {
		return nil
	}
	return h.Send(Record{
		Component: h.component,
		Level:     level,
		Message:   msg,
		Fields:    fields,
		Value:     value,
		Time:      sim.CurrentTime(),
	}, 0)
}

// Infof is a convenience wrapper around Emit at InfoLevel with no
// numeric sample attached.
func (h *Handle) Infof(sim *tickmesh.Simulator, msg string, fields logrus.Fields) error {
	return h.Emit(sim, logrus.InfoLevel, msg, 0, fields)
}

// Sample records a numeric observation (e.g. a completed request's
// latency) at InfoLevel, for later percentile aggregation by a Logger.
func (h *Handle) Sample(sim *tickmesh.Simulator, msg string, value float64) error {
	return h.Emit(sim, logrus.InfoLevel, msg, value, nil)
}
