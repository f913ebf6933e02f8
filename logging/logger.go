package logging

import (
	"sort"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/tickmesh/tickmesh"
)

// Logger is the Component every Handle ultimately sends Records to. It
// forwards each Record to logrus and accumulates Values per component
// name for percentile reporting at the end of a run.
type Logger struct {
	*tickmesh.ComponentBase
	In *tickmesh.Port[Record]

	samples map[string][]float64
}

// NewLogger constructs a Logger ready for Simulator.Register.
func NewLogger(name string) *Logger {
	return &Logger{
		ComponentBase: tickmesh.NewComponentBase(name),
		In:            tickmesh.NewPort[Record](),
		samples:       make(map[string][]float64),
	}
}

// Behave forwards every Record due this tick to logrus and, for
// Records carrying a nonzero Value, appends it to that component's
// sample set.
func (l *Logger) Behave(sim *tickmesh.Simulator, phase tickmesh.Phase) {
	if phase != tickmesh.PhaseTick {
		return
	}
	for _, rec := range l.In.Messages(sim) {
		l.forward(rec)
		if rec.Value != 0 {
			l.samples[rec.Component] = append(l.samples[rec.Component], rec.Value)
		}
	}
}

func (l *Logger) forward(rec Record) {
	entry := logrus.WithFields(rec.Fields).
		WithField("component", rec.Component).
		WithField("tick", rec.Time)

	switch rec.Level {
	case logrus.PanicLevel:
		entry.Panic(rec.Message)
	case logrus.FatalLevel:
		entry.Fatal(rec.Message)
	case logrus.ErrorLevel:
		entry.Error(rec.Message)
	case logrus.WarnLevel:
		entry.Warn(rec.Message)
	case logrus.InfoLevel:
		entry.Info(rec.Message)
	case logrus.DebugLevel:
		entry.Debug(rec.Message)
	default:
		entry.Trace(rec.Message)
	}
}

// Percentiles computes the empirical quantiles ps (each in [0, 1]) of
// every Value sampled so far for component, in the order requested. It
// returns nil if no samples were recorded for that component.
func (l *Logger) Percentiles(component string, ps []float64) []float64 {
	samples := l.samples[component]
	if len(samples) == 0 {
		return nil
	}
	xs := append([]float64(nil), samples...)
	sort.Float64s(xs)

	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = stat.Quantile(p, stat.Empirical, xs, nil)
	}
	return out
}
