package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/tickmesh/tickmesh"
)

// Record is one emitted log line, carried as a BatchLink message from a
// Handle to a Logger.
type Record struct {
	Component string
	Level     logrus.Level
	Message   string
	Fields    logrus.Fields

	// Value is an optional numeric sample (e.g. a latency in ticks).
	// Zero means "no sample"; Logger.Percentiles only aggregates
	// Records with a nonzero Value.
	Value float64

	Time tickmesh.Time
}
