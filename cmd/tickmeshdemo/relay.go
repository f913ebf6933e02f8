package main

import (
	"github.com/sirupsen/logrus"

	"github.com/tickmesh/tickmesh"
	"github.com/tickmesh/tickmesh/internal/simrand"
	"github.com/tickmesh/tickmesh/logging"
)

// token is the message type hopping down the relay chain: it carries
// its own origination tick so the final hop can log the chain's
// end-to-end latency.
type token struct {
	id         int
	originTick tickmesh.Time
}

// source injects count tokens during startup, each delayed by a random
// amount from its own simrand subsystem, and forwards them down Out.
type source struct {
	*tickmesh.ComponentBase
	Out *tickmesh.Link[token]
	Log *logging.Handle

	count    int
	maxDelay int64
	rng      *simrand.Stream
}

func (s *source) Behave(sim *tickmesh.Simulator, phase tickmesh.Phase) {
	if phase != tickmesh.PhaseStartup {
		return
	}
	for i := 0; i < s.count; i++ {
		delay := tickmesh.Time(s.rng.PositiveDelay("source", s.maxDelay))
		_ = s.Log.Infof(sim, "token injected", logrus.Fields{"token": i, "delay": delay})
		_ = s.Out.Send(token{id: i, originTick: sim.CurrentTime()}, delay)
	}
}

// relay forwards every token it receives straight to Out, one hop
// later, logging each forward at debug level.
type relay struct {
	*tickmesh.ComponentBase
	In  *tickmesh.Port[token]
	Out *tickmesh.Link[token]
	Log *logging.Handle
}

func (r *relay) Behave(sim *tickmesh.Simulator, phase tickmesh.Phase) {
	if phase != tickmesh.PhaseTick {
		return
	}
	for _, tok := range r.In.Messages(sim) {
		_ = r.Log.Emit(sim, logrus.DebugLevel, "token relayed", 0, logrus.Fields{"token": tok.id})
		_ = r.Out.Send(tok, 0)
	}
}

// sink is the chain's final hop: it records each token's end-to-end
// latency as a sample for percentile reporting, then requests shutdown
// once it has seen every token the source injected.
type sink struct {
	*tickmesh.ComponentBase
	In  *tickmesh.Port[token]
	Log *logging.Handle

	expected int
	seen     int
}

func (s *sink) Behave(sim *tickmesh.Simulator, phase tickmesh.Phase) {
	if phase != tickmesh.PhaseTick {
		return
	}
	for _, tok := range s.In.Messages(sim) {
		latency := float64(sim.CurrentTime() - tok.originTick)
		_ = s.Log.Sample(sim, "token delivered", latency)
		s.seen++
	}
	if s.seen >= s.expected {
		sim.Quit()
	}
}
