package tickmesh

// Simulator owns the registered components and drives simulated time
// forward. It is not safe for concurrent use: Register must be called
// for every component before Run, and Run must be called from the same
// goroutine that did the registering — the scheduling model is
// single-threaded and cooperative.
type Simulator struct {
	currentTime   Time
	nextEvent     Time
	quitTime      Time
	quitRequested bool
	phase         Phase
	components    []Component
}

// New creates a Simulator. quitTime == 0 means "run until every pending
// event has been delivered"; quitTime > 0 sets a hard deadline checked
// every loop iteration in addition to event exhaustion.
func New(quitTime Time) *Simulator {
	return &Simulator{nextEvent: NoEvent, quitTime: quitTime}
}

// CurrentTime returns the simulated time of the tick currently being
// processed (or 0/the last-processed tick outside of Run).
func (s *Simulator) CurrentTime() Time { return s.currentTime }

// Quit requests that Run stop. The request is checked before each new
// tick begins: components still due in the current tick (or, during
// startup, the remaining startup invocations) still run, and no further
// tick starts. Shutdown still runs for every registered component.
func (s *Simulator) Quit() { s.quitRequested = true }

// Register adds c to the simulator in the order it is called (tie-break
// order for same-tick invocations), binds c's Simulator
// back-reference, and auto-wires the back-references of its exported
// Port/Timer/Link/BcastLink/BatchLink fields (including elements of
// exported slice fields). Fields nested inside other structs are not
// auto-wired; bind them manually with Edge.BindOwner before Connect.
// Re-registering the same component is undefined behavior — callers
// must not do it.
func (s *Simulator) Register(c Component) error {
	b := c.base()
	b.sim = s
	if err := wireEdges(c, b); err != nil {
		return err
	}
	s.components = append(s.components, c)
	return nil
}

// Run drives the main loop until a termination condition fires, then
// returns:
//
//  1. Invoke every component's Behave with PhaseStartup.
//  2. Compute the global next-event time.
//  3. While keepGoing holds: advance currentTime to nextEvent, invoke
//     Behave with PhaseTick on every component whose own NextEvent
//     equals currentTime (in registration order), then recompute the
//     global next-event time.
//  4. Invoke every component's Behave with PhaseShutdown.
func (s *Simulator) Run() {
	s.phase = PhaseStartup
	for _, c := range s.components {
		c.Behave(s, PhaseStartup)
	}

	s.recomputeNextEvent()

	s.phase = PhaseTick
	for s.keepGoing() {
		s.currentTime = s.nextEvent
		for _, c := range s.components {
			if c.NextEvent() == s.currentTime {
				c.Behave(s, PhaseTick)
			}
		}
		s.recomputeNextEvent()
	}

	s.phase = PhaseShutdown
	for _, c := range s.components {
		c.Behave(s, PhaseShutdown)
	}
}

func (s *Simulator) recomputeNextEvent() {
	best := NoEvent
	for _, c := range s.components {
		t := c.NextEvent()
		if t == NoEvent {
			continue
		}
		if best == NoEvent || t < best {
			best = t
		}
	}
	s.nextEvent = best
}

// keepGoing implements the three termination conditions: no events
// pending, the next pending event lies beyond the quit deadline, or quit
// was requested.
func (s *Simulator) keepGoing() bool {
	if s.quitRequested {
		return false
	}
	if s.nextEvent == NoEvent {
		return false
	}
	if s.quitTime != 0 && s.nextEvent > s.quitTime {
		return false
	}
	return true
}
