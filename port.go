package tickmesh

import "fmt"

// Port is an inbound endpoint owning a min-heap of pending Event[M],
// ordered strictly by delivery time with insertion-order tie-breaking.
// Many Links may target one Port.
type Port[M any] struct {
	baseEdge
	heap eventHeap[M]
	seq  uint64
}

// NewPort constructs an unowned Port. Assign it to an exported field of
// a component embedding *ComponentBase and call Simulator.Register to
// bind its back-reference automatically.
func NewPort[M any]() *Port[M] {
	return &Port[M]{}
}

func (p *Port[M]) addEvent(e Event[M]) {
	p.heap.push(p.seq, e)
	p.seq++
}

func (p *Port[M]) headTime() Time {
	if len(p.heap) == 0 {
		return NoEvent
	}
	return p.heap[0].ev.Time
}

// drainDue pops every event whose Time == at and returns their
// messages in heap order. Precondition: headTime() >= at — an earlier
// head implies a scheduling bug and trips a panic rather than silently
// skipping the stale event.
func (p *Port[M]) drainDue(at Time) []M {
	if len(p.heap) == 0 {
		return nil
	}
	if p.heap[0].ev.Time < at {
		panic(fmt.Sprintf("tickmesh: port scheduling bug: head time %d < drain time %d", p.heap[0].ev.Time, at))
	}
	var out []M
	for len(p.heap) > 0 && p.heap[0].ev.Time == at {
		out = append(out, p.heap.pop().ev.Msg)
	}
	return out
}

// drainAll returns every remaining (message, time) pair without popping
// them, used only at shutdown to expose events that were never
// delivered.
func (p *Port[M]) drainAll() []Event[M] {
	out := make([]Event[M], len(p.heap))
	for i, it := range p.heap {
		out[i] = it.ev
	}
	return out
}

// Messages yields the messages due this tick: nil during startup and
// shutdown (drain is suppressed outside PhaseTick), otherwise every
// event queued for sim.CurrentTime().
func (p *Port[M]) Messages(sim *Simulator) []M {
	if sim.phase != PhaseTick {
		return nil
	}
	return p.drainDue(sim.currentTime)
}

// RemainingMessages exposes every event still queued, without removing
// them, as (message, time) pairs. Intended for use during PhaseShutdown;
// callable at any phase since draining is never implicit.
func (p *Port[M]) RemainingMessages() []Event[M] {
	return p.drainAll()
}

