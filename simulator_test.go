package tickmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// selfLoop sends true to its own Port over a latency-1 Link in startup
// and records every tick it observes the message.
type selfLoop struct {
	*ComponentBase
	In  *Port[bool]
	Out *Link[bool]

	seenAt []Time
}

func newSelfLoop(t *testing.T) *selfLoop {
	out, err := NewLink[bool](1)
	require.NoError(t, err)
	return &selfLoop{
		ComponentBase: NewComponentBase("loop"),
		In:            NewPort[bool](),
		Out:           out,
	}
}

func (c *selfLoop) Behave(sim *Simulator, phase Phase) {
	switch phase {
	case PhaseStartup:
		_ = c.Out.Send(true, 0)
	case PhaseTick:
		for range c.In.Messages(sim) {
			c.seenAt = append(c.seenAt, sim.CurrentTime())
		}
	}
}

// TestSelfLoop: one component with a self Link (latency 1) connected to
// its own Port. Sent in startup, it must be received exactly once, at
// tick 1.
func TestSelfLoop(t *testing.T) {
	c := newSelfLoop(t)
	sim := New(0)
	require.NoError(t, sim.Register(c))
	require.NoError(t, Connect(c.Out, c.In))

	sim.Run()

	assert.Equal(t, []Time{1}, c.seenAt)
}

// sender sends a sequence of (msg, extraDelay) pairs over a Link during
// startup.
type sender struct {
	*ComponentBase
	Out *Link[int]

	toSend []sendSpec
}

type sendSpec struct {
	msg        int
	extraDelay Time
}

func (s *sender) Behave(sim *Simulator, phase Phase) {
	if phase != PhaseStartup {
		return
	}
	for _, spec := range s.toSend {
		_ = s.Out.Send(spec.msg, spec.extraDelay)
	}
}

// receiver records every message it observes along with the tick.
type receiver struct {
	*ComponentBase
	In *Port[int]

	seen []Event[int]
}

func (r *receiver) Behave(sim *Simulator, phase Phase) {
	if phase != PhaseTick {
		return
	}
	for _, m := range r.In.Messages(sim) {
		r.seen = append(r.seen, Event[int]{Msg: m, Time: sim.CurrentTime()})
	}
}

// TestTwoComponentsOneMessage sends one message from one component to
// another over a Link and checks it arrives exactly once, on time.
func TestTwoComponentsOneMessage(t *testing.T) {
	out, err := NewLink[int](1)
	require.NoError(t, err)
	snd := &sender{ComponentBase: NewComponentBase("sender"), Out: out, toSend: []sendSpec{{42, 0}}}
	rcv := &receiver{ComponentBase: NewComponentBase("receiver"), In: NewPort[int]()}

	sim := New(0)
	require.NoError(t, sim.Register(snd))
	require.NoError(t, sim.Register(rcv))
	require.NoError(t, Connect(snd.Out, rcv.In))

	sim.Run()

	require.Len(t, rcv.seen, 1)
	assert.Equal(t, 42, rcv.seen[0].Msg)
	assert.Equal(t, Time(1), rcv.seen[0].Time)
}

// TestMultiDelayBatch: messages with varying extraDelay may be observed
// out of send-order but each arrives at sendTime + latency + extraDelay
// exactly.
func TestMultiDelayBatch(t *testing.T) {
	out, err := NewLink[int](1)
	require.NoError(t, err)
	snd := &sender{
		ComponentBase: NewComponentBase("sender"),
		Out:           out,
		toSend:        []sendSpec{{1, 0}, {2, 5}, {3, 25}},
	}
	rcv := &receiver{ComponentBase: NewComponentBase("receiver"), In: NewPort[int]()}

	sim := New(0)
	require.NoError(t, sim.Register(snd))
	require.NoError(t, sim.Register(rcv))
	require.NoError(t, Connect(snd.Out, rcv.In))

	sim.Run()

	require.Len(t, rcv.seen, 3)
	assert.Equal(t, Event[int]{Msg: 1, Time: 1}, rcv.seen[0])
	assert.Equal(t, Event[int]{Msg: 2, Time: 6}, rcv.seen[1])
	assert.Equal(t, Event[int]{Msg: 3, Time: 26}, rcv.seen[2])
}

// bcastSender sends one message over a BcastLink during startup.
type bcastSender struct {
	*ComponentBase
	Out *BcastLink[int]
	msg int
}

func (s *bcastSender) Behave(sim *Simulator, phase Phase) {
	if phase == PhaseStartup {
		_ = s.Out.Send(s.msg, 0)
	}
}

// TestBroadcastFanOut checks the broadcast fan-out law: N targets
// produce exactly N delivered events, all at the same delivery time.
func TestBroadcastFanOut(t *testing.T) {
	out, err := NewBcastLink[int](1)
	require.NoError(t, err)
	snd := &bcastSender{ComponentBase: NewComponentBase("sender"), Out: out, msg: 42}
	r1 := &receiver{ComponentBase: NewComponentBase("r1"), In: NewPort[int]()}
	r2 := &receiver{ComponentBase: NewComponentBase("r2"), In: NewPort[int]()}

	sim := New(0)
	require.NoError(t, sim.Register(snd))
	require.NoError(t, sim.Register(r1))
	require.NoError(t, sim.Register(r2))
	require.NoError(t, ConnectBcast(snd.Out, r1.In))
	require.NoError(t, ConnectBcast(snd.Out, r2.In))

	sim.Run()

	for _, r := range []*receiver{r1, r2} {
		require.Len(t, r.seen, 1)
		assert.Equal(t, 42, r.seen[0].Msg)
		assert.Equal(t, Time(1), r.seen[0].Time)
	}
}

// quittingSender sends one message then immediately requests shutdown.
type quittingSender struct {
	*ComponentBase
	Out *Link[int]
}

func (s *quittingSender) Behave(sim *Simulator, phase Phase) {
	if phase == PhaseStartup {
		_ = s.Out.Send(42, 0)
		sim.Quit()
	}
}

// drainingReceiver records regular ticked messages separately from
// whatever is exposed at shutdown.
type drainingReceiver struct {
	*ComponentBase
	In *Port[int]

	regular   []int
	remaining []Event[int]
}

func (r *drainingReceiver) Behave(sim *Simulator, phase Phase) {
	switch phase {
	case PhaseTick:
		r.regular = append(r.regular, r.In.Messages(sim)...)
	case PhaseShutdown:
		r.remaining = append(r.remaining, r.In.RemainingMessages()...)
	}
}

// TestQuitWithPending: quitting before the tick where a message would
// be delivered means the regular handler never sees it, but shutdown's
// RemainingMessages does.
func TestQuitWithPending(t *testing.T) {
	out, err := NewLink[int](1)
	require.NoError(t, err)
	snd := &quittingSender{ComponentBase: NewComponentBase("sender"), Out: out}
	rcv := &drainingReceiver{ComponentBase: NewComponentBase("receiver"), In: NewPort[int]()}

	sim := New(0)
	require.NoError(t, sim.Register(snd))
	require.NoError(t, sim.Register(rcv))
	require.NoError(t, Connect(snd.Out, rcv.In))

	sim.Run()

	assert.Empty(t, rcv.regular)
	require.Len(t, rcv.remaining, 1)
	assert.Equal(t, Event[int]{Msg: 42, Time: 1}, rcv.remaining[0])
}

// TestCurrentTimeMonotonic checks the invariant that CurrentTime never
// decreases across observations made from within Behave.
func TestCurrentTimeMonotonic(t *testing.T) {
	out, err := NewLink[int](1)
	require.NoError(t, err)
	snd := &sender{
		ComponentBase: NewComponentBase("sender"),
		Out:           out,
		toSend:        []sendSpec{{1, 0}, {2, 3}, {3, 3}},
	}
	rcv := &receiver{ComponentBase: NewComponentBase("receiver"), In: NewPort[int]()}

	sim := New(0)
	require.NoError(t, sim.Register(snd))
	require.NoError(t, sim.Register(rcv))
	require.NoError(t, Connect(snd.Out, rcv.In))

	var observed []Time
	sim.Run()
	for _, e := range rcv.seen {
		observed = append(observed, e.Time)
	}

	for i := 1; i < len(observed); i++ {
		assert.GreaterOrEqual(t, observed[i], observed[i-1])
	}
}

// TestRegistrationOrderTieBreak checks that components are invoked in
// registration order, as observed in the startup phase.
func TestRegistrationOrderTieBreak(t *testing.T) {
	out1, err := NewLink[int](1)
	require.NoError(t, err)
	out2, err := NewLink[int](1)
	require.NoError(t, err)

	var order []string
	first := &orderComponent{ComponentBase: NewComponentBase("first"), Out: out1, order: &order}
	second := &orderComponent{ComponentBase: NewComponentBase("second"), Out: out2, order: &order}
	rcv := &receiver{ComponentBase: NewComponentBase("receiver"), In: NewPort[int]()}

	sim := New(0)
	require.NoError(t, sim.Register(first))
	require.NoError(t, sim.Register(second))
	require.NoError(t, sim.Register(rcv))
	require.NoError(t, Connect(first.Out, rcv.In))
	require.NoError(t, Connect(second.Out, rcv.In))

	sim.Run()

	require.Len(t, order, 2)
	assert.Equal(t, []string{"first", "second"}, order)
}

type orderComponent struct {
	*ComponentBase
	Out   *Link[int]
	order *[]string
	sent  bool
}

func (o *orderComponent) Behave(sim *Simulator, phase Phase) {
	if phase == PhaseStartup && !o.sent {
		o.sent = true
		_ = o.Out.Send(1, 0)
		*o.order = append(*o.order, o.Name())
	}
}
