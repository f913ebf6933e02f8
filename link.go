package tickmesh

// Link is a typed outbound edge with positive latency, bound to exactly
// one destination Port. Because extraDelay may vary per call, messages
// sent in order may arrive out of order — by design, not a bug.
type Link[M any] struct {
	baseEdge
	latency Time
	target  *Port[M]
}

// NewLink constructs an unowned Link with the given latency, which must
// be strictly positive.
func NewLink[M any](latency Time) (*Link[M], error) {
	if latency <= 0 {
		return nil, newSimErr(InvalidLatency, "link latency must be > 0, got %d", latency)
	}
	return &Link[M]{latency: latency}, nil
}

func (l *Link[M]) setTarget(p *Port[M]) { l.target = p }

// Send pushes msg onto the target Port's heap, due at
// currentTime + latency + extraDelay. extraDelay must be >= 0.
func (l *Link[M]) Send(msg M, extraDelay Time) error {
	if l.target == nil {
		return newSimErr(Unconnected, "link was not connected")
	}
	if extraDelay < 0 {
		return newSimErr(InvalidDelay, "extraDelay must be >= 0, got %d", extraDelay)
	}
	mustRegistered(l.owner, "link")
	now := l.owner.sim.currentTime
	l.target.addEvent(Event[M]{Msg: msg, Time: now + l.latency + extraDelay})
	return nil
}
