package tickmesh

// Event pairs a message of type M with the simulated Time it is due for
// delivery. Events live inside a Port's or Timer's min-heap until they
// are drained.
type Event[M any] struct {
	Msg  M
	Time Time
}
