// Package tickmesh is a discrete-event simulation engine organized
// around message-passing components.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - event.go: the (message, deliveryTime) pair every queue orders on
//   - port.go, timer.go: inbound endpoints, each owning a min-heap of events
//   - link.go, bcastlink.go, batchlink.go: typed outbound edges with latency
//   - component.go: the lifecycle contract and back-reference wiring
//   - simulator.go: registration, the tick loop, and termination
//
// # Architecture
//
// Users declare a component type embedding *ComponentBase with exported
// Port/Timer/Link/BcastLink/BatchLink fields, construct one instance per
// simulated entity, Register each with a Simulator (which wires the
// back-references on those fields automatically), Connect outbound
// edges to inbound Ports, and call Simulator.Run. A component's Behave
// method is the single callback the engine invokes, once per lifecycle
// phase per tick it has a pending event at.
//
// # Concurrency
//
// Simulator is not safe for concurrent use. All scheduling is
// single-threaded and cooperative: Behave runs to completion with no
// preemption, and the only point control returns to the engine is when
// Behave returns. The design preserves the *option* of a future
// multi-threaded execution mode (components on separate threads could
// each safely advance up to min(latency)-1 ticks ahead of the others)
// without implementing it.
//
// # Logging
//
// A logging collaborator lives in the sibling package tickmesh/logging.
// It is an ordinary Component built on this package's public API, not
// engine-internal logic — see that package's doc comment for the
// collaborator contract.
package tickmesh
