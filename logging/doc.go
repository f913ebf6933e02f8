// Package logging is a logging collaborator built entirely on the
// exported tickmesh API: an ordinary Component (Logger) that receives
// log Records over a Port, and a Handle other components embed to emit
// them.
//
// Using BatchLink to carry log traffic keeps it out of band from a
// simulation's own message flow — Records are delivered one tick after
// they're emitted, never in the same tick, and never compete with a
// component's domain-level Links for delivery-time semantics.
package logging
