package tickmesh

// Connect binds link's target Port. If both the link's and the port's
// owning components are already registered with a Simulator, those
// Simulators must be the same one. Re-connecting an already-connected
// Link overwrites the previous target — last write wins.
func Connect[M any](link *Link[M], port *Port[M]) error {
	if err := checkSameSimulator(link.owner, port.owner); err != nil {
		return err
	}
	link.setTarget(port)
	return nil
}

// ConnectBcast appends port to link's target list. BcastLinks may be
// connected to any number of Ports, including zero.
func ConnectBcast[M any](link *BcastLink[M], port *Port[M]) error {
	if err := checkSameSimulator(link.owner, port.owner); err != nil {
		return err
	}
	link.addTarget(port)
	return nil
}

// ConnectBatch binds a BatchLink's target Port, same semantics as
// Connect.
func ConnectBatch[M any](link *BatchLink[M], port *Port[M]) error {
	if err := checkSameSimulator(link.inner.owner, port.owner); err != nil {
		return err
	}
	link.setTarget(port)
	return nil
}

func checkSameSimulator(linkOwner, portOwner *ComponentBase) error {
	if linkOwner == nil || portOwner == nil {
		return nil
	}
	if linkOwner.sim == nil || portOwner.sim == nil {
		return nil
	}
	if linkOwner.sim != portOwner.sim {
		return newSimErr(CrossSimulator, "link and port belong to components registered on different simulators")
	}
	return nil
}
