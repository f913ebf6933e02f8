// Command tickmeshdemo is a manual smoke test for the tickmesh engine:
// it assembles a small relay chain in Go (not from a scenario file) and
// runs it to completion, exercising the logging collaborator along the
// way.
package main

func main() {
	Execute()
}
