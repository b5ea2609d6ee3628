// Package graph holds the structural side of a grid: the set of nodes, the
// edges wiring their connectors, and the topology derived from them.
//
// # Validation
//
// A graph is validated when it is constructed and on every mutation. An edge
// is valid when its source is an output connector owned by a node of the
// graph and its target an input connector owned by a node of the graph.
// Connectors are matched by pointer identity, so two nodes exposing a field
// with the same name can never be confused. Node addresses must be unique.
//
// Acyclicity is NOT enforced. Cycles are legal structure; the executer simply
// never reaches the nodes on them, and Snapshot.Cycles reports them for
// diagnosis.
//
// Every failure is reported as a *ValidationError that lists all problems
// found, and matches ErrStructuralValidation with errors.Is.
//
// # Observation
//
// Graph publishes a Change for every node or edge added or removed. Editors
// subscribe to keep a view in sync; the executer never does.
//
// # Snapshots
//
// Execution works on a Snapshot: an immutable copy of the node and edge sets
// taken at one instant, indexed for the questions the scheduler asks
// (who owns this connector, which edges feed this input, which nodes does
// this node depend on). Mutating the live Graph after taking a snapshot does
// not affect it.
//
// # Thread-Safety
//
// Graph methods are safe for concurrent use. Subscribers are notified after
// the graph's lock is released, on the mutating goroutine.
package graph
