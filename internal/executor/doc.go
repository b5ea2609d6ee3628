/*
Package executor runs a grid wave by wave.

# The Wave Loop

Execution keeps two sets: executed (initially empty) and pending (every node
of the snapshot). Each iteration:

 1. asks the scheduler for the ready nodes;
 2. stops when there are none;
 3. evaluates every ready node concurrently and waits for all of them;
 4. copies the value of every edge whose source belongs to the wave into the
    edge's target;
 5. moves the wave into executed.

Evaluation is the only concurrent phase. Readiness, propagation and
diagnosis run on the calling goroutine, and the wave barrier orders every
evaluation write before propagation reads it.

# Failure Policy

Siblings in a wave always run to completion. When any of them fails, the
failures are collected into a *WaveError, nothing from that wave is
propagated and no further wave starts; the nodes that never ran are reported
as skipped.

# Termination Without Failure

A run that simply runs out of ready nodes returns a nil error, even when
nodes are left over because of a cycle or an input nobody feeds. Those nodes
are described in Report.Stalls; Report.Err turns them into an
*IncompleteError for callers that want strictness.

# Cancellation

The context is passed to every evaluation, optionally bounded by a per-node
timeout. A context canceled between waves stops the run before the next one.
*/
package executor
