// Package scheduler decides which nodes of a graph snapshot are ready to run
// and explains why the others never became ready.
//
// # Readiness
//
// A node is ready when it has not executed yet and every one of its required
// inputs either:
//   - already holds a value, or
//   - is the target of an edge whose source is owned by an executed node.
//
// Argument inputs are always required. An override input is required only
// when an edge feeds it, so the pinned value arrives before the node runs;
// unfed overrides never block. A seeded input is satisfied even if it is
// also fed by a producer that has not run; the node then runs with the seed.
//
// # Diagnosis
//
// When nothing more is ready, every node that did not execute is explained
// by a Stall:
//   - StallCycle: the node sits on a dependency cycle of edges into inputs
//     that hold no value;
//   - StallUnsatisfied: one of its inputs has neither a value nor an edge;
//   - StallUpstream: it waits on a producer that never ran.
//
// # Relationship with Other Components
//
//   - **Graph:** readiness is computed against an immutable graph.Snapshot.
//   - **Executor:** calls Ready once per wave and Diagnose once at the end.
//
// Nothing in this package mutates connectors; Ready and Plan are safe to call
// while no wave is evaluating.
package scheduler
