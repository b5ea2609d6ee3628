// Package builder turns a format-agnostic grid into a validated graph.
//
// Building happens in three passes: create every node through the registry,
// seed the values the grid declares, then resolve each edge's
// `<node>.<identity>` endpoints to connectors. Every problem found along the
// way is reported, not just the first one.
package builder
