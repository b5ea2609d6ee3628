// internal/nodeid/doc.go

/*
Package nodeid provides a structured representation for node and connector
addresses within a grid.

An address is a dot-separated sequence of segments, each optionally indexed,
e.g. `probe`, `pipeline.stage[2]` or `pipeline.stage[2].Result`. A node owns
the address namespace below its own address, so a connector named `Result`
on node `pipeline.stage[2]` is addressed as `pipeline.stage[2].Result`.

Scoping connector identity under its owner keeps two nodes that both expose a
`Value` field from ever being confused with each other.
*/
package nodeid
