// Package registry provides the central "glue" for the node kind catalog.
//
// The Registry maps the kind names used in grid files (e.g., "arith.expand")
// to the compiled Go factories that build nodes of that kind. Modules under
// modules/ contribute kinds by implementing Module.
//
// During application startup, the registry is populated and then validated
// so that every factory builds nodes whose connectors match the records the
// kind declares.
package registry
