// Package config defines the format-agnostic grid model along with the
// Loader interface for reading grids from various sources.
//
// The `config.Grid` is the single input of the `builder` package. Concrete
// loaders, such as for HCL and YAML, are provided in separate packages.
package config
