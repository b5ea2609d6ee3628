// Package hcl_adapter loads grids written in HCL into the format-agnostic
// config model.
//
// A grid file contains `node "<kind>" "<name>"` blocks with optional
// `inputs` and `overrides` object attributes, and `edge` blocks whose `from`
// and `to` attributes name connectors either as strings ("probe.Data1") or
// as bare references (probe.Data1).
package hcl_adapter
