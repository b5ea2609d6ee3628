package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all top-level blocks from any file.
type fileRoot struct {
	Nodes []*nodeBlock `hcl:"node,block"`
	Edges []*edgeBlock `hcl:"edge,block"`
}

type nodeBlock struct {
	Kind      string         `hcl:"kind,label"`
	Name      string         `hcl:"name,label"`
	Inputs    hcl.Expression `hcl:"inputs,optional"`
	Overrides hcl.Expression `hcl:"overrides,optional"`
	DefRange  hcl.Range      `hcl:",def_range"`
}

type edgeBlock struct {
	From     hcl.Expression `hcl:"from"`
	To       hcl.Expression `hcl:"to"`
	DefRange hcl.Range      `hcl:",def_range"`
}
