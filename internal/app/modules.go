package app

import (
	"github.com/specialistvlad/wavegrid/internal/registry"
	"github.com/specialistvlad/wavegrid/modules/arith"
	"github.com/specialistvlad/wavegrid/modules/env_vars"
	"github.com/specialistvlad/wavegrid/modules/print"
	"github.com/specialistvlad/wavegrid/modules/text"
)

// coreModules is the definitive list of all modules that are compiled into
// the wavegrid binary.
var coreModules = []registry.Module{
	&arith.Module{},
	&text.Module{},
	&env_vars.Module{},
	&print.Module{},
}
