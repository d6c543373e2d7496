package app

import (
	"github.com/specialistvlad/ldgraph/internal/registry"
	"github.com/specialistvlad/ldgraph/modules/discourse"
	"github.com/specialistvlad/ldgraph/modules/flows"
	"github.com/specialistvlad/ldgraph/modules/github"
	"github.com/specialistvlad/ldgraph/modules/print"
	"github.com/specialistvlad/ldgraph/modules/socketio"
	"github.com/specialistvlad/ldgraph/modules/urdf"
)

// coreModules is the definitive list of all modules that are compiled into
// the ldgraph binary.
var coreModules = []registry.Module{
	&discourse.Module{},
	&github.Module{},
	&flows.Module{},
	&urdf.Module{},
	&socketio.Module{},
	&print.Module{},
}
