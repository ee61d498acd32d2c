package app

import (
	"github.com/tapastro/calsuffix/internal/registry"
	"github.com/tapastro/calsuffix/modules/darkcurrent"
	"github.com/tapastro/calsuffix/modules/jump"
	"github.com/tapastro/calsuffix/modules/linearity"
	"github.com/tapastro/calsuffix/modules/photom"
	"github.com/tapastro/calsuffix/modules/rampfit"
	"github.com/tapastro/calsuffix/modules/resample"
)

// coreModules is the definitive list of all step modules that are compiled
// into the calsuffix binary.
var coreModules = []registry.Module{
	&darkcurrent.Module{},
	&jump.Module{},
	&linearity.Module{},
	&photom.Module{},
	&rampfit.Module{},
	&resample.Module{},
}
