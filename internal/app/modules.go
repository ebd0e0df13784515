package app

import (
	"github.com/vk/winbridge/internal/registry"
	"github.com/vk/winbridge/modules/snapwin"
)

// optionalModules is the definitive list of layouter modules compiled into
// the winbridge binary. The host registers them when the configuration asks
// for the optional layouter; the capability layer discovers them from the
// registry alone.
var optionalModules = []registry.Module{
	snapwin.Module{},
}
