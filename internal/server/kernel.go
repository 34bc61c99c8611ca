package server

import (
	"github.com/nfrund/gogoz/internal/module"
	"github.com/nfrund/gogoz/internal/modules/site"
)

// AppModules returns the application modules in registration order.
// The framework will iterate over this slice to register and boot each module.
func AppModules() []module.Module {
	return []module.Module{
		site.New(),
	}
}
