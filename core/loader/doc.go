// Package loader registers and loads the application's HTTP features.
//
// Each feature implements Feature:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps features in registration order. LoadAll loads the
// enabled ones and stops at the first error. The item, aura, catalog and
// integrity features are all registered this way by the start command.
package loader
