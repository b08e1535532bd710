package backends

// BackendFactory creates a backend instance from an adapter-specific
// configuration value.
type BackendFactory func(config any) (Backend, error)

// registeredBackends holds all registered backend factories.
var registeredBackends = make(map[string]BackendFactory)

// Register registers a backend factory under a name. Adapters call this
// from their init; importing an adapter package makes it available.
func Register(name string, factory BackendFactory) {
	registeredBackends[name] = factory
}

// Create creates a backend instance by registered name.
func Create(name string, config any) (Backend, error) {
	factory, ok := registeredBackends[name]
	if !ok {
		return nil, ErrBackendNotFound
	}
	return factory(config)
}

// Registered returns the names of all registered backends.
func Registered() []string {
	names := make([]string, 0, len(registeredBackends))
	for name := range registeredBackends {
		names = append(names, name)
	}
	return names
}
