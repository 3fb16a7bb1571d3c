package tts

import "github.com/rs/zerolog/log"

// Resolve walks the priority list in order and returns the first registered
// backend that reports itself available. Unknown names are skipped. Returns
// nil when the list is empty, names nothing registered, or nothing is
// available. Deterministic for identical environment state; each hook
// process resolves once per invocation, so no caching is needed.
func Resolve(priority []string, registry *Registry, opts Options) Backend {
	for _, name := range priority {
		factory, ok := registry.Lookup(name)
		if !ok {
			continue
		}
		backend := factory(opts)
		if backend.Available() {
			return backend
		}
		log.Debug().Str("backend", name).Msg("backend not available, trying next")
	}
	return nil
}
