package registry

import "github.com/alphadose/haxmap"

// Registry is a concurrency-safe name-to-value store. The gateway populates
// registries once at startup and only reads them afterwards, but haxmap keeps
// lookups safe for the concurrent request paths anyway.
type Registry[T any] struct {
	values *haxmap.Map[string, T]
}

func New[T any]() *Registry[T] {
	return &Registry[T]{values: haxmap.New[string, T]()}
}

func (r *Registry[T]) Get(name string) (T, bool) {
	return r.values.Get(name)
}

func (r *Registry[T]) Add(name string, value T) {
	r.values.Set(name, value)
}

func (r *Registry[T]) Len() int {
	return int(r.values.Len())
}

// ForEach visits every entry; iteration order is unspecified.
func (r *Registry[T]) ForEach(fn func(name string, value T) bool) {
	r.values.ForEach(fn)
}
