package session

import "sort"

// Environment is the variable store for one session. A name is present
// exactly when an earlier line in the same run assigned it successfully;
// the store starts empty and is never persisted.
type Environment struct {
	store map[string]int64
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]int64)}
}

func (e *Environment) Get(name string) (int64, bool) {
	value, ok := e.store[name]
	return value, ok
}

func (e *Environment) Set(name string, value int64) {
	e.store[name] = value
}

// Names returns the bound names sorted, so listings derived from the
// store are reproducible run to run.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.store))
	for name := range e.store {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Environment) Len() int {
	return len(e.store)
}
