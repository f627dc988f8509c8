package scene

import (
	"fmt"
	"sort"
	"time"

	"github.com/san-kum/dotscreen/internal/grid"
	"github.com/san-kum/dotscreen/internal/scheme"
)

// Scene produces frame content. Advance clears and redraws g for the given
// elapsed animation time; it is called once per frame on the back buffer.
type Scene interface {
	Name() string
	Advance(g *grid.Grid, elapsed time.Duration)
}

// Registry maps scene names to constructors, parameterized by color scheme.
type Registry struct {
	scenes map[string]func(palette scheme.Gradient) Scene
}

// NewRegistry returns a registry with all built-in scenes.
func NewRegistry() *Registry {
	r := &Registry{scenes: make(map[string]func(scheme.Gradient) Scene)}

	r.scenes["wave"] = func(p scheme.Gradient) Scene { return NewWave(p) }
	r.scenes["balls"] = func(p scheme.Gradient) Scene { return NewBalls(p, 3) }
	r.scenes["lissajous"] = func(p scheme.Gradient) Scene { return NewLissajous(p) }
	r.scenes["spinner"] = func(p scheme.Gradient) Scene { return NewSpinner(p) }

	return r
}

// Get builds the named scene with the given palette.
func (r *Registry) Get(name string, palette scheme.Gradient) (Scene, error) {
	fn, ok := r.scenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene: %s", name)
	}
	return fn(palette), nil
}

// Names lists registered scene names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scenes))
	for name := range r.scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
