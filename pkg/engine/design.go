package engine

import (
	"github.com/chazu/wingloft/pkg/loft"
	"github.com/chazu/wingloft/pkg/wing"
)

// Build is one wing registered by a (wing ...) form: a station table plus
// the assembly options to loft it with.
type Build struct {
	Name  string
	Table wing.Table
	Opts  loft.Options
}

// Design is the result of evaluating a wing script. Each evaluation
// produces a fresh Design; nothing is shared between runs.
type Design struct {
	Builds []Build
}

// Lookup returns the build with the given name, or nil.
func (d *Design) Lookup(name string) *Build {
	for i := range d.Builds {
		if d.Builds[i].Name == name {
			return &d.Builds[i]
		}
	}
	return nil
}
