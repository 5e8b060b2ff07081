package cli

import (
	"github.com/alecthomas/kong"

	"github.com/ardnew/subst/profile"
)

// pprofConfig carries the profiling flags. Capture requires building with
// the pprof tag; without it the flags parse but do nothing.
type pprofConfig struct {
	Mode string `help:"Profile mode" enum:",cpu,mem,heap,alloc,block,mutex,trace" default:""`
	Path string `help:"Profile output directory"                                  default:"."`
}

func (c pprofConfig) group() kong.Group {
	return kong.Group{Key: "pprof", Title: "Profiling flags:"}
}

func (c pprofConfig) start() interface{ Stop() } {
	return profile.Make(
		profile.WithMode(c.Mode),
		profile.WithPath(c.Path),
	).Start()
}
