//go:build pprof

package profile

import (
	"github.com/pkg/profile"
)

// start begins capturing the requested profile into path.
func start(mode, path string) interface{ Stop() } {
	opts := []func(*profile.Profile){
		profile.ProfilePath(path),
		profile.Quiet,
	}

	switch mode {
	case "cpu":
		opts = append(opts, profile.CPUProfile)
	case "mem", "heap":
		opts = append(opts, profile.MemProfile)
	case "alloc":
		opts = append(opts, profile.MemProfileAllocs)
	case "block":
		opts = append(opts, profile.BlockProfile)
	case "mutex":
		opts = append(opts, profile.MutexProfile)
	case "trace":
		opts = append(opts, profile.TraceProfile)
	default:
		return ignore{}
	}

	return profile.Start(opts...)
}
