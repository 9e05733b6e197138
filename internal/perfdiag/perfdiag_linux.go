//go:build linux

// Package perfdiag wraps hodgesds/perf-utils to sample hardware performance
// counters around a bench run. perf_event_open is Linux-only, hence the
// build tag; other platforms get the no-op in perfdiag_other.go.
package perfdiag

import (
	"fmt"

	perf "github.com/hodgesds/perf-utils"
)

var defaultCounters = perf.CpuCyclesProfiler | perf.CpuInstrProfiler | perf.CacheMissesProfiler | perf.CacheRefProfiler

// Sampler owns one hardware profiler bound to the calling process's own
// thread, sampling the default instruction/cache counter set.
type Sampler struct {
	prof perf.HardwareProfiler
}

func NewSampler() (*Sampler, error) {
	prof, err := perf.NewHardwareProfiler(0, -1, defaultCounters)
	if err != nil {
		return nil, fmt.Errorf("perfdiag: new: %w", err)
	}
	if err := prof.Start(); err != nil {
		return nil, fmt.Errorf("perfdiag: start: %w", err)
	}
	return &Sampler{prof: prof}, nil
}

// Report stops the profiler, prints the sampled counters, and leaves the
// sampler unusable -- bench runs own exactly one Sampler per invocation.
func (s *Sampler) Report() error {
	defer s.prof.Stop()
	var profile perf.HardwareProfile
	if err := s.prof.Profile(&profile); err != nil {
		return fmt.Errorf("perfdiag: profile: %w", err)
	}
	printCounter("cycles", profile.CPUCycles)
	printCounter("instructions", profile.Instructions)
	printCounter("cache-misses", profile.CacheMisses)
	printCounter("cache-references", profile.CacheRefs)
	return nil
}

func printCounter(name string, v *uint64) {
	if v == nil {
		return
	}
	fmt.Printf("perf: %-20s %v\n", name, *v)
}
