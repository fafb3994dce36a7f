package cmd

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/spiffcs/repodash/internal/log"
)

// Profiler manages CPU, memory, and trace profiling around a dashboard run.
type Profiler struct {
	cpuFile   *os.File
	traceFile *os.File

	cpuProfile string
	memProfile string
	tracePath  string
}

// NewProfiler creates a profiler. Empty paths disable the corresponding
// profile.
func NewProfiler(cpuProfile, memProfile, tracePath string) *Profiler {
	return &Profiler{
		cpuProfile: cpuProfile,
		memProfile: memProfile,
		tracePath:  tracePath,
	}
}

// Enabled reports whether any profile was requested.
func (p *Profiler) Enabled() bool {
	return p.cpuProfile != "" || p.memProfile != "" || p.tracePath != ""
}

// Start begins CPU profiling and execution tracing if configured.
func (p *Profiler) Start() error {
	if p.cpuProfile != "" {
		f, err := os.Create(p.cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			closeProfile(f, "CPU profile")
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		p.cpuFile = f
		log.Debug("cpu profiling started", "path", p.cpuProfile)
	}

	if p.tracePath != "" {
		f, err := os.Create(p.tracePath)
		if err != nil {
			p.stopCPU()
			return fmt.Errorf("could not create trace: %w", err)
		}
		if err := trace.Start(f); err != nil {
			closeProfile(f, "trace")
			p.stopCPU()
			return fmt.Errorf("could not start trace: %w", err)
		}
		p.traceFile = f
		log.Debug("execution trace started", "path", p.tracePath)
	}

	return nil
}

// Stop ends all profiling and writes the heap profile if configured.
// It is safe to call more than once.
func (p *Profiler) Stop() {
	if p.traceFile != nil {
		trace.Stop()
		closeProfile(p.traceFile, "trace")
		p.traceFile = nil
	}

	p.stopCPU()

	if p.memProfile == "" {
		return
	}
	f, err := os.Create(p.memProfile)
	if err != nil {
		log.Warn("could not create memory profile", "path", p.memProfile, "error", err)
		return
	}
	defer closeProfile(f, "memory profile")

	runtime.GC() // up-to-date statistics
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Warn("could not write memory profile", "path", p.memProfile, "error", err)
	}
	p.memProfile = ""
}

func (p *Profiler) stopCPU() {
	if p.cpuFile == nil {
		return
	}
	pprof.StopCPUProfile()
	closeProfile(p.cpuFile, "CPU profile")
	p.cpuFile = nil
}

func closeProfile(f *os.File, what string) {
	if err := f.Close(); err != nil {
		log.Warn("could not close "+what+" file", "path", f.Name(), "error", err)
	}
}
