// Package profiling starts and stops the profilers supported by the run command.
package profiling

import (
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/felixge/fgprof"
	"go.uber.org/multierr"
)

// StartProfilers starts the profilers selected by the given paths. An empty
// path disables that profiler. The returned function stops all started
// profilers and writes the memory profile, if requested.
func StartProfilers(cpuProfilePath, memProfilePath, tracePath, fgprofPath string) (stopProfilers func() error, err error) {
	var (
		cpuFile    *os.File
		traceFile  *os.File
		fgprofFile *os.File
		fgprofStop func() error
	)

	if cpuProfilePath != "" {
		cpuFile, err = os.Create(cpuProfilePath)
		if err != nil {
			return nil, err
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			return nil, err
		}
	}

	if fgprofPath != "" {
		fgprofFile, err = os.Create(fgprofPath)
		if err != nil {
			return nil, err
		}
		fgprofStop = fgprof.Start(fgprofFile, fgprof.FormatPprof)
	}

	if tracePath != "" {
		traceFile, err = os.Create(tracePath)
		if err != nil {
			return nil, err
		}
		if err := trace.Start(traceFile); err != nil {
			return nil, err
		}
	}

	return func() (err error) {
		if memProfilePath != "" {
			f, ferr := os.Create(memProfilePath)
			if ferr != nil {
				return ferr
			}
			runtime.GC() // get up-to-date statistics
			err = multierr.Append(err, pprof.WriteHeapProfile(f))
			err = multierr.Append(err, f.Close())
		}
		if cpuFile != nil {
			pprof.StopCPUProfile()
			err = multierr.Append(err, cpuFile.Close())
		}
		if fgprofFile != nil {
			err = multierr.Append(err, fgprofStop())
			err = multierr.Append(err, fgprofFile.Close())
		}
		if traceFile != nil {
			trace.Stop()
			err = multierr.Append(err, traceFile.Close())
		}
		return err
	}, nil
}
