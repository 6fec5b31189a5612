package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"
)

var (
	// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
	// having to sort through too many dump files
	MemorySampleRate = 0.5
)

// profiler collects a CPU profile and periodic heap dumps for the lifetime of a command
type profiler struct {
	cpuProfileFile *os.File
	memDumpDir     string

	mu        sync.Mutex
	heapDumps [][]byte
	stopOnce  sync.Once
	stopErr   error
	stop      chan struct{}
	stopped   chan struct{}
}

func startProfiling(cpuProfilePath, memProfileDir string) (*profiler, error) {
	p := &profiler{memDumpDir: memProfileDir, stop: make(chan struct{}), stopped: make(chan struct{})}

	if cpuProfilePath != "" {
		f, err := os.Create(cpuProfilePath)
		if err != nil {
			return nil, err
		}
		runtime.SetCPUProfileRate(500)
		if err = pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return nil, fmt.Errorf("starting CPU profiler: %w", err)
		}
		p.cpuProfileFile = f
	}

	if memProfileDir == "" || MemorySampleRate <= 0 {
		close(p.stopped)
		return p, nil
	}

	go func() {
		defer close(p.stopped)
		ticker := time.NewTicker(time.Duration((1/MemorySampleRate)*1000) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				p.dumpHeap()
			}
		}
	}()
	return p, nil
}

func (p *profiler) dumpHeap() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err != nil {
		return
	}
	p.mu.Lock()
	p.heapDumps = append(p.heapDumps, w.Bytes())
	p.mu.Unlock()
}

// Stop flushes the CPU profile and writes every heap dump taken so far. Calling it more than once is safe
func (p *profiler) Stop() error {
	p.stopOnce.Do(func() {
		close(p.stop)
		<-p.stopped

		var errs []error
		if p.cpuProfileFile != nil {
			pprof.StopCPUProfile()
			errs = append(errs, p.cpuProfileFile.Close())
		}
		if p.memDumpDir != "" {
			p.dumpHeap()
			errs = append(errs, p.writeHeapDumps())
		}
		p.stopErr = errors.Join(errs...)
	})
	return p.stopErr
}

func (p *profiler) writeHeapDumps() error {
	if err := os.MkdirAll(p.memDumpDir, os.ModePerm); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for dIdx, dump := range p.heapDumps {
		err := os.WriteFile(filepath.Join(p.memDumpDir, fmt.Sprintf("mem-%d.mprof", dIdx)), dump, 0o644)
		if err != nil {
			return fmt.Errorf("writing memory profile to disk: %w", err)
		}
	}
	return nil
}
