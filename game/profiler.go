package game

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

var (
	errCaptureCooldown  = errors.New("capture on cooldown")
	errAlreadyProfiling = errors.New("already profiling")
)

// Profiler captures a CPU profile and execution trace when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration
	logger          *slog.Logger
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, cooldown time.Duration, logger *slog.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profiles dir: %w", err)
	}
	return &Profiler{
		captureCooldown: cooldown,
		profilesDir:     dir,
		captureDuration: 5 * time.Second,
		logger:          logger,
	}, nil
}

// CaptureProfile starts a background capture. It returns immediately.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("%w: last capture %v ago", errCaptureCooldown, time.Since(p.lastCaptureTime))
	}
	if p.isProfiling {
		return errAlreadyProfiling
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("fps-drop-%s-%s", time.Now().Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				p.logger.Error("cpu profile failed", "error", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				p.logger.Error("trace failed", "error", err)
			}
		}()
		wg.Wait()

		p.logSummary(baseName)
	}()
	return nil
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".trace")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()
	return nil
}

// logSummary reports where the capture went and the memory picture at the end of it.
func (p *Profiler) logSummary(baseName string) {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	info, err := os.Stat(path)
	if err != nil {
		p.logger.Warn("could not stat profile", "path", path, "error", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.logger.Info("profile captured",
		"path", path,
		"size_kb", info.Size()/1024,
		"view", "go tool pprof -http=:8080 "+path,
		"heap_alloc_kb", m.HeapAlloc/1024,
		"num_gc", m.NumGC,
		"heap_objects", m.HeapObjects)
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// FPSMonitor measures frames per second over half-second windows and reports drops.
type FPSMonitor struct {
	FPS float64

	threshold float64
	cooldown  time.Duration
	grace     time.Duration

	frames   int
	window   time.Duration
	lastDrop time.Duration
	dropped  bool
}

// NewFPSMonitor creates a monitor starting at a nominal 60 FPS
func NewFPSMonitor(threshold float64, cooldown, grace time.Duration) *FPSMonitor {
	return &FPSMonitor{FPS: 60, threshold: threshold, cooldown: cooldown, grace: grace}
}

// Frame records a frame of length dt at elapsed time now. It reports true when a
// window closes below the threshold outside the startup grace and drop cooldown.
func (m *FPSMonitor) Frame(now, dt time.Duration) bool {
	m.frames++
	m.window += dt
	if m.window < 500*time.Millisecond {
		return false
	}

	m.FPS = float64(m.frames) / m.window.Seconds()
	m.frames = 0
	m.window = 0

	if m.FPS >= m.threshold || now < m.grace {
		return false
	}
	if m.dropped && now-m.lastDrop < m.cooldown {
		return false
	}
	m.dropped = true
	m.lastDrop = now
	return true
}
