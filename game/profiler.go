package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// ErrProfilerBusy is returned while a capture is running or cooling down
var ErrProfilerBusy = errors.New("profiler busy")

// Profiler captures a CPU profile and an execution trace when the frame rate collapses
type Profiler struct {
	mu              sync.Mutex
	wg              sync.WaitGroup
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, duration time.Duration) *Profiler {
	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: duration,
		profilesDir:     dir,
	}
}

// Capture starts a background capture named after reason
func (p *Profiler) Capture(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return fmt.Errorf("%w: capture in progress", ErrProfilerBusy)
	}
	if !p.lastCaptureTime.IsZero() && time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("%w: last capture was %v ago", ErrProfilerBusy, time.Since(p.lastCaptureTime))
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create profiles dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("fps-drop-%s-%s", time.Now().Format("20060102-150405"), reason)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var inner sync.WaitGroup
		inner.Add(2)
		go func() {
			defer inner.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				log.Printf("[Profiler] Error capturing CPU profile: %v", err)
			}
		}()
		go func() {
			defer inner.Done()
			if err := p.captureTrace(baseName); err != nil {
				log.Printf("[Profiler] Error capturing trace: %v", err)
			}
		}()
		inner.Wait()

		p.logSummary(baseName)
	}()

	return nil
}

// Wait blocks until any running capture has been written
func (p *Profiler) Wait() {
	p.wg.Wait()
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	log.Printf("[Profiler] CPU profile saved to %s", path)
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".trace")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	log.Printf("[Profiler] Trace saved to %s", path)
	return nil
}

func (p *Profiler) logSummary(baseName string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("[Profiler] %s: HeapAlloc=%d KB NumGC=%d HeapObjects=%d",
		baseName, m.HeapAlloc/1024, m.NumGC, m.HeapObjects)
	log.Printf("[Profiler] View with: go tool pprof -http=:8080 %s",
		filepath.Join(p.profilesDir, baseName+".cpu.prof"))
}

// FPSMeter averages frame rate over a sampling window
type FPSMeter struct {
	Window  float64 // ms
	FPS     float64
	frames  int
	elapsed float64
}

// NewFPSMeter creates a meter that reports every window milliseconds
func NewFPSMeter(window float64) *FPSMeter {
	return &FPSMeter{Window: window, FPS: 60}
}

// Tick records a frame of dt milliseconds and reports whether FPS was refreshed
func (m *FPSMeter) Tick(dt float64) bool {
	m.frames++
	m.elapsed += dt
	if m.elapsed < m.Window {
		return false
	}
	m.FPS = float64(m.frames) / (m.elapsed / 1000)
	m.frames = 0
	m.elapsed = 0
	return true
}
