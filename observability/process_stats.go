package observability

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/process"
)

// Stats is a point-in-time view of the current process.
type Stats struct {
	PID        int32
	Status     string
	RSSBytes   uint64
	CPUPercent float64
	AllocMemMb uint64
	NumGC      uint32
	Goroutines int
}

type Snapshots interface {
	Snapshot() (Stats, error)
}

type ProcessStats struct {
	p *process.Process
}

func NewProcessStats() (*ProcessStats, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &ProcessStats{p: p}, nil
}

// Snapshot reads memory and CPU from the OS and completes them with the Go runtime counters.
func (s *ProcessStats) Snapshot() (Stats, error) {
	memInfo, err := s.p.MemoryInfo()
	if err != nil {
		return Stats{}, err
	}
	cpuPercent, err := s.p.CPUPercent()
	if err != nil {
		return Stats{}, err
	}
	status, err := s.p.Status()
	if err != nil {
		return Stats{}, err
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return Stats{
		PID:        s.p.Pid,
		Status:     status,
		RSSBytes:   memInfo.RSS,
		CPUPercent: cpuPercent,
		AllocMemMb: m.Alloc / 1024 / 1024,
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}, nil
}

// LogSnapshot never fails the caller, a missing sample is only a warning.
func LogSnapshot(log *slog.Logger, source Snapshots, msg string) {
	if source == nil {
		return
	}
	stats, err := source.Snapshot()
	if err != nil {
		log.Warn("Failed to collect process stats", "err", err)
		return
	}
	log.Info(msg,
		"pid", stats.PID,
		"status", stats.Status,
		"rss_bytes", stats.RSSBytes,
		"cpu_percent", stats.CPUPercent,
		"alloc_mb", stats.AllocMemMb,
		"num_gc", stats.NumGC,
		"goroutines", stats.Goroutines)
}
