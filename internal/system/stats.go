package system

import (
	"log/slog"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// Snapshot represents host resource statistics at a point in time
type Snapshot struct {
	CPU       CPUStats    `json:"cpu"`
	Memory    MemoryStats `json:"memory"`
	Disk      DiskStats   `json:"disk"`
	Timestamp time.Time   `json:"timestamp"`
}

// CPUStats represents CPU usage statistics
type CPUStats struct {
	UsagePercent float64 `json:"usage_percent"`
	Cores        int     `json:"cores"`
}

// MemoryStats represents memory usage statistics
type MemoryStats struct {
	Total        uint64  `json:"total_bytes"`
	Used         uint64  `json:"used_bytes"`
	Available    uint64  `json:"available_bytes"`
	UsagePercent float64 `json:"usage_percent"`
}

// DiskStats represents disk usage statistics
type DiskStats struct {
	Total        uint64  `json:"total_bytes"`
	Used         uint64  `json:"used_bytes"`
	Free         uint64  `json:"free_bytes"`
	UsagePercent float64 `json:"usage_percent"`
	Path         string  `json:"path"`
}

// Collect gathers a best-effort snapshot of host stats. Individual probe
// failures are logged and leave their section zeroed rather than failing
// the whole snapshot.
func Collect() *Snapshot {
	snapshot := &Snapshot{Timestamp: time.Now().UTC()}

	if counts, err := cpu.Counts(true); err == nil {
		snapshot.CPU.Cores = counts
	} else {
		slog.Warn("failed to read CPU count", "error", err)
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		snapshot.CPU.UsagePercent = percents[0]
	} else if err != nil {
		slog.Warn("failed to read CPU usage", "error", err)
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		snapshot.Memory = MemoryStats{
			Total:        vm.Total,
			Used:         vm.Used,
			Available:    vm.Available,
			UsagePercent: vm.UsedPercent,
		}
	} else {
		slog.Warn("failed to read memory stats", "error", err)
	}

	if usage, err := disk.Usage("/"); err == nil {
		snapshot.Disk = DiskStats{
			Total:        usage.Total,
			Used:         usage.Used,
			Free:         usage.Free,
			UsagePercent: usage.UsedPercent,
			Path:         usage.Path,
		}
	} else {
		slog.Warn("failed to read disk stats", "error", err)
	}

	return snapshot
}
