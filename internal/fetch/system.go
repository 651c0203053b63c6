package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/san-kum/animfetch/internal/logging"
)

// Snapshot is the raw data the builtin source renders.
type Snapshot struct {
	User            string
	Hostname        string
	OS              string
	Platform        string
	PlatformVersion string
	Kernel          string
	Arch            string
	Uptime          time.Duration
	CPUModel        string
	CPUCount        int
	MemUsed         uint64
	MemTotal        uint64
	DiskUsed        uint64
	DiskTotal       uint64
}

// System reads host information in process through gopsutil.
type System struct {
	Logger *slog.Logger
	// Collect gathers the snapshot. Defaults to gopsutil.
	Collect func(ctx context.Context) (Snapshot, error)
}

func NewSystem(logger *slog.Logger) *System {
	return &System{Logger: logging.OrNop(logger), Collect: Collect}
}

func (s *System) Lines(ctx context.Context) Block {
	collect := s.Collect
	if collect == nil {
		collect = Collect
	}
	snap, err := collect(ctx)
	if err != nil {
		logging.OrNop(s.Logger).Warn("system info unavailable", "source", Builtin, "error", err)
		return nil
	}
	return Format(snap)
}

// Collect queries gopsutil. Only a host lookup failure is fatal; the other
// probes leave their fields empty.
func Collect(ctx context.Context) (Snapshot, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch: host info: %w", err)
	}
	snap := Snapshot{
		User:            os.Getenv("USER"),
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		Kernel:          info.KernelVersion,
		Arch:            info.KernelArch,
		Uptime:          time.Duration(info.Uptime) * time.Second,
	}
	if cpus, err := cpu.InfoWithContext(ctx); err == nil && len(cpus) > 0 {
		snap.CPUModel = strings.TrimSpace(cpus[0].ModelName)
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		snap.CPUCount = n
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		snap.MemUsed, snap.MemTotal = vm.Used, vm.Total
	}
	if du, err := disk.UsageWithContext(ctx, "/"); err == nil {
		snap.DiskUsed, snap.DiskTotal = du.Used, du.Total
	}
	return snap, nil
}

// Format renders a snapshot in the key: value layout of fetch tools.
func Format(s Snapshot) Block {
	var lines Block
	title := s.Hostname
	if s.User != "" {
		title = s.User + "@" + s.Hostname
	}
	if title != "" {
		lines = append(lines, title, strings.Repeat("-", len(title)))
	}

	add := func(key, value string) {
		if value != "" {
			lines = append(lines, key+": "+value)
		}
	}

	osName := strings.TrimSpace(s.Platform + " " + s.PlatformVersion)
	if osName == "" {
		osName = s.OS
	}
	if osName != "" && s.Arch != "" {
		osName += " " + s.Arch
	}
	add("OS", osName)
	add("Kernel", s.Kernel)
	if s.Uptime > 0 {
		add("Uptime", FormatUptime(s.Uptime))
	}
	switch {
	case s.CPUModel != "" && s.CPUCount > 0:
		add("CPU", fmt.Sprintf("%s (%d)", s.CPUModel, s.CPUCount))
	default:
		add("CPU", s.CPUModel)
	}
	if s.MemTotal > 0 {
		add("Memory", usage(s.MemUsed, s.MemTotal))
	}
	if s.DiskTotal > 0 {
		add("Disk (/)", usage(s.DiskUsed, s.DiskTotal))
	}
	return lines
}

func usage(used, total uint64) string {
	pct := float64(used) / float64(total) * 100
	return fmt.Sprintf("%s / %s (%.0f%%)", humanize.IBytes(used), humanize.IBytes(total), pct)
}

// FormatUptime renders d as "2 days, 3 hours, 4 mins".
func FormatUptime(d time.Duration) string {
	days := int(d / (24 * time.Hour))
	hours := int(d/time.Hour) % 24
	mins := int(d/time.Minute) % 60

	var parts []string
	unit := func(n int, one, many string) {
		switch {
		case n == 1:
			parts = append(parts, "1 "+one)
		case n > 1:
			parts = append(parts, fmt.Sprintf("%d %s", n, many))
		}
	}
	unit(days, "day", "days")
	unit(hours, "hour", "hours")
	unit(mins, "min", "mins")
	if len(parts) == 0 {
		return "0 mins"
	}
	return strings.Join(parts, ", ")
}
