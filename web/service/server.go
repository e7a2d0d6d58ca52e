package service

import (
	"runtime"
	"time"

	"portfolio/config"
	"portfolio/logger"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

var appStart = time.Now()

// Status holds the system and application figures shown on the admin panel.
type Status struct {
	Cpu      float64 `json:"cpu"`
	CpuCores int     `json:"cpuCores"`
	Mem      struct {
		Current uint64 `json:"current"`
		Total   uint64 `json:"total"`
	} `json:"mem"`
	Uptime   uint64 `json:"uptime"`
	AppStats struct {
		Version    string `json:"version"`
		Uptime     uint64 `json:"uptime"`
		Goroutines int    `json:"goroutines"`
		Mem        uint64 `json:"mem"`
	} `json:"appStats"`
}

// ServerService collects host and process status for the admin endpoint.
type ServerService struct{}

func (s *ServerService) GetStatus() *Status {
	status := &Status{}

	if percents, err := cpu.Percent(0, false); err != nil {
		logger.Warning("get cpu percent failed:", err)
	} else if len(percents) > 0 {
		status.Cpu = percents[0]
	}
	if cores, err := cpu.Counts(false); err != nil {
		logger.Warning("get cpu cores failed:", err)
	} else {
		status.CpuCores = cores
	}

	if memInfo, err := mem.VirtualMemory(); err != nil {
		logger.Warning("get virtual memory failed:", err)
	} else {
		status.Mem.Current = memInfo.Used
		status.Mem.Total = memInfo.Total
	}

	if uptime, err := host.Uptime(); err != nil {
		logger.Warning("get uptime failed:", err)
	} else {
		status.Uptime = uptime
	}

	var rtm runtime.MemStats
	runtime.ReadMemStats(&rtm)
	status.AppStats.Version = config.GetVersion()
	status.AppStats.Uptime = uint64(time.Since(appStart).Seconds())
	status.AppStats.Goroutines = runtime.NumGoroutine()
	status.AppStats.Mem = rtm.Sys

	return status
}
