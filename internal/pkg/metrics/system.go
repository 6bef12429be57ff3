package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

var (
	hostCPUPercent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "Host CPU usage percentage",
		},
	)

	hostMemoryUsed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_bytes",
			Help: "Host memory in use in bytes",
		},
	)

	processHeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_memory_usage_bytes",
			Help: "Go heap bytes allocated by the process",
		},
	)

	processGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_goroutines",
			Help: "Number of live goroutines",
		},
	)
)

// StartSystemMetricsCollector samples host and process gauges every five
// seconds for the /metrics endpoint. The goroutine runs for the process
// lifetime.
func StartSystemMetricsCollector() {
	go func() {
		collect()

		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			collect()
		}
	}()
}

func collect() {
	// cpu.Percent blocks for the sample window.
	if percent, err := cpu.Percent(time.Second, false); err == nil && len(percent) > 0 {
		hostCPUPercent.Set(percent[0])
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		hostMemoryUsed.Set(float64(vm.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	processHeapAlloc.Set(float64(m.Alloc))

	processGoroutines.Set(float64(runtime.NumGoroutine()))
}
