package benchmark

import (
	"github.com/prometheus/procfs"
)

// ProcessStats describes the benchmark process around the parallel run.
type ProcessStats struct {
	CPUSeconds     float64 `json:"cpuSeconds" yaml:"cpuSeconds"`
	RSSBeforeBytes int     `json:"rssBeforeBytes" yaml:"rssBeforeBytes"`
	RSSAfterBytes  int     `json:"rssAfterBytes" yaml:"rssAfterBytes"`
}

type processSample struct {
	cpuSeconds float64
	rssBytes   int
}

// sampleProcess reads CPU time and resident memory of the current process
// from /proc. It fails on systems without procfs.
func sampleProcess() (processSample, error) {
	proc, err := procfs.Self()
	if err != nil {
		return processSample{}, err
	}
	stat, err := proc.Stat()
	if err != nil {
		return processSample{}, err
	}
	return processSample{
		cpuSeconds: stat.CPUTime(),
		rssBytes:   stat.ResidentMemory(),
	}, nil
}

func (s processSample) delta(after processSample) *ProcessStats {
	return &ProcessStats{
		CPUSeconds:     after.cpuSeconds - s.cpuSeconds,
		RSSBeforeBytes: s.rssBytes,
		RSSAfterBytes:  after.rssBytes,
	}
}
