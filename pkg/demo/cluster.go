package demo

import (
	"math/rand/v2"
	"sync"
	"time"
)

const (
	defaultSamples = 24
	defaultStep    = 5 * time.Minute
)

// Sample is a single time-series point
type Sample struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// ClusterInfo is static cluster metadata
type ClusterInfo struct {
	Name       string `json:"name"`
	Version    string `json:"version"`
	Provider   string `json:"provider"`
	Region     string `json:"region"`
	Nodes      int    `json:"nodes"`
	Namespaces int    `json:"namespaces"`
	Pods       int    `json:"pods"`
	Agents     int    `json:"agents"`
}

// ClusterSnapshot is the cluster dashboard payload
type ClusterSnapshot struct {
	Cluster  ClusterInfo `json:"cluster"`
	CPU      []Sample    `json:"cpu"`
	Memory   []Sample    `json:"mem"`
	Requests []Sample    `json:"requests"`
}

// RandSource is the random source used by the generator
type RandSource interface {
	Float64() float64
}

// ClusterGenerator builds cluster snapshots with random metrics
type ClusterGenerator struct {
	Rand    RandSource       // random source, defaults to a time seeded one
	Now     func() time.Time // clock, defaults to time.Now
	Samples int              // points per series, defaults to 24
	Step    time.Duration    // distance between points, defaults to 5m

	once sync.Once
	mu   sync.Mutex // rand sources are not safe for concurrent use
}

// Snapshot generates a new snapshot. Each series has Samples points, oldest first,
// the last one at Now truncated to the step.
func (g *ClusterGenerator) Snapshot() ClusterSnapshot {
	g.once.Do(g.setDefaults)

	end := g.Now().UTC().Truncate(g.Step)
	g.mu.Lock()
	defer g.mu.Unlock()
	return ClusterSnapshot{
		Cluster:  clusterInfo(),
		CPU:      g.series(end, 15, 85),
		Memory:   g.series(end, 30, 90),
		Requests: g.series(end, 0, 1000),
	}
}

func (g *ClusterGenerator) setDefaults() {
	if g.Rand == nil {
		g.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)) //nolint:gosec // demo data
	}
	if g.Now == nil {
		g.Now = time.Now
	}
	if g.Samples <= 0 {
		g.Samples = defaultSamples
	}
	if g.Step <= 0 {
		g.Step = defaultStep
	}
}

// series makes a bounded random walk in [lo, hi]
func (g *ClusterGenerator) series(end time.Time, lo, hi float64) []Sample {
	res := make([]Sample, g.Samples)
	span := hi - lo
	val := lo + g.Rand.Float64()*span
	for i := range res {
		val += (g.Rand.Float64() - 0.5) * span * 0.2
		val = min(max(val, lo), hi)
		res[i] = Sample{
			Timestamp: end.Add(-time.Duration(g.Samples-1-i) * g.Step),
			Value:     float64(int(val*100)) / 100,
		}
	}
	return res
}

func clusterInfo() ClusterInfo {
	return ClusterInfo{
		Name:       "kagent-demo",
		Version:    "v1.31.2",
		Provider:   "kind",
		Region:     "local",
		Nodes:      3,
		Namespaces: 12,
		Pods:       87,
		Agents:     len(Agents()),
	}
}
