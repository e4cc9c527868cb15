package demo

import (
	"encoding/json"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgents(t *testing.T) {
	agents := Agents()
	require.NotEmpty(t, agents)

	seen := map[string]bool{}
	for _, a := range agents {
		assert.False(t, seen[a.Ref()], "duplicate agent %s", a.Ref())
		seen[a.Ref()] = true
		assert.NotEmpty(t, a.Description)
	}
	assert.True(t, seen["kagent/multiagent"])
}

func TestFindAgent(t *testing.T) {
	a, ok := FindAgent("kagent", "k8s-agent")
	require.True(t, ok)
	assert.Equal(t, "kagent/k8s-agent", a.Ref())

	_, ok = FindAgent("kagent", "nope")
	assert.False(t, ok)
}

func TestIsMultiAgent(t *testing.T) {
	assert.True(t, IsMultiAgent("kagent", "multiagent"))
	assert.False(t, IsMultiAgent("kagent", "k8s-agent"))
	assert.False(t, IsMultiAgent("other", "multiagent"))
	assert.False(t, IsMultiAgent("Kagent", "multiagent"))
}

func TestOrganizations(t *testing.T) {
	orgs := Organizations()
	require.Len(t, orgs.Organizations, 3)

	found := false
	for _, o := range orgs.Organizations {
		if o.ID == orgs.CurrentOrganizationID {
			found = true
		}
	}
	assert.True(t, found, "current organization must be in the list")

	data, err := json.Marshal(orgs)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"currentOrganizationId":"org-1"`)
}

func TestClusterGenerator_Snapshot(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 7, 30, 0, time.UTC)
	g := &ClusterGenerator{
		Rand: rand.New(rand.NewPCG(1, 2)),
		Now:  func() time.Time { return now },
	}

	snap := g.Snapshot()
	assert.Equal(t, "kagent-demo", snap.Cluster.Name)
	assert.Equal(t, len(Agents()), snap.Cluster.Agents)

	series := map[string]struct {
		data   []Sample
		lo, hi float64
	}{
		"cpu":      {snap.CPU, 0, 100},
		"mem":      {snap.Memory, 0, 100},
		"requests": {snap.Requests, 0, 1000},
	}
	for name, s := range series {
		t.Run(name, func(t *testing.T) {
			require.Len(t, s.data, defaultSamples)
			assert.Equal(t, time.Date(2025, 6, 1, 12, 5, 0, 0, time.UTC), s.data[len(s.data)-1].Timestamp)
			for i, p := range s.data {
				assert.GreaterOrEqual(t, p.Value, s.lo)
				assert.LessOrEqual(t, p.Value, s.hi)
				if i > 0 {
					assert.Equal(t, defaultStep, p.Timestamp.Sub(s.data[i-1].Timestamp))
				}
			}
		})
	}
}

func TestClusterGenerator_Deterministic(t *testing.T) {
	now := func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	g1 := &ClusterGenerator{Rand: rand.New(rand.NewPCG(42, 42)), Now: now, Samples: 10, Step: time.Minute}
	g2 := &ClusterGenerator{Rand: rand.New(rand.NewPCG(42, 42)), Now: now, Samples: 10, Step: time.Minute}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	assert.Equal(t, s1, s2)
	assert.Len(t, s1.CPU, 10)

	// next call draws new values
	assert.NotEqual(t, s1.CPU, g1.Snapshot().CPU)
}

func TestClusterGenerator_Defaults(t *testing.T) {
	g := &ClusterGenerator{}
	snap := g.Snapshot()
	assert.Len(t, snap.Requests, defaultSamples)
	assert.WithinDuration(t, time.Now(), snap.Requests[defaultSamples-1].Timestamp, defaultStep+time.Second)
}

func TestClusterGenerator_Concurrent(t *testing.T) {
	g := &ClusterGenerator{Samples: 5}
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, g.Snapshot().CPU, 5)
		}()
	}
	wg.Wait()
}
