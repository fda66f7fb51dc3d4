package config_test

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netroute/config"
	"github.com/katalvlaran/netroute/pq"
)

const randomCfg = `version: v1
network:
  random:
    nodes: 25
    seed: 3
router:
  default_variant: array
  inf_edge_threshold: 500
`

const fileNet = `nodes:
  - id: 0
    x: 0
    y: 0
    edges:
      - {to: 1, length: 4}
  - id: 1
    x: 4
    y: 0
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestLoader_DefaultsAndRandomNetwork(t *testing.T) {
	dir := t.TempDir()
	l, err := config.NewLoader(writeFile(t, dir, "netroute.yaml", randomCfg))
	require.NoError(t, err)

	cfg := l.Config()
	assert.Equal(t, pq.Array, cfg.Router.DefaultVariant)
	assert.Equal(t, config.DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, config.DefaultQueryTimeoutMs*time.Millisecond, cfg.Router.QueryTimeout())
	assert.Equal(t, config.DefaultRandomDegree, cfg.Network.Random.Degree)
	assert.Equal(t, config.DefaultRandomExtent, cfg.Network.Random.Extent)
	assert.Len(t, cfg.Router.Options(), 1)

	net, err := l.Network()
	require.NoError(t, err)
	assert.Equal(t, 25, net.Len())
	assert.Equal(t, 75, net.EdgeCount())
}

func TestLoader_FileNetworkRelativePath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "net.yaml", fileNet)
	l, err := config.NewLoader(writeFile(t, dir, "netroute.yaml", "version: v1\nnetwork:\n  file: net.yaml\n"))
	require.NoError(t, err)
	assert.Equal(t, pq.Heap, l.Config().Router.DefaultVariant)
	assert.Empty(t, l.Config().Router.Options())

	net, err := l.Network()
	require.NoError(t, err)
	assert.Equal(t, 2, net.Len())
}

func TestLoader_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"no version":      "network:\n  random: {nodes: 3}\n",
		"no network":      "version: v1\n",
		"both sources":    "version: v1\nnetwork:\n  file: x.yaml\n  random: {nodes: 3}\n",
		"zero nodes":      "version: v1\nnetwork:\n  random: {nodes: 0}\n",
		"negative limits": "version: v1\nnetwork:\n  random: {nodes: 3}\nrouter:\n  max_distance: -1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.NewLoader(writeFile(t, dir, "bad.yaml", body))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.NewLoader(writeFile(t, dir, "variant.yaml", "version: v1\nrouter:\n  default_variant: fibonacci\n"))
	assert.ErrorIs(t, err, pq.ErrUnknownVariant)

	_, err = config.NewLoader(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_UnknownVariant(t *testing.T) {
	cfg := &config.Config{
		Version: "v1",
		Network: config.NetworkConf{Random: &config.RandomConf{Nodes: 2}},
		Router:  config.RouterConf{DefaultVariant: pq.Variant(7)},
	}
	assert.ErrorIs(t, config.Validate(cfg), config.ErrInvalidConfig)
}

func TestLoader_ReloadKeepsOldOnError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "netroute.yaml", randomCfg)
	l, err := config.NewLoader(path)
	require.NoError(t, err)

	var calls atomic.Int32
	l.OnChange(func(*config.Config) { calls.Add(1) })

	writeFile(t, dir, "netroute.yaml", "version: v1\n")
	_, err = l.Reload()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Equal(t, 25, l.Config().Network.Random.Nodes)
	assert.Equal(t, int32(0), calls.Load())

	writeFile(t, dir, "netroute.yaml", "version: v2\nnetwork:\n  random: {nodes: 9}\n")
	cfg, err := l.Reload()
	require.NoError(t, err)
	assert.Equal(t, "v2", cfg.Version)
	assert.Equal(t, int32(1), calls.Load())
}

func TestLoader_WatchReloadsOnNetworkChange(t *testing.T) {
	dir := t.TempDir()
	netPath := writeFile(t, dir, "net.yaml", fileNet)
	l, err := config.NewLoader(writeFile(t, dir, "netroute.yaml", "version: v1\nnetwork:\n  file: net.yaml\n"))
	require.NoError(t, err)

	var calls atomic.Int32
	l.OnChange(func(*config.Config) { calls.Add(1) })
	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(netPath, []byte(fileNet), 0o600))
	assert.Eventually(t, func() bool { return calls.Load() > 0 }, 5*time.Second, 20*time.Millisecond)
}

func TestLoader_WatchFollowsNetworkIntoNewDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "net.yaml", fileNet)
	cfgPath := writeFile(t, dir, "netroute.yaml", "version: v1\nnetwork:\n  file: net.yaml\n")
	other := filepath.Join(dir, "other")
	require.NoError(t, os.Mkdir(other, 0o700))
	otherNet := writeFile(t, other, "net.yaml", fileNet)

	l, err := config.NewLoader(cfgPath)
	require.NoError(t, err)

	var nodes atomic.Int32
	l.OnChange(func(*config.Config) {
		if net, err := l.Network(); err == nil {
			nodes.Store(int32(net.Len()))
		}
	})
	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	writeFile(t, dir, "netroute.yaml", "version: v2\nnetwork:\n  file: other/net.yaml\n")
	assert.Eventually(t, func() bool {
		return l.Config().Network.File == "other/net.yaml" && nodes.Load() == 2
	}, 5*time.Second, 20*time.Millisecond)

	const threeNodes = `nodes:
  - {id: 0, x: 0, y: 0, edges: [{to: 2, length: 1}]}
  - {id: 1, x: 1, y: 0}
  - {id: 2, x: 2, y: 0}
`
	require.NoError(t, os.WriteFile(otherNet, []byte(threeNodes), 0o600))
	assert.Eventually(t, func() bool { return nodes.Load() == 3 }, 5*time.Second, 20*time.Millisecond)
}

func TestLoader_ShippedConfig(t *testing.T) {
	l, err := config.NewLoader(filepath.Join("..", "configs", "netroute.yaml"))
	require.NoError(t, err)
	assert.Equal(t, pq.Heap, l.Config().Router.DefaultVariant)

	net, err := l.Network()
	require.NoError(t, err)
	assert.Equal(t, 4, net.Len())
	assert.Equal(t, 5, net.EdgeCount())
}
