// Package netroute computes single-source shortest paths over directed,
// non-negatively weighted road networks and serves them over HTTP.
//
// The module is organized into small packages:
//
//	pq/          Array and Heap priority queues behind one Queue interface
//	network/     immutable Network type, Builder, YAML codec, random generator
//	dijkstra/    Run, Tree (distance/predecessor tables), ShortestPath, Solver
//	metrics/     Prometheus collectors for computations and reloads
//	config/      YAML config with validation and fsnotify hot-reload
//	internal/api HTTP handlers (/v1/route, /v1/network, /healthz, /readyz, /metrics)
//	cmd/netroute compare, gen and serve subcommands
//
// Quick start:
//
//	net, _ := network.Random(1000, network.WithSeed(7))
//	tree, _ := dijkstra.Run(net, 0, dijkstra.WithVariant(pq.Array))
//	path, _ := tree.ShortestPath(42)
//	fmt.Println(path.Cost, len(path.Hops))
//
// Both queue variants extract the lowest id among equal keys, so they
// produce identical distance and predecessor tables.
package netroute
