package network

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the YAML representation of a Network.
type document struct {
	Nodes []nodeDoc `yaml:"nodes"`
}

type nodeDoc struct {
	ID    int       `yaml:"id"`
	X     float64   `yaml:"x"`
	Y     float64   `yaml:"y"`
	Edges []edgeDoc `yaml:"edges,omitempty"`
}

type edgeDoc struct {
	To     int     `yaml:"to"`
	Length float64 `yaml:"length"`
}

// Decode reads a YAML network document from r and validates it with New.
func Decode(r io.Reader) (*Network, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidGraph)
		}
		return nil, fmt.Errorf("network: decode yaml: %w", err)
	}

	nodes := make([]Node, len(doc.Nodes))
	for i, nd := range doc.Nodes {
		nodes[i] = Node{ID: nd.ID, Loc: Point{X: nd.X, Y: nd.Y}}
		if len(nd.Edges) > 0 {
			nodes[i].Edges = make([]Edge, len(nd.Edges))
			for j, e := range nd.Edges {
				nodes[i].Edges[j] = Edge{From: nd.ID, To: e.To, Length: e.Length}
			}
		}
	}

	return New(nodes)
}

// Encode writes n to w as a YAML network document.
func Encode(w io.Writer, n *Network) error {
	if n == nil {
		return fmt.Errorf("%w: nil network", ErrInvalidGraph)
	}
	doc := document{Nodes: make([]nodeDoc, len(n.nodes))}
	for i, nd := range n.nodes {
		doc.Nodes[i] = nodeDoc{ID: nd.ID, X: nd.Loc.X, Y: nd.Loc.Y}
		for _, e := range nd.Edges {
			doc.Nodes[i].Edges = append(doc.Nodes[i].Edges, edgeDoc{To: e.To, Length: e.Length})
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("network: encode yaml: %w", err)
	}

	return enc.Close()
}

// LoadFile decodes the YAML network stored at path.
func LoadFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("network: open %s: %w", path, err)
	}
	defer f.Close()

	n, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("network: load %s: %w", path, err)
	}

	return n, nil
}
