package rdf

import (
	"fmt"
	"sync/atomic"

	"github.com/cayleygraph/quad"
)

var bnodeCounter atomic.Uint64

// NewBlankNode allocates a fresh blank node. No two allocations compare
// equal, even with the same label. The label is a readability hint only.
func NewBlankNode(label string) quad.BNode {
	if label == "" {
		label = "b"
	}
	n := bnodeCounter.Add(1)
	return quad.BNode(fmt.Sprintf("%s%d", label, n))
}
