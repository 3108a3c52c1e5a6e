package job

import (
	"sync"

	"github.com/rmohr/featgraph/pkg/graph"
	"github.com/rmohr/featgraph/pkg/model"
)

// Sink receives the finished graph of a job.
type Sink interface {
	Publish(g *graph.Graph) error
}

// MemorySink keeps the last published graph. Before the first publication
// it holds the empty graph.
type MemorySink struct {
	lock  sync.RWMutex
	graph *graph.Graph
}

func NewMemorySink() *MemorySink {
	return &MemorySink{graph: graph.New(nil)}
}

func (m *MemorySink) Publish(g *graph.Graph) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.graph = g
	return nil
}

func (m *MemorySink) Graph() *graph.Graph {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.graph
}

// FileSink writes the graph document of model Name to Path.
type FileSink struct {
	Name string
	Path string
}

func (f *FileSink) Publish(g *graph.Graph) error {
	return model.WriteGraphFile(f.Path, g.ToDocument(f.Name))
}
