package driver

import (
	"sync"

	"github.com/go-sif/sumagg"
	"github.com/go-sif/sumagg/accumulators"
)

// groupTable holds one Sum per group key seen by a task. It is owned by a single task at a time.
type groupTable struct {
	eval sumagg.Evaluator
	sums map[string]*accumulators.Sum
	keys [][]byte // insertion order
	free []*accumulators.Sum
}

func newGroupTable(eval sumagg.Evaluator) *groupTable {
	return &groupTable{
		eval: eval,
		sums: make(map[string]*accumulators.Sum),
	}
}

// get returns the Sum for a group key, creating (or recycling) one if necessary
func (t *groupTable) get(key []byte) *accumulators.Sum {
	if s, ok := t.sums[string(key)]; ok {
		return s
	}
	var s *accumulators.Sum
	if n := len(t.free); n > 0 {
		s = t.free[n-1]
		t.free[n-1] = nil
		t.free = t.free[:n-1]
	} else {
		s = accumulators.NewSum(t.eval)
	}
	t.sums[string(key)] = s
	t.keys = append(t.keys, key)
	return s
}

func (t *groupTable) numGroups() int {
	return len(t.keys)
}

// forEach visits groups in the order they were first seen
func (t *groupTable) forEach(fn func(key []byte, s *accumulators.Sum) error) error {
	for _, key := range t.keys {
		if err := fn(key, t.sums[string(key)]); err != nil {
			return err
		}
	}
	return nil
}

// reset empties every Sum and keeps them for reuse by later groups
func (t *groupTable) reset() error {
	for _, key := range t.keys {
		s := t.sums[string(key)]
		if err := s.Reset(); err != nil {
			return err
		}
		t.free = append(t.free, s)
		delete(t.sums, string(key))
	}
	t.keys = t.keys[:0]
	return nil
}

// tablePool recycles groupTables (and their buffers) across the tasks of a Stage
type tablePool struct {
	lock sync.Mutex
	eval sumagg.Evaluator
	free []*groupTable
}

func newTablePool(eval sumagg.Evaluator) *tablePool {
	return &tablePool{eval: eval}
}

func (p *tablePool) acquire() *groupTable {
	p.lock.Lock()
	defer p.lock.Unlock()
	if n := len(p.free); n > 0 {
		t := p.free[n-1]
		p.free = p.free[:n-1]
		return t
	}
	return newGroupTable(p.eval)
}

// release resets a table and makes it available to other tasks
func (p *tablePool) release(t *groupTable) error {
	if err := t.reset(); err != nil {
		return err
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.free = append(p.free, t)
	return nil
}
