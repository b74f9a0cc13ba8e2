package memo

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bassosimone/runtimex"
	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// Table is a bounded, sharded store of values keyed by argument tuples.
//
// Each shard keeps two generations of tries. Stores go to the head generation;
// when it holds MaxSize entries the generations rotate and the older one is dropped.
// Loads look in the head generation first, then in the previous one.
type Table[O any] struct {
	shards []*shard[O]
	logger *zap.Logger
}

func NewTable[O any](config TableConfig) *Table[O] {
	config = config.normalize()
	runtimex.Assert(config.MaxSize > 0)

	shards := make([]*shard[O], config.NumShards)
	for i := range shards {
		shards[i] = &shard[O]{
			gens:    [2]*node[O]{newNode[O](), newNode[O]()},
			maxSize: config.MaxSize,
		}
	}
	return &Table[O]{shards: shards, logger: config.Logger}
}

func (t *Table[O]) Load(keys []ComparableOrString) (O, bool) {
	return t.shardOf(keys).load(keys)
}

func (t *Table[O]) Store(keys []ComparableOrString, value O) {
	s := t.shardOf(keys)
	if rotated := s.store(keys, value); rotated {
		t.logger.Debug("memo table generation rotated", zap.Uint32("max_size", s.maxSize))
	}
}

func (t *Table[O]) shardOf(keys []ComparableOrString) *shard[O] {
	if len(keys) == 0 {
		panic("memo: empty keys")
	}
	switch n := len(t.shards); n {
	case 1:
		return t.shards[0]
	default:
		return t.shards[xxhash.Sum64String(shardKey(keys))%uint64(n)]
	}
}

func shardKey(keys []ComparableOrString) string {
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%T:%v\x00", k, k)
	}
	return sb.String()
}

type shard[O any] struct {
	mu      sync.Mutex
	gens    [2]*node[O]
	headIdx int
	size    uint32
	maxSize uint32
}

func (s *shard[O]) load(keys []ComparableOrString) (O, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.gens[s.headIdx].lookup(keys); ok {
		return v, true
	}
	return s.gens[1-s.headIdx].lookup(keys)
}

func (s *shard[O]) store(keys []ComparableOrString, value O) (rotated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.size >= s.maxSize {
		s.headIdx = 1 - s.headIdx
		s.gens[s.headIdx] = newNode[O]()
		s.size = 0
		rotated = true
	}
	if s.gens[s.headIdx].insert(keys, value) {
		s.size++
	}
	return
}

// node is one level of the trie; each argument position descends one level.
type node[O any] struct {
	children map[ComparableOrString]*node[O]
	value    O
	set      bool
}

func newNode[O any]() *node[O] {
	return &node[O]{children: make(map[ComparableOrString]*node[O])}
}

func (n *node[O]) lookup(keys []ComparableOrString) (O, bool) {
	cur := n
	for _, k := range keys {
		next, ok := cur.children[k]
		if !ok {
			var zero O
			return zero, false
		}
		cur = next
	}
	return cur.value, cur.set
}

// insert reports whether a new entry was added.
func (n *node[O]) insert(keys []ComparableOrString, value O) bool {
	cur := n
	for _, k := range keys {
		next, ok := cur.children[k]
		if !ok {
			next = newNode[O]()
			cur.children[k] = next
		}
		cur = next
	}
	added := !cur.set
	cur.value, cur.set = value, true
	return added
}
