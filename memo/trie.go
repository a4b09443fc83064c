package memo

import (
	"sync"
	"sync/atomic"
)

// Trie is a bounded in-process Store.
//
// Values live in one of two generations of nested sync.Maps. When the head
// generation holds maxSize entries the other one is cleared and becomes the
// head, so a Trie never holds more than 2*maxSize values and recently stored
// values survive one rotation.
type Trie[V any] struct {
	mu      sync.Mutex
	memos   [2]*sync.Map
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

// NewTrie panics if maxSize is 0.
func NewTrie[V any](maxSize uint32) *Trie[V] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &Trie[V]{
		memos:   [2]*sync.Map{{}, {}},
		maxSize: maxSize,
	}
}

func (t *Trie[V]) Load(keys []Key) (V, bool) {
	headIdx := t.headIdx.Load()
	if v, ok := lookup[V](t.memos[headIdx], keys); ok {
		return v, true
	}
	return lookup[V](t.memos[1-headIdx], keys)
}

func (t *Trie[V]) Store(keys []Key, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()

	headIdx := t.headIdx.Load()
	if _, ok := lookup[V](t.memos[headIdx], keys); !ok && t.size.Load() >= t.maxSize {
		headIdx = 1 - headIdx
		t.memos[headIdx].Clear()
		t.headIdx.Store(headIdx)
		t.size.Store(0)
	}
	m, k := traverse(t.memos[headIdx], keys)
	if _, loaded := m.Swap(k, value); !loaded {
		t.size.Add(1)
	}
}

// lookup walks keys without creating intermediate levels.
func lookup[V any](targetMap *sync.Map, keys []Key) (V, bool) {
	var zero V
	if len(keys) == 0 {
		panic("memo: empty keys")
	}
	for _, k := range keys[:len(keys)-1] {
		next, ok := targetMap.Load(k)
		if !ok {
			return zero, false
		}
		targetMap = next.(*sync.Map)
	}
	v, ok := targetMap.Load(keys[len(keys)-1])
	if !ok {
		return zero, false
	}
	return v.(V), true
}

// traverse walks keys, creating intermediate levels, and returns the map and
// key holding the leaf.
func traverse(targetMap *sync.Map, keys []Key) (*sync.Map, Key) {
	length := len(keys)
	if length == 0 {
		panic("memo: empty keys")
	}
	for _, k := range keys[:length-1] {
		next, _ := targetMap.LoadOrStore(k, &sync.Map{})
		targetMap = next.(*sync.Map)
	}
	return targetMap, keys[length-1]
}
