package storage

import (
	"maps"
	"slices"
	"sync"

	enc "github.com/named-data/ndnx/std/encoding"
	"github.com/named-data/ndnx/std/ndn"
)

// MemoryStore is a name trie held in memory.
// Children are ordered by their component encoding, the same order the
// persistent stores use for their keys.
type MemoryStore struct {
	// root of the store
	root *memoryStoreNode
	// thread safety
	mutex sync.RWMutex

	// active transaction
	tx *memoryStoreNode
	// transaction mutex
	txMutex sync.Mutex
}

type memoryStoreNode struct {
	// children by component encoding
	children map[string]*memoryStoreNode
	// ContentObject wire
	wire []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		root: &memoryStoreNode{},
	}
}

func (s *MemoryStore) String() string {
	return "memory-store"
}

func (s *MemoryStore) Get(name enc.Name, prefix bool) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if node := s.root.find(name); node != nil {
		if prefix {
			if last := node.findLast(); last != nil {
				return last.wire, nil
			}
		}
		return node.wire, nil
	}
	return nil, nil
}

func (s *MemoryStore) Scan(prefix enc.Name, reverse bool, f func(wire []byte) bool) error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if node := s.root.find(prefix); node != nil {
		node.scan(reverse, f)
	}
	return nil
}

func (s *MemoryStore) Put(name enc.Name, wire []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	root := s.root
	if s.tx != nil {
		root = s.tx
	}

	root.insert(name, wire)
	return nil
}

func (s *MemoryStore) Remove(name enc.Name) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.root.remove(name, false)
	return nil
}

func (s *MemoryStore) RemovePrefix(prefix enc.Name) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.root.remove(prefix, true)
	return nil
}

func (s *MemoryStore) Begin() (ndn.Store, error) {
	s.txMutex.Lock()
	s.tx = &memoryStoreNode{}
	return s, nil
}

func (s *MemoryStore) Commit() error {
	defer s.txMutex.Unlock()
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.root.merge(s.tx)
	s.tx = nil
	return nil
}

func (s *MemoryStore) Rollback() error {
	defer s.txMutex.Unlock()
	s.tx = nil
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// MemSize returns the total size of the stored wires.
func (s *MemoryStore) MemSize() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	size := 0
	s.root.walk(func(n *memoryStoreNode) { size += len(n.wire) })
	return size
}

func compKey(c enc.Component) string {
	return string(c.Bytes())
}

func (n *memoryStoreNode) find(name enc.Name) *memoryStoreNode {
	if len(name) == 0 {
		return n
	}
	if child := n.children[compKey(name[0])]; child != nil {
		return child.find(name[1:])
	}
	return nil
}

// findLast returns the node with the greatest key in the subtree that holds
// a wire, or nil if there is none. A node sorts before its children.
func (n *memoryStoreNode) findLast() *memoryStoreNode {
	keys := slices.Sorted(maps.Keys(n.children))
	for i := len(keys) - 1; i >= 0; i-- {
		if sub := n.children[keys[i]].findLast(); sub != nil {
			return sub
		}
	}
	if n.wire != nil {
		return n
	}
	return nil
}

// scan visits the wires of the subtree in key order and returns false once
// f has asked to stop.
func (n *memoryStoreNode) scan(reverse bool, f func(wire []byte) bool) bool {
	if !reverse && n.wire != nil && !f(n.wire) {
		return false
	}
	keys := slices.Sorted(maps.Keys(n.children))
	if reverse {
		slices.Reverse(keys)
	}
	for _, k := range keys {
		if !n.children[k].scan(reverse, f) {
			return false
		}
	}
	if reverse && n.wire != nil && !f(n.wire) {
		return false
	}
	return true
}

func (n *memoryStoreNode) insert(name enc.Name, wire []byte) {
	if len(name) == 0 {
		n.wire = wire
		return
	}

	if n.children == nil {
		n.children = make(map[string]*memoryStoreNode)
	}

	key := compKey(name[0])
	child := n.children[key]
	if child == nil {
		child = &memoryStoreNode{}
		n.children[key] = child
	}
	child.insert(name[1:], wire)
}

// remove returns true if the parent should prune this node.
func (n *memoryStoreNode) remove(name enc.Name, prefix bool) bool {
	if len(name) == 0 {
		n.wire = nil
		if prefix {
			n.children = nil
		}
		return len(n.children) == 0
	}

	key := compKey(name[0])
	if child := n.children[key]; child != nil {
		if child.remove(name[1:], prefix) {
			delete(n.children, key)
		}
	}

	return n.wire == nil && len(n.children) == 0
}

func (n *memoryStoreNode) merge(tx *memoryStoreNode) {
	if tx.wire != nil {
		n.wire = tx.wire
	}

	for key, child := range tx.children {
		if n.children == nil {
			n.children = make(map[string]*memoryStoreNode)
		}

		if nchild := n.children[key]; nchild != nil {
			nchild.merge(child)
		} else {
			n.children[key] = child
		}
	}
}

func (n *memoryStoreNode) walk(f func(*memoryStoreNode)) {
	f(n)
	for _, child := range n.children {
		child.walk(f)
	}
}
