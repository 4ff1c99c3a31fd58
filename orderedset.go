package listbench

import "math/rand/v2"

type node struct {
	value int
	next  *node
}

// OrderedSet is a sorted singly linked list of unique integers.
//
// OrderedSet does no locking of its own. Member may run concurrently with
// other Member calls; Insert and Delete need exclusive access.
type OrderedSet struct {
	head *node
	size int
}

// NewOrderedSet returns an empty set.
func NewOrderedSet() *OrderedSet { return new(OrderedSet) }

// Member reports whether v is in the set.
func (s *OrderedSet) Member(v int) bool {
	cur := s.head
	for cur != nil && cur.value < v {
		cur = cur.next
	}
	return cur != nil && cur.value == v
}

// Insert adds v, keeping the chain ascending. It reports false, and leaves
// the set unchanged, if v is already present.
func (s *OrderedSet) Insert(v int) bool {
	var pred *node
	cur := s.head
	for cur != nil && cur.value < v {
		pred, cur = cur, cur.next
	}
	if cur != nil && cur.value == v {
		return false
	}

	n := &node{value: v, next: cur}
	if pred == nil {
		s.head = n
	} else {
		pred.next = n
	}
	s.size++
	return true
}

// Delete removes v. It reports false if v was not present.
func (s *OrderedSet) Delete(v int) bool {
	var pred *node
	cur := s.head
	for cur != nil && cur.value < v {
		pred, cur = cur, cur.next
	}
	if cur == nil || cur.value != v {
		return false
	}

	if pred == nil {
		s.head = cur.next
	} else {
		pred.next = cur.next
	}
	cur.next = nil
	s.size--
	return true
}

// Apply dispatches op to Member, Insert or Delete.
func (s *OrderedSet) Apply(op Op, v int) bool {
	switch op {
	case OpMember:
		return s.Member(v)
	case OpInsert:
		return s.Insert(v)
	case OpDelete:
		return s.Delete(v)
	}
	return false
}

// Populate inserts uniformly random values in [0, ValueRange) until n new
// values have been accepted. Duplicate draws are retried.
//
// n must not exceed ValueRange minus the current size, or Populate never
// returns; Config.Validate enforces this for harness runs.
func (s *OrderedSet) Populate(n int, rng *rand.Rand) {
	for added := 0; added < n; {
		if s.Insert(rng.IntN(ValueRange)) {
			added++
		}
	}
}

// Len returns the number of values in the set.
func (s *OrderedSet) Len() int { return s.size }

// Values returns the contents in ascending order.
func (s *OrderedSet) Values() []int {
	out := make([]int, 0, s.size)
	for cur := s.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}
	return out
}

// Sorted reports whether the chain is strictly ascending and its length
// matches Len.
func (s *OrderedSet) Sorted() bool {
	count := 0
	for cur := s.head; cur != nil; cur = cur.next {
		count++
		if cur.next != nil && cur.value >= cur.next.value {
			return false
		}
	}
	return count == s.size
}
