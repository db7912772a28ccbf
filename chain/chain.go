// Package chain implements a doubly linked list with stable node handles.
//
// It is the collision-chain collaborator for the dict package: insertion is
// always at the head and returns the new node, removal takes a previously
// obtained node and runs in O(1), and an existing node can be relinked into
// another list without copying its value.
package chain

// A Node holds one value of a List. The pointer identity of a Node is stable
// for its whole lifetime: relinking it into another list via PushNode keeps
// the same Node (and the same Value) alive.
type Node[T any] struct {
	Value T
	prev  *Node[T]
	next  *Node[T]
}

// Next returns the node after n, or nil at the end of the list.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// A List is a doubly linked sequence of nodes. The zero value is not usable;
// call New.
type List[T any] struct {
	head *Node[T]
	len  uint64
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// PushFront inserts a new node holding v at the head of the list and returns
// it.
func (l *List[T]) PushFront(v T) *Node[T] {
	n := &Node[T]{Value: v}
	l.PushNode(n)
	return n
}

// PushNode links an existing node at the head of the list. The node must not
// still be linked into a list that will be used again; PushNode overwrites
// its neighbor pointers without unlinking it first.
func (l *List[T]) PushNode(n *Node[T]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	l.len++
}

// Remove unlinks n from the list. The node must currently be linked into this
// list. Its neighbor pointers are cleared, so a traversal parked on n stops
// rather than walking into the list it was removed from.
func (l *List[T]) Remove(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
	l.len--
}

// Front returns the head node, or nil if the list is empty.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

func (l *List[T]) Empty() bool {
	return l.head == nil
}

func (l *List[T]) Len() uint64 {
	return l.len
}
