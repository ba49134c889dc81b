// Package frontier provides the search-tree node and frontier containers
// shared by the graph and maze solvers.
package frontier

import "errors"

// ErrEmptyFrontier is returned when Remove is called on an empty frontier.
var ErrEmptyFrontier = errors.New("empty frontier")

// Node is a search-tree node. It holds a state, the action taken from the
// parent to reach it, and a pointer back to the parent. Nodes are immutable
// once created; the chain of parent pointers is what path reconstruction
// walks after the goal is found.
type Node[S comparable, A any] struct {
	State  S
	Action A
	Parent *Node[S, A]
}

// Root creates a node with no parent and the zero action.
func Root[S comparable, A any](state S) *Node[S, A] {
	return &Node[S, A]{State: state}
}

// Child creates a node for the given state reached from n via action.
func (n *Node[S, A]) Child(state S, action A) *Node[S, A] {
	return &Node[S, A]{State: state, Action: action, Parent: n}
}

// Path returns the nodes from the root down to n, in order. The root is
// included as the first element.
func (n *Node[S, A]) Path() []*Node[S, A] {
	var path []*Node[S, A]
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Frontier is the set of nodes awaiting expansion. The removal order is
// what distinguishes search strategies: FIFO gives breadth-first search,
// LIFO gives depth-first search.
type Frontier[S comparable, A any] interface {
	Add(*Node[S, A])
	Remove() (*Node[S, A], error)
	Empty() bool
	Len() int
}

// Queue is a FIFO frontier for breadth-first search.
type Queue[S comparable, A any] struct {
	nodes []*Node[S, A]
}

// NewQueue creates an empty FIFO frontier.
func NewQueue[S comparable, A any]() *Queue[S, A] {
	return &Queue[S, A]{}
}

// Add appends a node to the back of the queue.
func (q *Queue[S, A]) Add(n *Node[S, A]) {
	q.nodes = append(q.nodes, n)
}

// Remove dequeues the oldest node.
func (q *Queue[S, A]) Remove() (*Node[S, A], error) {
	if q.Empty() {
		return nil, ErrEmptyFrontier
	}
	n := q.nodes[0]
	q.nodes[0] = nil
	q.nodes = q.nodes[1:]
	return n, nil
}

// Empty reports whether no nodes remain.
func (q *Queue[S, A]) Empty() bool {
	return len(q.nodes) == 0
}

// Len returns the number of queued nodes.
func (q *Queue[S, A]) Len() int {
	return len(q.nodes)
}

// Stack is a LIFO frontier for depth-first search.
type Stack[S comparable, A any] struct {
	nodes []*Node[S, A]
}

// NewStack creates an empty LIFO frontier.
func NewStack[S comparable, A any]() *Stack[S, A] {
	return &Stack[S, A]{}
}

// Add pushes a node onto the stack.
func (s *Stack[S, A]) Add(n *Node[S, A]) {
	s.nodes = append(s.nodes, n)
}

// Remove pops the most recently added node.
func (s *Stack[S, A]) Remove() (*Node[S, A], error) {
	if s.Empty() {
		return nil, ErrEmptyFrontier
	}
	n := s.nodes[len(s.nodes)-1]
	s.nodes[len(s.nodes)-1] = nil
	s.nodes = s.nodes[:len(s.nodes)-1]
	return n, nil
}

// Empty reports whether no nodes remain.
func (s *Stack[S, A]) Empty() bool {
	return len(s.nodes) == 0
}

// Len returns the number of stacked nodes.
func (s *Stack[S, A]) Len() int {
	return len(s.nodes)
}
