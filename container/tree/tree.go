package tree

// Node of a tree. A node exclusively owns its left and right
// subtrees. Callers only get read access to a node: the stored
// value cannot be changed from outside the package, so a handle
// returned by Find cannot break the ordering of the tree. A handle
// is only meaningful until the next Remove or Clear on its tree, since
// removing a value with two children moves the successor's value into
// the existing node
type Node[T any] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

// Value returns the value held by the node
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the node's left child
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the node's right child
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Min returns the node in the subtree of the
// lowest order. It returns nil if the subtree
// is empty
func (n *Node[T]) Min() *Node[T] {
	if n == nil {
		return nil
	}

	curr := n
	for curr.left != nil {
		curr = curr.left
	}

	return curr
}

// Max returns the node in the subtree of the
// highest order. It returns nil if the subtree
// is empty
func (n *Node[T]) Max() *Node[T] {
	if n == nil {
		return nil
	}

	curr := n
	for curr.right != nil {
		curr = curr.right
	}

	return curr
}

// Tree represents a binary search tree that holds each value at most
// once. The tree applies no balancing strategy: how balanced its branches
// are depends exclusively on the order of the insert and remove operations
// performed on it, and every operation costs O(height).
//
// A Tree is not safe for concurrent use. Callers sharing a tree between
// goroutines must serialize access themselves, for example behind a single
// sync.Mutex or a sync.RWMutex held for writing by Insert, Remove and Clear
type Tree[T any] struct {
	root *Node[T]
	less LessFunc[T]
	len  int
}

// New creates an empty tree ordered by less
func New[T any](less LessFunc[T]) *Tree[T] {
	if less == nil {
		panic("tree: nil LessFunc")
	}

	return &Tree[T]{less: less}
}

// NewOrdered creates an empty tree for types supporting the '<' operator
func NewOrdered[T Ordered]() *Tree[T] {
	return New(Less[T]())
}

// Len returns the number of nodes in the tree
func (t *Tree[T]) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Height returns the number of nodes on the longest path
// from the root to a leaf
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}

	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Min returns the node in the tree with the
// lowest value. It returns nil if the tree
// is empty
func (t *Tree[T]) Min() *Node[T] {
	return t.root.Min()
}

// Max returns the node in the tree with the
// highest value. It returns nil if tree
// is empty
func (t *Tree[T]) Max() *Node[T] {
	return t.root.Max()
}

// Contains returns true if the tree holds a value
// equivalent to v
func (t *Tree[T]) Contains(v T) bool {
	return t.find(t.root, v) != nil
}

// Find returns the node in the tree that holds a value
// equivalent to v, or nil if there is none
func (t *Tree[T]) Find(v T) *Node[T] {
	return t.find(t.root, v)
}

func (t *Tree[T]) find(n *Node[T], v T) *Node[T] {
	switch {
	case n == nil:
		return nil
	case t.less(v, n.value):
		return t.find(n.left, v)
	case t.less(n.value, v):
		return t.find(n.right, v)
	default:
		return n
	}
}

// Ceiling returns the node in the tree that has the
// smallest value which is not lower than v
func (t *Tree[T]) Ceiling(v T) *Node[T] {
	var ceiling *Node[T]

	for curr := t.root; curr != nil; {
		if t.less(curr.value, v) {
			curr = curr.right
		} else {
			ceiling = curr
			curr = curr.left
		}
	}

	return ceiling
}

// Floor returns the node in the tree that has the
// highest value which is not higher than v
func (t *Tree[T]) Floor(v T) *Node[T] {
	var floor *Node[T]

	for curr := t.root; curr != nil; {
		if t.less(v, curr.value) {
			curr = curr.left
		} else {
			floor = curr
			curr = curr.right
		}
	}

	return floor
}

// Clear removes every node from the tree. Nodes are
// unlinked bottom up so that no subtree outlives its parent
func (t *Tree[T]) Clear() {
	postOrderWalk(t.root, func(n *Node[T]) {
		n.left = nil
		n.right = nil
	})

	t.root = nil
	t.len = 0
}
