package tree

// Insert adds v to the tree. It returns false and leaves the
// tree unchanged if a value equivalent to v is already stored
func (t *Tree[T]) Insert(v T) bool {
	if !t.insert(&t.root, v) {
		return false
	}

	t.len++
	return true
}

// insert descends from the slot until it reaches an empty one,
// where the new node is created
func (t *Tree[T]) insert(slot **Node[T], v T) bool {
	n := *slot

	switch {
	case n == nil:
		*slot = &Node[T]{value: v}
		return true
	case t.less(v, n.value):
		return t.insert(&n.left, v)
	case t.less(n.value, v):
		return t.insert(&n.right, v)
	default:
		return false
	}
}

// Remove deletes the value equivalent to v from the tree. It
// returns false if no such value is stored
func (t *Tree[T]) Remove(v T) bool {
	if !t.remove(&t.root, v) {
		return false
	}

	t.len--
	return true
}

// remove finds the node holding v below the slot and unlinks it
// while preserving the Binary Search Tree properties, but without
// applying any balancing algorithm
func (t *Tree[T]) remove(slot **Node[T], v T) bool {
	n := *slot

	switch {
	case n == nil:
		return false
	case t.less(v, n.value):
		return t.remove(&n.left, v)
	case t.less(n.value, v):
		return t.remove(&n.right, v)
	}

	switch {
	case n.left == nil && n.right == nil:
		*slot = nil

	case n.left == nil:
		*slot = n.right
		n.right = nil

	case n.right == nil:
		*slot = n.left
		n.left = nil

	default:
		// the successor is the minimum of the right subtree, so it has
		// no left child and removing it never gets back to this case
		successor := n.right.Min()
		n.value = successor.value
		t.remove(&n.right, successor.value)
	}

	return true
}
