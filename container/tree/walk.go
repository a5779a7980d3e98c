package tree

// InOrder returns the values of the tree in ascending order. Each
// call walks the whole tree and returns a newly allocated slice
func (t *Tree[T]) InOrder() []T {
	res := make([]T, 0, t.len)
	inOrderWalk(t.root, func(n *Node[T]) {
		res = append(res, n.value)
	})
	return res
}

// PreOrder returns the values of the tree with every node ahead of
// its subtrees. Inserting the result into an empty tree with the same
// ordering rebuilds a tree of identical shape
func (t *Tree[T]) PreOrder() []T {
	res := make([]T, 0, t.len)
	preOrderWalk(t.root, func(n *Node[T]) {
		res = append(res, n.value)
	})
	return res
}

// PostOrder returns the values of the tree with every node
// after its subtrees
func (t *Tree[T]) PostOrder() []T {
	res := make([]T, 0, t.len)
	postOrderWalk(t.root, func(n *Node[T]) {
		res = append(res, n.value)
	})
	return res
}

// InOrderWalk visits the left subtree, the node and then
// the right subtree of every node
func (t *Tree[T]) InOrderWalk(fn func(*Node[T])) {
	inOrderWalk(t.root, fn)
}

// PreOrderWalk visits the node, the left subtree and then
// the right subtree of every node
func (t *Tree[T]) PreOrderWalk(fn func(*Node[T])) {
	preOrderWalk(t.root, fn)
}

// PostOrderWalk visits the left subtree, the right subtree and then
// the node itself. fn may unlink the children of the node it is given
func (t *Tree[T]) PostOrderWalk(fn func(*Node[T])) {
	postOrderWalk(t.root, fn)
}

func inOrderWalk[T any](n *Node[T], fn func(*Node[T])) {
	if n == nil {
		return
	}

	inOrderWalk(n.left, fn)
	fn(n)
	inOrderWalk(n.right, fn)
}

func preOrderWalk[T any](n *Node[T], fn func(*Node[T])) {
	if n == nil {
		return
	}

	fn(n)
	preOrderWalk(n.left, fn)
	preOrderWalk(n.right, fn)
}

func postOrderWalk[T any](n *Node[T], fn func(*Node[T])) {
	if n == nil {
		return
	}

	postOrderWalk(n.left, fn)
	postOrderWalk(n.right, fn)
	fn(n)
}
