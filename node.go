package dynstr

// node is a vertex of the shared representation.
// Leaf nodes (left == nil) hold a window into an immutable backing buffer.
// Interior nodes join two non-empty subtrees and cache the combined length.
// A nil *node is the empty tree.
type node struct {
	left   *node
	right  *node
	text   string // leaf window; unused on interior nodes
	length int
}

// newLeaf creates a leaf over the given window.
// The window is shared, never copied; Go strings are immutable, so every
// value built over it can reference the same backing bytes.
func newLeaf(text string) *node {
	return &node{text: text, length: len(text)}
}

// joinNodes concatenates two subtrees.
// An empty side returns the other operand unchanged, so identity
// concatenations allocate nothing.
func joinNodes(left, right *node) *node {
	if left == nil || left.length == 0 {
		return right
	}
	if right == nil || right.length == 0 {
		return left
	}
	return &node{left: left, right: right, length: left.length + right.length}
}

// isLeaf returns true if this is a leaf node.
func (n *node) isLeaf() bool {
	return n.left == nil
}

// narrow returns a subtree covering the byte range [start, end) of n.
// Fully covered subtrees are returned as-is, partially covered leaves are
// re-windowed without copying text, and only ranges straddling an interior
// boundary allocate fresh nodes. The bounds must be valid and non-empty.
func narrow(n *node, start, end int) *node {
	// Descend to the smallest subtree covering the whole range.
	for {
		if start == 0 && end == n.length {
			return n
		}
		if n.isLeaf() {
			return newLeaf(n.text[start:end])
		}
		leftLen := n.left.length
		switch {
		case end <= leftLen:
			n = n.left
		case start >= leftLen:
			start -= leftLen
			end -= leftLen
			n = n.right
		default:
			// The range straddles this node's boundary. Collect the
			// retained pieces of each side and join them back up.
			parts := make([]*node, 0, 8)
			gatherSuffix(n.left, start, &parts)
			gatherPrefix(n.right, end-leftLen, &parts)
			return foldNodes(parts)
		}
	}
}

// gatherSuffix appends the subtrees covering [start, n.length) of n to
// parts, in order. Requires 0 <= start < n.length.
func gatherSuffix(n *node, start int, parts *[]*node) {
	var pending []*node
	for {
		if start == 0 {
			*parts = append(*parts, n)
			break
		}
		if n.isLeaf() {
			*parts = append(*parts, newLeaf(n.text[start:]))
			break
		}
		if leftLen := n.left.length; start >= leftLen {
			start -= leftLen
			n = n.right
		} else {
			pending = append(pending, n.right)
			n = n.left
		}
	}
	// Right siblings were recorded top-down; they follow in reverse.
	for i := len(pending) - 1; i >= 0; i-- {
		*parts = append(*parts, pending[i])
	}
}

// gatherPrefix appends the subtrees covering [0, end) of n to parts,
// in order. Requires 0 < end <= n.length.
func gatherPrefix(n *node, end int, parts *[]*node) {
	for {
		if end == n.length {
			*parts = append(*parts, n)
			return
		}
		if n.isLeaf() {
			*parts = append(*parts, newLeaf(n.text[:end]))
			return
		}
		if leftLen := n.left.length; end <= leftLen {
			n = n.left
		} else {
			*parts = append(*parts, n.left)
			end -= leftLen
			n = n.right
		}
	}
}

// foldNodes joins parts pairwise into a balanced tree, preserving order.
// The slice is reused as scratch space.
func foldNodes(parts []*node) *node {
	if len(parts) == 0 {
		return nil
	}
	for len(parts) > 1 {
		k := 0
		for i := 0; i < len(parts); i += 2 {
			if i+1 < len(parts) {
				parts[k] = joinNodes(parts[i], parts[i+1])
			} else {
				parts[k] = parts[i]
			}
			k++
		}
		parts = parts[:k]
	}
	return parts[0]
}

// appendNode appends all bytes under n to dst, walking leaves in order
// with an explicit stack.
func appendNode(dst []byte, n *node) []byte {
	if n == nil {
		return dst
	}
	stack := make([]*node, 0, 16)
	stack = append(stack, n)
	for len(stack) > 0 {
		top := len(stack) - 1
		cur := stack[top]
		stack = stack[:top]
		if cur.isLeaf() {
			dst = append(dst, cur.text...)
			continue
		}
		stack = append(stack, cur.right, cur.left)
	}
	return dst
}

// nodeDepth returns the height of the subtree. Leaves have depth 1.
func nodeDepth(n *node) int {
	if n == nil {
		return 0
	}
	if n.isLeaf() {
		return 1
	}
	l := nodeDepth(n.left)
	r := nodeDepth(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// nodeLeafCount returns the number of leaf windows reached by an in-order
// walk. Subtrees shared between branches are counted once per occurrence.
func nodeLeafCount(n *node) int {
	if n == nil {
		return 0
	}
	if n.isLeaf() {
		return 1
	}
	return nodeLeafCount(n.left) + nodeLeafCount(n.right)
}
