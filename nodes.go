package fractions

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. Each node owns
// its children.
type node struct {
	kind nodeKind

	num Fraction

	left  *node
	right *node

	// pos is the column of the token that produced the node.
	pos int
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum      // num
	nodeSum      // left + right
	nodeProduct  // left * right
	nodeDivision // left / right
	nodeNegation // -left
)

var nodeKindNames = [...]string{
	nodeNone:     "None",
	nodeNum:      "Num",
	nodeSum:      "Sum",
	nodeProduct:  "Product",
	nodeDivision: "Division",
	nodeNegation: "Negation",
}

func (k nodeKind) String() string {
	if k < 0 || int(k) >= len(nodeKindNames) {
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return nodeKindNames[k]
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, !square)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, !square)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.num.String())
	case nodeSum:
		n.left.fmt(b, !square)
		b.WriteString(" + ")
		n.right.fmt(b, !square)
	case nodeProduct:
		n.left.fmt(b, !square)
		b.WriteString(" * ")
		n.right.fmt(b, !square)
	case nodeDivision:
		n.left.fmt(b, !square)
		b.WriteString(" / ")
		n.right.fmt(b, !square)
	case nodeNegation:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	default:
		panic("fractions: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
