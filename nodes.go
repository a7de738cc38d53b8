package formula

import (
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of a formula. The concrete types
// are *Number, *Variable, *Binary, *Unary, and *Call; no other type implements
// Node. Nodes are never modified after parsing, so a tree may be evaluated by
// any number of goroutines at once.
type Node interface {
	String() string
	fmt(b *strings.Builder, square bool)
}

// Number is a numeric literal. Named constants are parsed to Numbers.
type Number struct {
	Value float64
}

// Variable is a reference to a free variable.
type Variable struct {
	Name string
}

// Binary is a binary arithmetic operation.
type Binary struct {
	Op    BinaryOp
	Left  Node
	Right Node
}

// Unary is a prefix sign.
type Unary struct {
	Op      UnaryOp
	Operand Node
}

// Call is a call of a built-in function. The number of arguments is whatever
// the formula supplied.
type Call struct {
	Name string
	Args []Node
}

// BinaryOp is a binary operator.
type BinaryOp int8

const (
	_ BinaryOp = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpPower:
		return "^"
	default:
		return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
	}
}

// UnaryOp is a prefix operator.
type UnaryOp int8

const (
	_ UnaryOp = iota
	// OpNegate flips the sign of its operand.
	OpNegate
	// OpIdentity is unary plus, which has no effect.
	OpIdentity
)

func (op UnaryOp) String() string {
	switch op {
	case OpNegate:
		return "-"
	case OpIdentity:
		return "+"
	default:
		return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
	}
}

func (n *Number) String() string   { return nodestring(n) }
func (n *Variable) String() string { return nodestring(n) }
func (n *Binary) String() string   { return nodestring(n) }
func (n *Unary) String() string    { return nodestring(n) }
func (n *Call) String() string     { return nodestring(n) }

// nodestring formats a tree with alternating round and square brackets
// grouping each term.
func nodestring(n Node) string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func brackets(square bool) (byte, byte) {
	if square {
		return '[', ']'
	}
	return '(', ')'
}

func (n *Number) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	b.WriteByte(r)
}

func (n *Variable) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteString(n.Name)
	b.WriteByte(r)
}

func (n *Binary) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	n.Left.fmt(b, !square)
	b.WriteByte(' ')
	b.WriteString(n.Op.String())
	b.WriteByte(' ')
	n.Right.fmt(b, !square)
	b.WriteByte(r)
}

func (n *Unary) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteString(n.Op.String())
	n.Operand.fmt(b, !square)
	b.WriteByte(r)
}

func (n *Call) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteString(n.Name)
	// Arguments use the opposite brackets from the call itself.
	al, ar := brackets(!square)
	b.WriteByte(al)
	for i, arg := range n.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		arg.fmt(b, square)
	}
	b.WriteByte(ar)
	b.WriteByte(r)
}

// Inspect traverses the tree rooted at n in depth-first order. It calls f for
// each node, starting with n; if f returns false, Inspect skips that node's
// children. Inspect does nothing if n is nil.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch n := n.(type) {
	case *Binary:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *Unary:
		Inspect(n.Operand, f)
	case *Call:
		for _, arg := range n.Args {
			Inspect(arg, f)
		}
	}
}

// IsVariable reports whether n is exactly a reference to the named variable,
// with no operators around it other than unary plus. Parentheses leave no
// trace in the tree, so "(z)" and "+z" are both the variable z.
func IsVariable(n Node, name string) bool {
	for {
		u, ok := n.(*Unary)
		if !ok || u.Op != OpIdentity {
			break
		}
		n = u.Operand
	}
	v, ok := n.(*Variable)
	return ok && v.Name == name
}

// copytree makes a deep copy of a tree so that the result shares no nodes
// with the original.
func copytree(n Node) Node {
	switch n := n.(type) {
	case *Number:
		return &Number{Value: n.Value}
	case *Variable:
		return &Variable{Name: n.Name}
	case *Binary:
		return &Binary{Op: n.Op, Left: copytree(n.Left), Right: copytree(n.Right)}
	case *Unary:
		return &Unary{Op: n.Op, Operand: copytree(n.Operand)}
	case *Call:
		c := &Call{Name: n.Name}
		if n.Args != nil {
			c.Args = make([]Node, len(n.Args))
			for i, arg := range n.Args {
				c.Args[i] = copytree(arg)
			}
		}
		return c
	default:
		return nil
	}
}
