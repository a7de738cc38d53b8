package formula

import (
	"math"
	"strconv"
)

// expression := term (('+'|'-') term)*
// term       := power (('*'|'/') power)*
// power      := unary ('^' power)?
// unary      := ('-'|'+') unary | primary
// primary    := num | name '(' [ expression { ',' expression } ] ')' | name | '(' expression ')'

// Expr is a parsed formula that can be evaluated many times.
type Expr struct {
	// root is the root node of the expression.
	root Node
	// names is the sorted list of free variable names used in the expression.
	names []string
}

// Parse parses a formula. If the formula is invalid, the result is nil and the
// error implements InputError.
func Parse(src string) (*Expr, error) {
	if src == "" {
		return nil, &EmptyExpressionError{}
	}
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := parser{toks: toks}
	n, err := p.parseterm(exprprec)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != TokenEnd {
		return nil, &TokenError{Col: tok.Pos, Token: tok.Text}
	}
	ex := Expr{
		root:  n,
		names: freenames(n),
	}
	return &ex, nil
}

// freenames collects the distinct variable names in a tree.
func freenames(n Node) []string {
	seen := make(map[string]bool)
	var names []string
	Inspect(n, func(n Node) bool {
		if v, ok := n.(*Variable); ok && !seen[v.Name] {
			seen[v.Name] = true
			names = append(names, v.Name)
		}
		return true
	})
	sortstrs(names)
	return names
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// parser holds a token stream and the position of the next token in it. The
// last token is always TokenEnd, and the parser never advances past it.
type parser struct {
	toks []Token
	k    int
}

func (p *parser) peek() Token {
	return p.toks[p.k]
}

func (p *parser) advance() Token {
	tok := p.toks[p.k]
	if p.k < len(p.toks)-1 {
		p.k++
	}
	return tok
}

// expect consumes a close parenthesis.
func (p *parser) expect(context string) error {
	tok := p.peek()
	if tok.Kind != TokenRParen {
		return &BracketError{Col: tok.Pos, Context: context, Got: tok.Text, End: tok.Kind == TokenEnd}
	}
	p.advance()
	return nil
}

// parseterm parses a sequence of operands joined by binary operators that
// bind more tightly than until. It stops at the first token that is not such
// an operator, leaving it unconsumed.
func (p *parser) parseterm(until operator) (Node, error) {
	n, err := p.parseunary()
	if err != nil {
		return nil, err
	}
	for {
		prec := binop(p.peek().Kind)
		if prec.op == 0 || !prec.moreBinding(until) {
			return n, nil
		}
		p.advance()
		rhs, err := p.parseterm(prec)
		if err != nil {
			return nil, err
		}
		n = &Binary{Op: prec.op, Left: n, Right: rhs}
	}
}

// parseunary parses any number of prefix signs followed by a primary. Signs
// apply to the primary alone, so -x^2 is (-x)^2.
func (p *parser) parseunary() (Node, error) {
	var op UnaryOp
	switch p.peek().Kind {
	case TokenMinus:
		op = OpNegate
	case TokenPlus:
		op = OpIdentity
	default:
		return p.parseprimary()
	}
	p.advance()
	operand, err := p.parseunary()
	if err != nil {
		return nil, err
	}
	return &Unary{Op: op, Operand: operand}, nil
}

func (p *parser) parseprimary() (Node, error) {
	tok := p.advance()
	switch tok.Kind {
	case TokenNumber:
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil || math.IsInf(v, 0) {
			return nil, &NumberError{Col: tok.Pos, Text: tok.Text}
		}
		return &Number{Value: v}, nil
	case TokenIdent:
		if p.peek().Kind == TokenLParen {
			if !IsFunc(tok.Text) {
				return nil, &CallError{Col: tok.Pos, Func: tok.Text}
			}
			p.advance()
			args, err := p.parsearglist()
			if err != nil {
				return nil, err
			}
			return &Call{Name: tok.Text, Args: args}, nil
		}
		if v, ok := Constant(tok.Text); ok {
			return &Number{Value: v}, nil
		}
		return &Variable{Name: tok.Text}, nil
	case TokenLParen:
		n, err := p.parseterm(exprprec)
		if err != nil {
			return nil, err
		}
		if err := p.expect("parenthesized expression"); err != nil {
			return nil, err
		}
		return n, nil
	case TokenEnd:
		return nil, &TokenError{Col: tok.Pos, End: true}
	default:
		return nil, &TokenError{Col: tok.Pos, Token: tok.Text}
	}
}

// parsearglist parses the arguments of a call following its open parenthesis,
// through the close parenthesis.
func (p *parser) parsearglist() ([]Node, error) {
	if p.peek().Kind == TokenRParen {
		p.advance()
		return nil, nil
	}
	var args []Node
	for {
		arg, err := p.parseterm(exprprec)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.peek().Kind != TokenComma {
			break
		}
		p.advance()
	}
	if err := p.expect("function call"); err != nil {
		return nil, err
	}
	return args, nil
}

// Root returns the root node of the expression.
func (e *Expr) Root() Node {
	return e.root
}

// Vars returns the sorted names of the free variables used in the expression.
// Constants are not variables.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// HasVar returns whether the expression uses the named variable.
func (e *Expr) HasVar(name string) bool {
	return hasname(e.names, name)
}

func hasname(names []string, name string) bool {
	for _, v := range names {
		if v == name {
			return true
		}
	}
	return false
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	return e.root.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node operator to use when this operator is selected.
	op BinaryOp
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token kind. If there is no such binary
// operator, then the result has an op of 0.
func binop(kind TokenKind) operator {
	switch kind {
	case TokenPlus:
		return operator{1, false, OpAdd}
	case TokenMinus:
		return operator{1, false, OpSubtract}
	case TokenStar:
		return operator{5, false, OpMultiply}
	case TokenSlash:
		return operator{5, false, OpDivide}
	case TokenCaret:
		return operator{15, true, OpPower}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, 0}
