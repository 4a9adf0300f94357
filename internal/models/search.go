package models

import (
	"fmt"
	"strings"
)

// TagOp is the operator of a tag expression node.
type TagOp string

const (
	OpTag TagOp = "tag"
	OpAnd TagOp = "and"
	OpOr  TagOp = "or"
	OpXor TagOp = "xor"
	OpNot TagOp = "not"
)

// TagExpression is a boolean expression over item tags, used to narrow
// which guidance items a command operates on. Tag matching inside
// expressions is case-insensitive; exact-match filtering is GuidanceByTag.
type TagExpression struct {
	Op   TagOp
	Tag  string           // set when Op == OpTag
	Args []*TagExpression // operands for and/or/xor/not
}

// Matches evaluates the expression against a tag set. A nil expression
// matches everything.
func (e *TagExpression) Matches(tags []string) bool {
	if e == nil {
		return true
	}
	switch e.Op {
	case OpTag:
		for _, tag := range tags {
			if strings.EqualFold(tag, e.Tag) {
				return true
			}
		}
		return false
	case OpAnd:
		for _, arg := range e.Args {
			if !arg.Matches(tags) {
				return false
			}
		}
		return true
	case OpOr:
		for _, arg := range e.Args {
			if arg.Matches(tags) {
				return true
			}
		}
		return false
	case OpXor:
		if len(e.Args) != 2 {
			return false
		}
		return e.Args[0].Matches(tags) != e.Args[1].Matches(tags)
	case OpNot:
		if len(e.Args) != 1 {
			return false
		}
		return !e.Args[0].Matches(tags)
	default:
		return false
	}
}

// String returns the expression in its query form.
func (e *TagExpression) String() string {
	if e == nil {
		return ""
	}
	switch e.Op {
	case OpTag:
		return e.Tag
	case OpAnd, OpOr:
		sep := " AND "
		if e.Op == OpOr {
			sep = " OR "
		}
		parts := make([]string, 0, len(e.Args))
		for _, arg := range e.Args {
			parts = append(parts, arg.String())
		}
		return "(" + strings.Join(parts, sep) + ")"
	case OpXor:
		if len(e.Args) == 2 {
			return fmt.Sprintf("(%s XOR %s)", e.Args[0], e.Args[1])
		}
		return "(XOR ?)"
	case OpNot:
		if len(e.Args) == 1 {
			return "NOT " + e.Args[0].String()
		}
		return "NOT ?"
	default:
		return "?"
	}
}

// TagExpr builds a leaf node.
func TagExpr(tag string) *TagExpression {
	return &TagExpression{Op: OpTag, Tag: tag}
}

// AndExpr builds an AND node.
func AndExpr(args ...*TagExpression) *TagExpression {
	return &TagExpression{Op: OpAnd, Args: args}
}

// OrExpr builds an OR node.
func OrExpr(args ...*TagExpression) *TagExpression {
	return &TagExpression{Op: OpOr, Args: args}
}

// XorExpr builds a XOR node.
func XorExpr(left, right *TagExpression) *TagExpression {
	return &TagExpression{Op: OpXor, Args: []*TagExpression{left, right}}
}

// NotExpr builds a NOT node.
func NotExpr(arg *TagExpression) *TagExpression {
	return &TagExpression{Op: OpNot, Args: []*TagExpression{arg}}
}

// ParseTagExpression parses a query like "go AND (testing OR NOT legacy)".
// Operator keywords are case-insensitive; OR binds loosest, then XOR,
// then AND, then NOT.
func ParseTagExpression(query string) (*TagExpression, error) {
	p := &exprParser{tokens: tokenizeExpr(query)}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("unexpected token %q in tag expression", p.tokens[p.pos])
	}
	return expr, nil
}

type exprParser struct {
	tokens []string
	pos    int
}

func tokenizeExpr(query string) []string {
	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range query {
		switch r {
		case '(', ')':
			flush()
			tokens = append(tokens, string(r))
		case ' ', '\t', '\n':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}

func (p *exprParser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

func (p *exprParser) parseOr() (*TagExpression, error) {
	left, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	args := []*TagExpression{left}
	for strings.EqualFold(p.peek(), "OR") {
		p.pos++
		right, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		args = append(args, right)
	}
	if len(args) == 1 {
		return left, nil
	}
	return OrExpr(args...), nil
}

func (p *exprParser) parseXor() (*TagExpression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for strings.EqualFold(p.peek(), "XOR") {
		p.pos++
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = XorExpr(left, right)
	}
	return left, nil
}

func (p *exprParser) parseAnd() (*TagExpression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	args := []*TagExpression{left}
	for strings.EqualFold(p.peek(), "AND") {
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		args = append(args, right)
	}
	if len(args) == 1 {
		return left, nil
	}
	return AndExpr(args...), nil
}

func (p *exprParser) parseUnary() (*TagExpression, error) {
	tok := p.peek()
	switch {
	case tok == "":
		return nil, fmt.Errorf("unexpected end of tag expression")
	case strings.EqualFold(tok, "NOT"):
		p.pos++
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return NotExpr(inner), nil
	case tok == "(":
		p.pos++
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ")" {
			return nil, fmt.Errorf("missing closing parenthesis in tag expression")
		}
		p.pos++
		return inner, nil
	case tok == ")":
		return nil, fmt.Errorf("unexpected closing parenthesis in tag expression")
	default:
		p.pos++
		return TagExpr(tok), nil
	}
}
