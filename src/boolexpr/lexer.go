package boolexpr

import (
	"fmt"
	"strings"
)

const (
	orMarker  = '+'
	andMarker = '*'
	notMarker = '\''
)

type TokenType int

const (
	TokenVariable TokenType = iota
	TokenConstant
	TokenAnd
	TokenOr
	TokenNot
	TokenLParen
	TokenRParen
)

type Token struct {
	Type  TokenType
	Value byte
	// Pos is the offset of the token in the source expression. Implicit
	// ANDs share the position of the operand following them.
	Pos int
}

func isVariable(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

func isConstant(c byte) bool {
	return c == '0' || c == '1'
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// impliesAnd reports whether an AND is implied between two adjacent
// characters, as in AB, A(B), A'B, )( or 1A.
func impliesAnd(prev, next byte) bool {
	startsOperand := isVariable(next) || isConstant(next) || next == '('
	endsOperand := isVariable(prev) || isConstant(prev) || prev == ')' || prev == notMarker
	return startsOperand && endsOperand
}

// bracketDelta is the change in bracket depth caused by c.
func bracketDelta(c byte) int {
	switch c {
	case '(':
		return 1
	case ')':
		return -1
	}
	return 0
}

func tokenize(expression string) ([]Token, error) {
	tokens := make([]Token, 0, len(expression))

	for i := 0; i < len(expression); i++ {
		c := expression[i]
		var tokenType TokenType
		switch {
		case isWhitespace(c):
			continue
		case isVariable(c):
			tokenType = TokenVariable
		case isConstant(c):
			tokenType = TokenConstant
		case c == andMarker:
			tokenType = TokenAnd
		case c == orMarker:
			tokenType = TokenOr
		case c == notMarker:
			tokenType = TokenNot
		case c == '(':
			tokenType = TokenLParen
		case c == ')':
			tokenType = TokenRParen
		default:
			return nil, NewParseError(expression, i, fmt.Sprintf("unexpected character %q", c))
		}
		tokens = append(tokens, Token{Type: tokenType, Value: c, Pos: i})
	}

	return tokens, nil
}

// Normalize makes every implicit AND in the expression explicit, so "AB"
// becomes "A*B" and "A'(B+C)" becomes "A'*(B+C)". Whitespace is dropped.
// Normalizing a normalized expression returns it unchanged.
func Normalize(expression string) string {
	var out strings.Builder
	var prev byte

	for i := 0; i < len(expression); i++ {
		c := expression[i]
		if isWhitespace(c) {
			continue
		}
		if out.Len() > 0 && impliesAnd(prev, c) {
			out.WriteByte(andMarker)
		}
		out.WriteByte(c)
		prev = c
	}

	return out.String()
}

func insertImplicitAnds(tokens []Token) []Token {
	out := make([]Token, 0, 2*len(tokens))
	for i, t := range tokens {
		if i > 0 && impliesAnd(tokens[i-1].Value, t.Value) {
			out = append(out, Token{Type: TokenAnd, Value: andMarker, Pos: t.Pos})
		}
		out = append(out, t)
	}
	return out
}

// StripRedundantBrackets removes enclosing bracket pairs that wrap the
// whole expression: "((A+B))" becomes "A+B" while "(A)+(B)" is returned
// as is, since its first and last brackets belong to different pairs.
func StripRedundantBrackets(expression string) string {
	return string(stripBrackets([]byte(expression), bracketDelta))
}

func stripRedundantBrackets(tokens []Token) []Token {
	return stripBrackets(tokens, func(t Token) int {
		return bracketDelta(t.Value)
	})
}

func stripBrackets[T any](items []T, delta func(T) int) []T {
	for len(items) >= 2 && delta(items[0]) > 0 && delta(items[len(items)-1]) < 0 {
		if closingIndex(items, delta) != len(items)-1 {
			break
		}
		items = items[1 : len(items)-1]
	}
	return items
}

// closingIndex returns the index of the bracket closing items[0], or -1 if
// it is never closed.
func closingIndex[T any](items []T, delta func(T) int) int {
	depth := 1
	for i := 1; i < len(items); i++ {
		depth += delta(items[i])
		if depth == 0 {
			return i
		}
	}
	return -1
}

// freeOperatorIndex returns the index of the first token of the given type
// that is not enclosed in brackets, or -1.
func freeOperatorIndex(tokens []Token, tokenType TokenType) int {
	depth := 0
	for i, t := range tokens {
		depth += bracketDelta(t.Value)
		if depth == 0 && t.Type == tokenType {
			return i
		}
	}
	return -1
}

func render(tokens []Token) string {
	b := make([]byte, len(tokens))
	for i, t := range tokens {
		b[i] = t.Value
	}
	return string(b)
}

// buildTree expects tokens with every AND explicit. The loosest binding free
// operator becomes the root: OR, then AND, then the postfix NOT.
func buildTree(tokens []Token) (Node, error) {
	inner := stripRedundantBrackets(tokens)

	switch len(inner) {
	case 0:
		if len(tokens) == 0 {
			return nil, NewParseError("", -1, "empty expression")
		}
		return nil, NewParseError(render(tokens), tokens[0].Pos, "empty brackets")
	case 1:
		return buildLeaf(inner[0])
	}

	if i := freeOperatorIndex(inner, TokenOr); i >= 0 {
		return buildBinary(inner, i)
	}
	if i := freeOperatorIndex(inner, TokenAnd); i >= 0 {
		return buildBinary(inner, i)
	}
	if freeOperatorIndex(inner, TokenNot) >= 0 {
		// NOT trails its operand, so the operand is everything but the
		// last token wherever the free marker was found.
		return parseNegation(inner[:len(inner)-1])
	}

	return nil, NewParseError(render(inner), inner[0].Pos, "no operator found")
}

func buildLeaf(t Token) (Node, error) {
	switch t.Type {
	case TokenConstant:
		return Literal{Value: t.Value == '1'}, nil
	case TokenVariable:
		return Variable{Name: string(t.Value)}, nil
	}
	return nil, NewParseError(string(t.Value), t.Pos, "operator without operand")
}

func buildBinary(tokens []Token, index int) (Node, error) {
	op := tokens[index]
	if index == 0 {
		return nil, NewParseError(render(tokens), op.Pos, fmt.Sprintf("missing left operand of '%c'", op.Value))
	}
	if index == len(tokens)-1 {
		return nil, NewParseError(render(tokens), op.Pos, fmt.Sprintf("missing right operand of '%c'", op.Value))
	}

	left, err := buildTree(tokens[:index])
	if err != nil {
		return nil, fmt.Errorf("failed to build left subtree: %w", err)
	}
	right, err := buildTree(tokens[index+1:])
	if err != nil {
		return nil, fmt.Errorf("failed to build right subtree: %w", err)
	}

	children := []Node{left, right}
	if op.Type == TokenOr {
		return Or{Children: children}, nil
	}
	return And{Children: children}, nil
}

func parseNegation(tokens []Token) (Node, error) {
	child, err := buildTree(tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to build negated subtree: %w", err)
	}
	return Not{Child: child}, nil
}
