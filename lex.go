package formula

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Token is a single lexical token of a formula.
type Token struct {
	// Kind is the token's type.
	Kind TokenKind
	// Text is the source text of the token. It is empty for TokenEnd.
	Text string
	// Pos is the zero-based offset of the first character of the token.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind identifies the type of a token.
type TokenKind int8

const (
	// TokenEnd marks the end of the input. It is the last token of every
	// successful tokenization.
	TokenEnd TokenKind = iota
	// TokenNumber is a decimal number, possibly with a fraction and exponent.
	TokenNumber
	// TokenIdent is a variable, constant, or function name.
	TokenIdent
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenCaret
	TokenLParen
	TokenRParen
	TokenComma
	// TokenInvalid is a character the lexer does not understand. Tokenization
	// stops after it.
	TokenInvalid
)

var tokenKindNames = [...]string{
	TokenEnd:     "End",
	TokenNumber:  "Number",
	TokenIdent:   "Ident",
	TokenPlus:    "Plus",
	TokenMinus:   "Minus",
	TokenStar:    "Star",
	TokenSlash:   "Slash",
	TokenCaret:   "Caret",
	TokenLParen:  "LParen",
	TokenRParen:  "RParen",
	TokenComma:   "Comma",
	TokenInvalid: "Error",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Punctuation contains the single-character operators and delimiters. The
// token kind for the byte at index k is punctkinds[k].
const Punctuation = "+-*/^(),"

var punctkinds = [...]TokenKind{
	TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenCaret,
	TokenLParen, TokenRParen, TokenComma,
}

// Tokenize splits input into tokens. On success, the last token is always
// TokenEnd, positioned one past the last character. If the input contains a
// character that cannot begin any token, the result ends with a TokenInvalid
// holding that character and the error is a *LexError.
func Tokenize(input string) ([]Token, error) {
	l := lexer{src: input}
	var toks []Token
	for {
		tok, err := l.next()
		toks = append(toks, tok)
		if err != nil {
			return toks, err
		}
		if tok.Kind == TokenEnd {
			return toks, nil
		}
	}
}

type lexer struct {
	src string
	pos int
}

// next scans the next token from the input. Once the input is exhausted, every
// call returns a TokenEnd token.
func (l *lexer) next() (Token, error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	tok := Token{Pos: l.pos}
	if l.pos >= len(l.src) {
		tok.Kind = TokenEnd
		return tok, nil
	}
	c := l.src[l.pos]
	switch {
	case isDigit(c), c == '.':
		tok.Kind = TokenNumber
		tok.Text = l.scanNum()
	case isLetter(c), c == '_':
		tok.Kind = TokenIdent
		tok.Text = l.scanIdent()
	default:
		if k := strings.IndexByte(Punctuation, c); k >= 0 {
			tok.Kind = punctkinds[k]
			tok.Text = l.src[l.pos : l.pos+1]
			l.pos++
			return tok, nil
		}
		// Take the whole rune so that it shows up in the error message.
		_, sz := utf8.DecodeRuneInString(l.src[l.pos:])
		tok.Kind = TokenInvalid
		tok.Text = l.src[l.pos : l.pos+sz]
		l.pos += sz
		return tok, &LexError{Char: tok.Text, Col: tok.Pos}
	}
	return tok, nil
}

// scanNum scans a number starting at the current position. The exponent
// suffix is taken only if at least one digit follows the e and its optional
// sign; otherwise the e is left for the next token.
func (l *lexer) scanNum() string {
	start := l.pos
	dot := false
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '.' {
			if dot {
				break
			}
			dot = true
		} else if !isDigit(c) {
			break
		}
		l.pos++
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		k := l.pos + 1
		if k < len(l.src) && (l.src[k] == '+' || l.src[k] == '-') {
			k++
		}
		if k < len(l.src) && isDigit(l.src[k]) {
			for k < len(l.src) && isDigit(l.src[k]) {
				k++
			}
			l.pos = k
		}
	}
	return l.src[start:l.pos]
}

func (l *lexer) scanIdent() string {
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c != '_' && !isLetter(c) && !isDigit(c) {
			break
		}
		l.pos++
	}
	return l.src[start:l.pos]
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// LexError indicates a character that cannot begin any token. It implements
// InputError.
type LexError struct {
	// Char is the offending character.
	Char string
	// Col is the zero-based offset of the character.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "Unexpected character "+quote(err.Char))
}

func (err *LexError) Pos() int {
	return err.Col
}
