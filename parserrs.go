package formula

import "strconv"

// EmptyExpressionError is the error for parsing an empty string.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "Empty expression"
}

func (err *EmptyExpressionError) Pos() int {
	return 0
}

// TokenError is an error indicating a token that cannot appear where it was
// found, including the end of input where an operand was expected. It
// implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the text of the token.
	Token string
	// End is whether the token was the end of the input.
	End bool
}

func (err *TokenError) Error() string {
	if err.End {
		return errpos(err.Col, "Unexpected end of expression")
	}
	return errpos(err.Col, "Unexpected token "+quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// BracketError is an error indicating a missing close parenthesis. It
// implements InputError.
type BracketError struct {
	// Col is the position of the token found instead of the parenthesis.
	Col int
	// Context describes what the parenthesis would have closed.
	Context string
	// Got is the text of the token found instead.
	Got string
	// End is whether the input ended instead.
	End bool
}

func (err *BracketError) Error() string {
	got := "end of expression"
	if !err.End {
		got = quote(err.Got)
	}
	return "Expected ')' in " + err.Context + " at position " + strconv.Itoa(err.Col) + ", got " + got
}

func (err *BracketError) Pos() int {
	return err.Col
}

// CallError is an error indicating a call of a name that is not a built-in
// function. It implements InputError.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the name that was called.
	Func string
}

func (err *CallError) Error() string {
	return errpos(err.Col, "Unknown function "+quote(err.Func))
}

func (err *CallError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a number token that does not denote a
// finite float64, such as "." or "1e999". It implements InputError.
type NumberError struct {
	// Col is the position of the number.
	Col int
	// Text is the number's text.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "Invalid number "+quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return msg + " at position " + strconv.Itoa(pos)
}

func quote(s string) string {
	return "'" + s + "'"
}

// InputError is an error with position information. Every error resulting from
// invalid formula text passed to Tokenize or Parse implements InputError.
type InputError interface {
	error
	// Pos returns the zero-based offset of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*LexError)(nil)
)
