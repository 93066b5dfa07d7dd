package mathex

import "strconv"

// ParseError indicates a token stream that does not form a valid expression.
// Parsing never partially succeeds: the caller gets a complete tree or a
// ParseError, never both.
type ParseError struct {
	// Token is the offending token. Its kind is TokenNull when the stream
	// ended before the expression was complete.
	Token Token
	// Message describes what the parser expected.
	Message string
}

func (err *ParseError) Error() string {
	if err.Token.Kind == TokenNull && err.Token.Text == "" {
		return err.Message
	}
	return err.Message + " | token: " + strconv.Quote(err.Token.Text) + " (" + err.Token.Kind.String() + ")"
}

// Pos returns the byte offset of the offending token in the source.
func (err *ParseError) Pos() int {
	return err.Token.Pos
}

// ExecutionError indicates a failure while simplifying: an unknown function
// name, a wrong argument count, or an argument outside a built-in's domain.
type ExecutionError struct {
	Message string
}

func (err *ExecutionError) Error() string {
	return err.Message
}
