package bigint

import "errors"

var (
	// ErrUnderflow is returned when a subtraction would produce a negative value.
	ErrUnderflow = errors.New("bigint: subtraction underflow")
	// ErrDivideByZero is returned when dividing or reducing modulo zero.
	ErrDivideByZero = errors.New("bigint: division by zero")
	// ErrNoInverse is returned when a modular inverse does not exist.
	ErrNoInverse = errors.New("bigint: modular inverse does not exist")
	// ErrParse is returned when parsing a malformed decimal numeral.
	ErrParse = errors.New("bigint: malformed decimal numeral")
)
