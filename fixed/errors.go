package fixed

import "errors"

// ErrDivisionByZero is returned by Quo, and used as the panic value of Div
// and Rem, when the divisor is zero.
var ErrDivisionByZero = errors.New("fixed: division by zero")
