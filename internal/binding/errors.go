package binding

import "errors"

// missingFilterError is returned at setup time when an expression has no
// itemsPerPage filter.
type missingFilterError struct{ expr string }

func (e missingFilterError) Error() string {
	return "pagination expression must set the itemsPerPage filter: " + e.expr
}

// ErrMissingFilterConfiguration constructs the setup-time error for expr.
func ErrMissingFilterConfiguration(expr string) error { return missingFilterError{expr: expr} }

// IsMissingFilterConfiguration reports whether err means the page size filter was omitted.
func IsMissingFilterConfiguration(err error) bool {
	var e missingFilterError
	return errors.As(err, &e)
}

// invalidExpressionError means the expression is not of the form "item in collection".
type invalidExpressionError struct{ expr string }

func (e invalidExpressionError) Error() string {
	return "expected pagination expression of the form 'item in collection', got: " + e.expr
}

// IsInvalidExpression reports whether err came from an unparseable expression.
func IsInvalidExpression(err error) bool {
	var e invalidExpressionError
	return errors.As(err, &e)
}
