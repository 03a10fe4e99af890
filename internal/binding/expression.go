package binding

import (
	"regexp"
	"strings"
)

var (
	repeatPattern = regexp.MustCompile(`^\s*([\s\S]+?)\s+in\s+([\s\S]+?)(?:\s+as\s+([\s\S]+?))?(?:\s+track\s+by\s+([\s\S]+?))?\s*$`)
	filterPattern = regexp.MustCompile(`\|\s*itemsPerPage\s*:\s*`)
	// filter carrying both a page size and an id argument
	filterWithID = regexp.MustCompile(`\|\s*itemsPerPage\s*:[^|]*:[^|]*`)
	// filter name plus its first argument
	filterHead = regexp.MustCompile(`\|\s*itemsPerPage\s*:\s*[^|\s]*`)
)

// Expression is a parsed repeat expression such as
//
//	user in users | itemsPerPage: 10 : 'admins' as shown track by user.id
type Expression struct {
	Raw string
	// Item is the loop variable.
	Item string
	// Collection is the collection expression with the itemsPerPage filter removed.
	Collection string
	// PageSize is the unevaluated first filter argument.
	PageSize string
	// ID is the instance id given as the second filter argument, unquoted.
	ID      string
	Alias   string
	TrackBy string
}

// ParseExpression parses expr. An expression without the itemsPerPage filter
// fails with a missing filter configuration error.
func ParseExpression(expr string) (Expression, error) {
	m := repeatPattern.FindStringSubmatch(expr)
	if m == nil {
		return Expression{}, invalidExpressionError{expr: expr}
	}
	rhs := m[2]
	loc := filterPattern.FindStringIndex(rhs)
	if loc == nil {
		return Expression{}, ErrMissingFilterConfiguration(expr)
	}

	// the filter arguments run until the next filter or the end of the collection part
	argsEnd := len(rhs)
	if i := strings.IndexByte(rhs[loc[1]:], '|'); i >= 0 {
		argsEnd = loc[1] + i
	}
	args := strings.Split(rhs[loc[1]:argsEnd], ":")

	collection := strings.TrimSpace(rhs[:loc[0]])
	if rest := strings.TrimSpace(rhs[argsEnd:]); rest != "" {
		collection += " " + rest
	}

	e := Expression{
		Raw:        expr,
		Item:       strings.TrimSpace(m[1]),
		Collection: collection,
		PageSize:   strings.TrimSpace(args[0]),
		Alias:      strings.TrimSpace(m[3]),
		TrackBy:    strings.TrimSpace(m[4]),
	}
	if len(args) > 1 {
		e.ID = unquote(strings.TrimSpace(args[1]))
	}
	return e, nil
}

// WithID returns the raw expression with id added as the filter's second
// argument. The expression is unchanged when id is defaultID or the filter
// already names an id.
func (e Expression) WithID(id, defaultID string) string {
	if id == defaultID || filterWithID.MatchString(e.Raw) {
		return e.Raw
	}
	loc := filterHead.FindStringIndex(e.Raw)
	if loc == nil {
		return e.Raw
	}
	return e.Raw[:loc[1]] + " : '" + id + "'" + e.Raw[loc[1]:]
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
