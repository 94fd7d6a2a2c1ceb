// Package query describes filters over store items and evaluates them
// in memory.
package query

// Description:
//
//	An item that exposes its fields to the filter evaluation.
type Document interface {

	// Field returns the value stored under key, and whether the key exists.
	Field(key string) (interface{}, bool)
}

// Description:
//
//	A node in a filter tree.
type IQuery interface {

	// Matches reports whether the document satisfies this node.
	Matches(document Document) bool
}

// Description:
//
//	The root of a filter. A filter without a root matches everything.
type Filter struct {
	Root IQuery
}

// Description:
//
//	Evaluates the filter against a document.
//
// Parameters:
//
//	document The document to test.
//
// Returns:
//
//	Whether the document satisfies the filter.
func (filter *Filter) Matches(document Document) bool {
	if filter == nil || filter.Root == nil {
		return true
	}

	return filter.Root.Matches(document)
}

// Description:
//
//	Matches documents whose field equals the value.
type FilterOperatorEq struct {
	Key   string
	Value interface{}
}

// Description:
//
//	Evaluates the operator against a document.
//
// Parameters:
//
//	document The document to test.
//
// Returns:
//
//	Whether the document matches.
func (operator FilterOperatorEq) Matches(document Document) bool {
	value, ok := document.Field(operator.Key)
	if !ok {
		return false
	}

	cmp, ok := compare(value, operator.Value)
	return ok && cmp == 0
}

// Description:
//
//	Matches documents whose field is greater than or equal to the value.
type FilterOperatorGte struct {
	Key   string
	Value interface{}
}

// Description:
//
//	Evaluates the operator against a document.
//
// Parameters:
//
//	document The document to test.
//
// Returns:
//
//	Whether the document matches.
func (operator FilterOperatorGte) Matches(document Document) bool {
	value, ok := document.Field(operator.Key)
	if !ok {
		return false
	}

	cmp, ok := compare(value, operator.Value)
	return ok && cmp >= 0
}

// Description:
//
//	Matches documents satisfying every child. An empty list matches all.
type FilterOperatorAnd struct {
	And []IQuery
}

// Description:
//
//	Evaluates the operator against a document.
//
// Parameters:
//
//	document The document to test.
//
// Returns:
//
//	Whether the document matches.
func (operator FilterOperatorAnd) Matches(document Document) bool {
	for _, child := range operator.And {
		if !child.Matches(document) {
			return false
		}
	}

	return true
}

// compare orders two values of a comparable kind. Integers of any width
// compare with each other; strings compare with strings. Other
// combinations are not comparable.
func compare(left interface{}, right interface{}) (int, bool) {
	if l, ok := toInt64(left); ok {
		r, ok := toInt64(right)
		if !ok {
			return 0, false
		}

		switch {
		case l < r:
			return -1, true
		case l > r:
			return 1, true
		default:
			return 0, true
		}
	}

	if l, ok := left.(string); ok {
		r, ok := right.(string)
		if !ok {
			return 0, false
		}

		switch {
		case l < r:
			return -1, true
		case l > r:
			return 1, true
		default:
			return 0, true
		}
	}

	return 0, false
}

func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	default:
		return 0, false
	}
}
