package query

import "testing"

type document map[string]interface{}

func (d document) Field(key string) (interface{}, bool) {
	value, ok := d[key]
	return value, ok
}

func TestFilterOperators(t *testing.T) {
	doc := document{"id": 1, "weirdness": 9, "genre": "IDM"}

	tests := []struct {
		name   string
		filter *Filter
		want   bool
	}{
		{"nil filter", nil, true},
		{"empty filter", &Filter{}, true},
		{"eq int", &Filter{Root: FilterOperatorEq{Key: "id", Value: 1}}, true},
		{"eq int mismatch", &Filter{Root: FilterOperatorEq{Key: "id", Value: 2}}, false},
		{"eq mixed widths", &Filter{Root: FilterOperatorEq{Key: "id", Value: int64(1)}}, true},
		{"eq string", &Filter{Root: FilterOperatorEq{Key: "genre", Value: "IDM"}}, true},
		{"eq incomparable", &Filter{Root: FilterOperatorEq{Key: "genre", Value: 1}}, false},
		{"eq missing key", &Filter{Root: FilterOperatorEq{Key: "bpm", Value: 1}}, false},
		{"gte equal", &Filter{Root: FilterOperatorGte{Key: "weirdness", Value: 9}}, true},
		{"gte below", &Filter{Root: FilterOperatorGte{Key: "weirdness", Value: 8}}, true},
		{"gte above", &Filter{Root: FilterOperatorGte{Key: "weirdness", Value: 10}}, false},
		{"and all", &Filter{Root: FilterOperatorAnd{And: []IQuery{
			FilterOperatorEq{Key: "id", Value: 1},
			FilterOperatorGte{Key: "weirdness", Value: 5},
		}}}, true},
		{"and one fails", &Filter{Root: FilterOperatorAnd{And: []IQuery{
			FilterOperatorEq{Key: "id", Value: 1},
			FilterOperatorGte{Key: "weirdness", Value: 10},
		}}}, false},
		{"and empty", &Filter{Root: FilterOperatorAnd{}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(doc); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
