package arrays

import (
	"reflect"
	"testing"
)

func TestFilterKeepsOrder(t *testing.T) {
	got := Filter([]int{9, 3, 7, 8, 1}, func(v int) bool { return v >= 7 })
	want := []int{9, 7, 8}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFilterEmptyResultIsNotNil(t *testing.T) {
	got := Filter([]int{1, 2}, func(v int) bool { return false })
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFindIndex(t *testing.T) {
	items := []int{4, 5, 6}

	if idx := FindIndex(items, func(v int) bool { return v == 5 }); idx != 1 {
		t.Errorf("expected index 1, got %d", idx)
	}

	if idx := FindIndex(items, func(v int) bool { return v == 42 }); idx != -1 {
		t.Errorf("expected index -1, got %d", idx)
	}
}
