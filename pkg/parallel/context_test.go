package parallel

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewContextHasUniqueID(t *testing.T) {
	first := NewContext()
	second := NewContext()

	if _, err := uuid.Parse(first.ID); err != nil {
		t.Fatalf("expected uuid, got %q: %v", first.ID, err)
	}

	if first.ID == second.ID {
		t.Errorf("expected distinct ids, both were %s", first.ID)
	}
}
