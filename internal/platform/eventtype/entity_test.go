package eventtype

import (
	"strings"
	"testing"
	"time"
)

func TestUpdated_PreservesIDAndCreatedAt(t *testing.T) {
	created := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	original := EventType{
		ID:          "et-1",
		Name:        "Deploy",
		Description: "Deployment event",
		Active:      true,
		CreatedAt:   created,
		UpdatedAt:   created,
	}

	now := created.Add(time.Hour)
	updated := original.Updated("Deploy v2", "New description", false, now)

	if updated.ID != "et-1" {
		t.Errorf("Expected ID et-1, got %s", updated.ID)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Errorf("Expected createdAt preserved, got %v", updated.CreatedAt)
	}
	if !updated.UpdatedAt.Equal(now) {
		t.Errorf("Expected updatedAt %v, got %v", now, updated.UpdatedAt)
	}
	if updated.Name != "Deploy v2" || updated.Active {
		t.Errorf("Expected replaced fields, got %+v", updated)
	}

	// Original value untouched
	if original.Name != "Deploy" || !original.Active {
		t.Errorf("Original mutated: %+v", original)
	}
}

func TestValidateFields(t *testing.T) {
	cases := []struct {
		name        string
		description string
		wantField   string
	}{
		{"Deploy", "Deployment event", ""},
		{"", "desc", "name"},
		{"   ", "desc", "name"},
		{strings.Repeat("a", 100), "", ""},
		{strings.Repeat("a", 101), "", "name"},
		{"Deploy", strings.Repeat("d", 500), ""},
		{"Deploy", strings.Repeat("d", 501), "description"},
	}

	for _, c := range cases {
		field, _ := ValidateFields(c.name, c.description)
		if field != c.wantField {
			t.Errorf("ValidateFields(%.10q, len %d desc) field = %q, want %q",
				c.name, len(c.description), field, c.wantField)
		}
	}
}
