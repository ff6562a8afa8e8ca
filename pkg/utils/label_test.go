package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeLabel(t *testing.T) {
	tests := []struct {
		name     string
		existing Label
		incoming Label
		want     Label
	}{
		{
			name:     "empty existing takes incoming",
			incoming: RecallLabel("nearby"),
			want:     RecallLabel("nearby"),
		},
		{
			name:     "empty incoming keeps existing",
			existing: RecallLabel("nearby"),
			want:     RecallLabel("nearby"),
		},
		{
			name:     "identical labels are not duplicated",
			existing: RecallLabel("nearby"),
			incoming: RecallLabel("nearby"),
			want:     RecallLabel("nearby"),
		},
		{
			name:     "values and sources accumulate",
			existing: RecallLabel("decision_tree"),
			incoming: Label{Value: "nearby", Source: "session"},
			want:     Label{Value: "decision_tree|nearby", Source: "recall,session"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeLabel(tt.existing, tt.incoming))
		})
	}
}
