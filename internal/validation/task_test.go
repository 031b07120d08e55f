package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTask(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		status      string
		wantField   string
	}{
		{name: "valid minimal task", title: "Buy milk"},
		{name: "valid with status", title: "Buy milk", status: "IN_PROGRESS"},
		{name: "valid with description", title: "Buy milk", description: "2 liters"},
		{name: "empty title", title: "", wantField: "title"},
		{name: "title too long", title: strings.Repeat("t", 201), wantField: "title"},
		{name: "description too long", title: "Buy milk", description: strings.Repeat("d", 2001), wantField: "description"},
		{name: "unknown status", title: "Buy milk", status: "DONE", wantField: "status"},
		{name: "lowercase status", title: "Buy milk", status: "pending", wantField: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateTask(tt.title, tt.description, tt.status)

			if tt.wantField == "" {
				assert.True(t, errs.Empty())
				return
			}

			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}
}
