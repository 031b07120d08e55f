package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name      string
		catName   string
		color     string
		wantField string
	}{
		{name: "valid with color", catName: "Work", color: "#ff0000"},
		{name: "valid short hex", catName: "Work", color: "#f00"},
		{name: "valid without color", catName: "Work"},
		{name: "empty name", catName: "", wantField: "name"},
		{name: "name too long", catName: strings.Repeat("n", 101), wantField: "name"},
		{name: "color without hash", catName: "Work", color: "ff0000", wantField: "color"},
		{name: "color not hex", catName: "Work", color: "#zzzzzz", wantField: "color"},
		{name: "color wrong length", catName: "Work", color: "#ff00", wantField: "color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCategory(tt.catName, tt.color)

			if tt.wantField == "" {
				assert.True(t, errs.Empty())
				return
			}

			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}
}
