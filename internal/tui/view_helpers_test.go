package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{
			name: "short value unchanged",
			in:   "Sport",
			max:  10,
			want: "Sport",
		},
		{
			name: "value at the limit unchanged",
			in:   "Scherma",
			max:  7,
			want: "Scherma",
		},
		{
			name: "long value gets ellipsis",
			in:   "Pallacanestro",
			max:  10,
			want: "Pallaca...",
		},
		{
			name: "multibyte value cut on rune boundary",
			in:   strings.Repeat("è", 10),
			max:  6,
			want: "èèè...",
		},
		{
			name: "tiny limit cut on rune boundary",
			in:   "èèèèè",
			max:  2,
			want: "èè",
		},
		{
			name: "non-positive limit unchanged",
			in:   "Pallanuoto",
			max:  0,
			want: "Pallanuoto",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitText(tt.in, tt.max)

			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got), "truncation must not split a rune")
		})
	}
}

func TestRenderFormTable_LabelsEveryKind(t *testing.T) {
	// Arrange
	bf, err := models.NewBaseField("Title", models.FieldTypeString)
	require.NoError(t, err)
	cf, err := models.NewCommonField("Notes", models.FieldTypeString, false)
	require.NoError(t, err)
	sf, err := models.NewSpecificField("TeamSize", models.FieldTypeInteger, true)
	require.NoError(t, err)

	// Act
	out := renderFormTable([]models.Field{bf, cf, sf})

	// Assert: every row carries its kind label.
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, models.KindBase.Label())
	assert.Contains(t, out, models.KindCommon.Label())
	assert.Contains(t, out, models.KindSpecific.Label())
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "TeamSize")
}

func TestRenderFormTable_Empty(t *testing.T) {
	assert.Equal(t, "(no fields)", renderFormTable(nil))
}
