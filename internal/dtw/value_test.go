package dtw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "integral float drops the fraction", in: "5.0", want: "5"},
		{name: "real fraction is preserved", in: "5.5", want: "5.5"},
		{name: "blank stays blank", in: "", want: ""},
		{name: "whitespace only is blank", in: "   ", want: ""},
		{name: "plain integer untouched", in: "10", want: "10"},
		{name: "text code untouched", in: "SO1001", want: "SO1001"},
		{name: "leading zeros kept on text", in: "007", want: "007"},
		{name: "surrounding whitespace trimmed", in: "  C001 ", want: "C001"},
		{name: "trailing zeros after point collapse", in: "20260115.0", want: "20260115"},
		{name: "dotted non-numeric untouched", in: "1.2.3", want: "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FieldValue(tt.in))
		})
	}
}

func TestFieldValueOrDefault(t *testing.T) {
	assert.Equal(t, "9", FieldValueOrDefault("", "9"))
	assert.Equal(t, "9", FieldValueOrDefault("  ", "9"))
	assert.Equal(t, "3", FieldValueOrDefault("3", "9"))
	assert.Equal(t, "3", FieldValueOrDefault("3.0", "9"))
}
