package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePlayerName(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{input: "Shira", want: "Shira", ok: true},
		{input: "p1ayer42", want: "p1ayer42", ok: true},
		{input: "  Bob ", ok: false},
		{input: " Bob", ok: false},
		{input: "Bob ", ok: false},
		{input: "\tBob", ok: false},
		{input: "Z", want: "Z", ok: true},
		{input: "", ok: false},
		{input: "   ", ok: false},
		{input: "1player", ok: false},
		{input: "bad name", ok: false},
		{input: "dash-ed", ok: false},
		{input: "שירה", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ValidatePlayerName(tt.input)
			if !tt.ok {
				var ine *InvalidNameError
				assert.ErrorAs(t, err, &ine)
				assert.Empty(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
