package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "a1m1n", want: "aimin"},
		{raw: "4dm1n", want: "admin"},
		{raw: "0123456789", want: "oizeasgtbg"},
		{raw: "John_Doe", want: "john_doe"},
		{raw: "H3LL0", want: "hello"},
		{raw: "", want: ""},
		{raw: "user name!", want: "user name!"},
		{raw: "ÜBER7", want: "übert"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestFoldCase_KeepsDigits(t *testing.T) {
	assert.Equal(t, "4dm1n", FoldCase("4DM1N"))
	assert.Equal(t, "alice_01", FoldCase("Alice_01"))
}
