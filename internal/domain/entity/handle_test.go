package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleBase(t *testing.T) {
	tests := []struct {
		name      string
		first     string
		last      string
		email     string
		expected  string
	}{
		{name: "names", first: "Ana", last: "Gomez", email: "x@y.z", expected: "ana.gomez"},
		{name: "strips disallowed characters", first: "José", last: "O'Neil", expected: "jos.oneil"},
		{name: "falls back to email", first: "Ana", email: "Ana_G+1@Mail.com", expected: "ana_g1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HandleBase(tt.first, tt.last, tt.email))
		})
	}
}

func TestHandleCandidate(t *testing.T) {
	assert.Equal(t, "ana.gomez", HandleCandidate("ana.gomez", 0))
	assert.Equal(t, "ana.gomez1", HandleCandidate("ana.gomez", 1))
}

func TestValidHandle(t *testing.T) {
	assert.True(t, ValidHandle("Ana.Gomez_1"))
	assert.False(t, ValidHandle("ana gomez"))
	assert.False(t, ValidHandle("ana-gomez"))
	assert.False(t, ValidHandle(""))
}
