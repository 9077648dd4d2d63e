package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern(t *testing.T) {
	tests := []struct {
		name string
		term string
		want string
	}{
		{name: "plain term", term: "go", want: "%go%"},
		{name: "trims spaces", term: "  python ", want: "%python%"},
		{name: "escapes wildcards", term: "100%_off", want: `%100\%\_off%`},
		{name: "escapes backslash", term: `a\b`, want: `%a\\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, likePattern(tt.term))
		})
	}
}

func TestOrderExpr(t *testing.T) {
	assert.Equal(t, "courses.price ASC", orderExpr("courses.price", false))
	assert.Equal(t, "courses.price DESC", orderExpr("courses.price", true))
}
