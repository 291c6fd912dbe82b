package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestOffset(t *testing.T) {
	tests := []struct {
		name string
		page PageRequest
		want int
	}{
		{name: "first page starts at zero", page: PageRequest{Page: 1, PerPage: 10}, want: 0},
		{name: "third page skips two pages", page: PageRequest{Page: 3, PerPage: 20}, want: 40},
		{name: "zero page clamps to first", page: PageRequest{Page: 0, PerPage: 10}, want: 0},
		{name: "negative page clamps to first", page: PageRequest{Page: -3, PerPage: 10}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.Offset())
		})
	}
}

func TestAccountUpdateEmpty(t *testing.T) {
	assert.True(t, (&AccountUpdate{}).Empty())

	name := "Alice"
	assert.False(t, (&AccountUpdate{FirstName: &name}).Empty())
}
