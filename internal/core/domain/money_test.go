package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyDisplay(t *testing.T) {
	tests := []struct {
		amount Money
		want   string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{50, "0.50"},
		{1050, "10.50"},
		{1000, "10.00"},
		{123456789, "1234567.89"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, test.amount.Display())
	}
}
