package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	bettererrors "github.com/xtuc/better-errors"
)

func TestWarnWith(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"plain error", errors.New("disk full")},
		{"error chain", bettererrors.New("Could not write record").With(bettererrors.NewFromErr(errors.New("disk full")))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() { WarnWith(tt.err) })
		})
	}
}
