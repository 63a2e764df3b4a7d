package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{name: "version", args: []string{"version"}, expectedExit: 0},
		{name: "scan without tree", args: []string{"scan"}, expectedExit: 1},
		{name: "scan with invalid tree", args: []string{"scan", "a/b", "--no-sync"}, expectedExit: 1},
		{name: "unknown command", args: []string{"frobnicate"}, expectedExit: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedExit, run(tt.args))
		})
	}
}
