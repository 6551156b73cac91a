package quorumsim

import (
	"fmt"
	"testing"
)

func TestQuorumSize(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{size: 0, want: 0},
		{size: 1, want: 1},
		{size: 2, want: 2},
		{size: 3, want: 2},
		{size: 4, want: 3},
		{size: 5, want: 4},
		{size: 6, want: 4},
		{size: 7, want: 5},
		{size: 9, want: 6},
		{size: 10, want: 7},
		{size: 12, want: 8},
		{size: 16, want: 11},
		{size: 20, want: 14}, // 13.33 rounds up
		{size: 21, want: 14},
		{size: 30, want: 20},
		{size: 100, want: 67},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("size=%d", tt.size), func(t *testing.T) {
			if got := QuorumSize(tt.size); got != tt.want {
				t.Errorf("QuorumSize(%d) = %d; want %d", tt.size, got, tt.want)
			}
		})
	}
}

func TestReachedQuorum(t *testing.T) {
	tests := []struct {
		approvals int
		size      int
		want      bool
	}{
		{approvals: 2, size: 3, want: true},
		{approvals: 1, size: 3, want: false},
		{approvals: 13, size: 20, want: false},
		{approvals: 14, size: 20, want: true},
		{approvals: 2, size: 3, want: true},
		{approvals: 4, size: 6, want: true},
		{approvals: 3, size: 6, want: false},
		{approvals: 0, size: 0, want: true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.approvals, tt.size), func(t *testing.T) {
			if got := ReachedQuorum(tt.approvals, tt.size); got != tt.want {
				t.Errorf("ReachedQuorum(%d, %d) = %v; want %v", tt.approvals, tt.size, got, tt.want)
			}
		})
	}
}
