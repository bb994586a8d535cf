package services

import (
	"fmt"
	"reflect"
	"testing"
)

func TestAppendCodeHistory(t *testing.T) {
	tests := []struct {
		name    string
		history []string
		code    string
		want    []string
	}{
		{
			name:    "append to empty",
			history: nil,
			code:    "MSOA-001",
			want:    []string{"MSOA-001"},
		},
		{
			name:    "append new code",
			history: []string{"MSOA-001"},
			code:    "SFSA-001",
			want:    []string{"MSOA-001", "SFSA-001"},
		},
		{
			name:    "re-appended code moves to the tail",
			history: []string{"MSOA-001", "SFSA-001"},
			code:    "MSOA-001",
			want:    []string{"SFSA-001", "MSOA-001"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := appendCodeHistory(tt.history, tt.code)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("appendCodeHistory(%v, %q) = %v, want %v", tt.history, tt.code, got, tt.want)
			}
		})
	}
}

func TestAppendCodeHistoryCap(t *testing.T) {
	var history []string
	for i := 1; i <= codeHistoryLimit+5; i++ {
		history = appendCodeHistory(history, fmt.Sprintf("MSOA-%03d", i))
	}

	if len(history) != codeHistoryLimit {
		t.Fatalf("history length = %d, want %d", len(history), codeHistoryLimit)
	}

	// Oldest entries dropped, newest kept in order
	if history[0] != fmt.Sprintf("MSOA-%03d", 6) {
		t.Errorf("history[0] = %q, want MSOA-006", history[0])
	}
	if history[len(history)-1] != fmt.Sprintf("MSOA-%03d", codeHistoryLimit+5) {
		t.Errorf("history tail = %q, want MSOA-%03d", history[len(history)-1], codeHistoryLimit+5)
	}
}
