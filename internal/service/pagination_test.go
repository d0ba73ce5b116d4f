package service

import "testing"

func TestHasMorePages(t *testing.T) {
	tests := []struct {
		name     string
		returned int
		pageSize int
		want     bool
	}{
		{"full page", 10, 10, true},
		{"short page", 7, 10, false},
		{"empty page", 0, 10, false},
		{"zero page size", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasMorePages(tt.returned, tt.pageSize); got != tt.want {
				t.Errorf("HasMorePages(%d, %d) = %v, want %v", tt.returned, tt.pageSize, got, tt.want)
			}
		})
	}
}
