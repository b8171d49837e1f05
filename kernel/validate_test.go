package kernel

import "testing"

func TestValidateLengths(t *testing.T) {
	tests := []struct {
		name    string
		lengths []int
		want    bool
	}{
		{"none", nil, true},
		{"single", []int{3}, true},
		{"pair equal", []int{3, 3}, true},
		{"pair differ", []int{3, 4}, false},
		{"four equal", []int{0, 0, 0, 0}, true},
		{"last differs", []int{5, 5, 5, 4}, false},
		{"first differs", []int{2, 5, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateLengths(tt.lengths...); got != tt.want {
				t.Fatalf("ValidateLengths(%v) = %v, want %v", tt.lengths, got, tt.want)
			}
		})
	}
}
