package pagekit

import "testing"

func Test_IsClampedPageSizeMax(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		max      int
		want     int
		inBounds bool
	}{
		{"zero clamps to min", 0, 50, 1, false},
		{"negative clamps to min", -10, 50, 1, false},
		{"within max unchanged", 7, 50, 7, true},
		{"equal min unchanged", 1, 50, 1, true},
		{"equal max unchanged", 50, 50, 50, true},
		{"above max clamped", 51, 50, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, inBounds := IsClampedPageSizeMax(tt.size, tt.max)
			if got != tt.want || inBounds != tt.inBounds {
				t.Errorf("%s: got=(%d,%v) want=(%d,%v)", tt.name, got, inBounds, tt.want, tt.inBounds)
			}
		})
	}
}

func Test_ClampPageSize(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"zero -> min", 0, MinPageSize},
		{"negative -> min", -1, MinPageSize},
		{"clamp to MaxPageSize", MaxPageSize + 1, MaxPageSize},
		{"keep when ok", 17, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPageSize(tt.size); got != tt.want {
				t.Errorf("%s: got %d want %d", tt.name, got, tt.want)
			}
		})
	}
}

func Test_ClampPageIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  int
	}{
		{"negative -> first page", -3, FirstPage},
		{"zero unchanged", 0, 0},
		{"positive unchanged", 12, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPageIndex(tt.index); got != tt.want {
				t.Errorf("%s: got %d want %d", tt.name, got, tt.want)
			}
		})
	}
}
