package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{
			name:     "disjoint_ranges",
			a:        Span{File: 1, Start: 10, End: 15},
			b:        Span{File: 1, Start: 20, End: 30},
			expected: Span{File: 1, Start: 10, End: 30},
		},
		{
			name:     "contained",
			a:        Span{File: 1, Start: 10, End: 30},
			b:        Span{File: 1, Start: 15, End: 20},
			expected: Span{File: 1, Start: 10, End: 30},
		},
		{
			name:     "other_starts_earlier",
			a:        Span{File: 1, Start: 10, End: 15},
			b:        Span{File: 1, Start: 5, End: 12},
			expected: Span{File: 1, Start: 5, End: 15},
		},
		{
			name:     "different_files_ignored",
			a:        Span{File: 1, Start: 10, End: 15},
			b:        Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 10, End: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Cover(tt.b)
			if got != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpan_EmptyAndLen(t *testing.T) {
	sp := Span{File: 0, Start: 4, End: 4}
	if !sp.Empty() {
		t.Error("expected empty span")
	}
	sp.End = 9
	if sp.Empty() {
		t.Error("expected non-empty span")
	}
	if sp.Len() != 5 {
		t.Errorf("Len() = %d, want 5", sp.Len())
	}
}

func TestSpan_ZeroideToEnd(t *testing.T) {
	sp := Span{File: 3, Start: 10, End: 25}
	got := sp.ZeroideToEnd()
	expected := Span{File: 3, Start: 25, End: 25}
	if got != expected {
		t.Errorf("ZeroideToEnd() = %+v, want %+v", got, expected)
	}
	if !got.Empty() {
		t.Error("ZeroideToEnd() must produce an empty span")
	}
}
