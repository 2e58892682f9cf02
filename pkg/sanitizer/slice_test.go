package sanitizer

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeImages(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "trim whitespace",
			input: []string{" /img/a.jpg ", "https://cdn.example.com/b.jpg"},
			want:  []string{"/img/a.jpg", "https://cdn.example.com/b.jpg"},
		},
		{
			name:  "drop empty entries",
			input: []string{"", "  ", "/img/a.jpg"},
			want:  []string{"/img/a.jpg"},
		},
		{
			name:  "drop duplicates and keep first position",
			input: []string{"/img/b.jpg", "/img/a.jpg", " /img/b.jpg"},
			want:  []string{"/img/b.jpg", "/img/a.jpg"},
		},
		{
			name:  "case is significant",
			input: []string{"/img/A.jpg", "/img/a.jpg"},
			want:  []string{"/img/A.jpg", "/img/a.jpg"},
		},
		{
			name:  "nil input becomes empty slice",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeImages(tt.input)
			if got == nil {
				t.Fatal("NormalizeImages() returned nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeImages(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeStringSlice_CustomNormalizer(t *testing.T) {
	got := NormalizeStringSlice([]string{"a", "A", "b"}, strings.ToUpper)
	want := []string{"A", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeStringSlice() = %v, want %v", got, want)
	}
}
