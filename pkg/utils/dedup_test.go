package utils

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupNested(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "empty",
			in:   []string{},
			want: []string{},
		},
		{
			name: "unrelated directories are kept in order",
			in:   []string{"/g/b", "/g/a"},
			want: []string{"/g/b", "/g/a"},
		},
		{
			name: "ancestor before descendant",
			in:   []string{"/g/a", "/g/a/b/c"},
			want: []string{"/g/a/b/c"},
		},
		{
			name: "ancestor after descendant",
			in:   []string{"/g/a/b", "/g/c", "/g/a"},
			want: []string{"/g/a/b", "/g/c"},
		},
		{
			name: "siblings under a shared ancestor",
			in:   []string{"/g/m", "/g/m/x", "/g/m/y"},
			want: []string{"/g/m/x", "/g/m/y"},
		},
		{
			name: "duplicates collapse to the first",
			in:   []string{"/g/a", "/g/a", "/g/b"},
			want: []string{"/g/a", "/g/b"},
		},
		{
			name: "shared name prefix is not nesting",
			in:   []string{"/g/dir", "/g/dir_two"},
			want: []string{"/g/dir", "/g/dir_two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := fromSlash(tt.in)
			original := slices.Clone(in)

			got := DedupNested(in)

			assert.Equal(t, fromSlash(tt.want), got)
			assert.Equal(t, original, in, "input must not be modified")
		})
	}
}

func fromSlash(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.FromSlash(p)
	}
	return out
}
