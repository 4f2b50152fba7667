// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package key

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChain_Key(t *testing.T) {
	testCases := []struct {
		name  string
		chain Chain
		want  string
	}{
		{
			name:  "empty chain",
			chain: Chain{},
			want:  "",
		},
		{
			name:  "single name",
			chain: Chain{Name("a")},
			want:  "a",
		},
		{
			name:  "nested chain",
			chain: Chain{Name("b"), Chain{Name("c"), Name("d")}},
			want:  "b.c.d",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.chain.Key())
		})
	}
}

func TestPath(t *testing.T) {
	testCases := []struct {
		name string
		path string
		want Chain
	}{
		{
			name: "single segment",
			path: "a",
			want: Chain{Name("a")},
		},
		{
			name: "dotted path",
			path: "b.x",
			want: Chain{Name("b"), Name("x")},
		},
		{
			name: "empty segments are dropped",
			path: ".b..x.",
			want: Chain{Name("b"), Name("x")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Path(tc.path))
		})
	}
}
