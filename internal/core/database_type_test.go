package core

import "testing"

func TestListOptionsSkipIsOneBased(t *testing.T) {
	cases := []struct {
		name string
		page int64
		size int64
		want int64
	}{
		{"first page skips nothing", 1, 20, 0},
		{"second page skips one page", 2, 20, 20},
		{"deep page", 5, 10, 40},
		{"zero page treated as first", 0, 20, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ListOptions{Page: tc.page, Size: tc.size}.Skip()
			if got != tc.want {
				t.Fatalf("skip: want %d got %d", tc.want, got)
			}
		})
	}
}
