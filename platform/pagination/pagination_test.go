package pagination

import "testing"

func TestCalculateMeta(t *testing.T) {
	got := CalculateMeta(15, 1, 10)
	want := Meta{Page: 1, Limit: 10, Total: 15, TotalPages: 2}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestCalculateMetaEdges(t *testing.T) {
	cases := []struct {
		total, page, limit, pages int
	}{
		{0, 1, 10, 0},
		{10, 1, 10, 1},
		{11, 2, 10, 2},
		{5, 1, 0, 0},
	}
	for _, tc := range cases {
		if got := CalculateMeta(tc.total, tc.page, tc.limit).TotalPages; got != tc.pages {
			t.Fatalf("total=%d limit=%d: expected %d pages, got %d", tc.total, tc.limit, tc.pages, got)
		}
	}
}

func TestNewDefaultsAndCaps(t *testing.T) {
	p := New(0, 0)
	if p.Page != 1 || p.Limit != 10 {
		t.Fatalf("expected defaults 1/10, got %+v", p)
	}
	if New(3, 500).Limit != MaxLimit {
		t.Fatal("expected limit to be capped")
	}
	if New(3, 20).Offset() != 40 {
		t.Fatalf("expected offset 40, got %d", New(3, 20).Offset())
	}
}
