package helper

import "testing"

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		total          int64
		page, perPage  int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{0, 1, 20, 1, false, false},
		{45, 1, 20, 3, true, false},
		{45, 3, 20, 3, false, true},
		{45, 2, 20, 3, true, true},
		{20, 1, 20, 1, false, false},
		{10, 0, 0, 1, false, false}, // invalid inputs normalized
	}
	for _, tt := range tests {
		p := BuildPagination(tt.total, tt.page, tt.perPage)
		if p.TotalPages != tt.wantTotalPages {
			t.Errorf("BuildPagination(%d,%d,%d).TotalPages = %d, want %d",
				tt.total, tt.page, tt.perPage, p.TotalPages, tt.wantTotalPages)
		}
		if p.HasNext != tt.wantHasNext || p.HasPrev != tt.wantHasPrev {
			t.Errorf("BuildPagination(%d,%d,%d) nav = next:%v prev:%v, want next:%v prev:%v",
				tt.total, tt.page, tt.perPage, p.HasNext, p.HasPrev, tt.wantHasNext, tt.wantHasPrev)
		}
	}
}
