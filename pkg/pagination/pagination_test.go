package pagination

import "testing"

func TestValidateClampsValues(t *testing.T) {
	cases := []struct {
		page, perPage         int
		wantPage, wantPerPage int
	}{
		{0, 0, 1, 15},
		{-5, -10, 1, 15},
		{2, 50, 2, 50},
		{1, 500, 1, 100},
	}

	for _, tc := range cases {
		params := &PaginationParams{Page: tc.page, PerPage: tc.perPage}
		params.Validate()
		if params.Page != tc.wantPage || params.PerPage != tc.wantPerPage {
			t.Errorf("Validate(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.perPage, params.Page, params.PerPage, tc.wantPage, tc.wantPerPage)
		}
	}
}

func TestOffset(t *testing.T) {
	params := &PaginationParams{Page: 3, PerPage: 15}
	if got := params.Offset(); got != 30 {
		t.Errorf("Offset() = %d, want 30", got)
	}
}

func TestNewPagination(t *testing.T) {
	pag := NewPagination(2, 15, 31)

	if pag.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", pag.TotalPages)
	}
	if !pag.HasNext {
		t.Error("page 2 of 3 should have a next page")
	}
	if !pag.HasPrev {
		t.Error("page 2 should have a previous page")
	}
}

func TestNewPaginationLastPage(t *testing.T) {
	pag := NewPagination(3, 15, 31)
	if pag.HasNext {
		t.Error("last page should not have a next page")
	}
}

func TestNewPaginationEmpty(t *testing.T) {
	pag := NewPagination(1, 15, 0)
	if pag.TotalPages != 0 || pag.HasNext || pag.HasPrev {
		t.Errorf("empty result pagination = %+v", pag)
	}
}
