package paginator

import "testing"

func TestPaginateQuery_Adjust(t *testing.T) {
	tests := []struct {
		name      string
		query     PaginateQuery
		wantPage  int
		wantLimit int64
	}{
		{name: "defaults applied", query: PaginateQuery{}, wantPage: 1, wantLimit: DefaultLimit},
		{name: "negative values", query: PaginateQuery{Page: -2, Limit: -5}, wantPage: 1, wantLimit: DefaultLimit},
		{name: "limit capped", query: PaginateQuery{Page: 3, Limit: 500}, wantPage: 3, wantLimit: MaxLimit},
		{name: "valid untouched", query: PaginateQuery{Page: 2, Limit: 20}, wantPage: 2, wantLimit: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.query.Adjust()
			if tt.query.Page != tt.wantPage {
				t.Errorf("Adjust() page = %d, want %d", tt.query.Page, tt.wantPage)
			}
			if tt.query.Limit != tt.wantLimit {
				t.Errorf("Adjust() limit = %d, want %d", tt.query.Limit, tt.wantLimit)
			}
		})
	}
}

func TestPaginateQuery_Offset(t *testing.T) {
	q := PaginateQuery{Page: 3, Limit: 15}
	if got := q.Offset(); got != 30 {
		t.Errorf("Offset() = %d, want 30", got)
	}
}

func TestPaginator_TotalPages(t *testing.T) {
	p := Paginator{Total: 101, PerPage: 15, CurrentPage: 1}
	if got := p.TotalPages(); got != 7 {
		t.Errorf("TotalPages() = %d, want 7", got)
	}
	if !p.HasNextPage() {
		t.Error("HasNextPage() = false, want true")
	}
	if p.HasPreviousPage() {
		t.Error("HasPreviousPage() = true, want false")
	}
}
