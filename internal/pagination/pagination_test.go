package pagination

import "testing"

func TestPageSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	t.Run("defaults_apply", func(t *testing.T) {
		resp := PageSlice(items, PageRequest{})
		if resp.Page != 1 || resp.PageSize != 20 {
			t.Errorf("expected default paging, got page %d size %d", resp.Page, resp.PageSize)
		}
		if len(resp.Data) != 5 || resp.TotalItems != 5 || resp.TotalPages != 1 {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("middle_page", func(t *testing.T) {
		resp := PageSlice(items, PageRequest{Page: 2, PageSize: 2})
		if len(resp.Data) != 2 || resp.Data[0] != 3 || resp.Data[1] != 4 {
			t.Errorf("expected [3 4], got %v", resp.Data)
		}
		if resp.TotalItems != 5 || resp.TotalPages != 3 {
			t.Errorf("unexpected totals: %+v", resp)
		}
	})

	t.Run("last_partial_page", func(t *testing.T) {
		resp := PageSlice(items, PageRequest{Page: 3, PageSize: 2})
		if len(resp.Data) != 1 || resp.Data[0] != 5 {
			t.Errorf("expected [5], got %v", resp.Data)
		}
	})

	t.Run("page_past_the_end_is_empty", func(t *testing.T) {
		resp := PageSlice(items, PageRequest{Page: 10, PageSize: 2})
		if len(resp.Data) != 0 {
			t.Errorf("expected empty page, got %v", resp.Data)
		}
		if resp.TotalItems != 5 {
			t.Errorf("expected total preserved, got %d", resp.TotalItems)
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		resp := PageSlice([]int{}, PageRequest{})
		if resp.Data == nil || len(resp.Data) != 0 || resp.TotalPages != 0 {
			t.Errorf("unexpected response: %+v", resp)
		}
	})
}
