package article_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newsdesk/internal/handler/http/article"
	artUC "newsdesk/internal/usecase/article"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func doList(t *testing.T, handler article.ListHandler, target string) []article.DTO {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	var got []article.DTO
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return got
}

func newListHandler() article.ListHandler {
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }
	svc := newTestService(
		seedArticle(1, "افتتاح الملعب الجديد", "رياضة", 5, day(1)),
		seedArticle(2, "نتائج الانتخابات المحلية", "سياسة", 9, day(3)),
		seedArticle(3, "مهرجان المسرح السنوي", "ثقافة", 5, day(2)),
	)
	return article.ListHandler{Svc: svc, Logger: discardLogger()}
}

func TestListHandler_DefaultOrderIsNewestFirst(t *testing.T) {
	got := doList(t, newListHandler(), "/articles")

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	wantOrder := []int64{2, 3, 1}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Errorf("position %d: ID = %d, want %d", i, got[i].ID, want)
		}
	}
}

func TestListHandler_CategoryFilter(t *testing.T) {
	got := doList(t, newListHandler(), "/articles?category=رياضة")

	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("got %v, want only the sports article", got)
	}

	// "all" is the identity filter.
	if got := doList(t, newListHandler(), "/articles?category=all"); len(got) != 3 {
		t.Errorf("category=all returned %d articles, want 3", len(got))
	}
}

func TestListHandler_SearchFilter(t *testing.T) {
	got := doList(t, newListHandler(), "/articles?q=المسرح")

	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("got %v, want only the theater article", got)
	}
}

func TestListHandler_SortStability(t *testing.T) {
	// Articles 1 and 3 tie on views; ascending sort must keep input order.
	got := doList(t, newListHandler(), "/articles?sortBy=views&order=asc")

	wantOrder := []int64{1, 3, 2}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Errorf("position %d: ID = %d, want %d", i, got[i].ID, want)
		}
	}
}

func TestListHandler_UnknownSortKeyFallsBack(t *testing.T) {
	got := doList(t, newListHandler(), "/articles?sortBy=bogus&order=asc")

	// Unknown key means newest first, ignoring the requested direction.
	wantOrder := []int64{2, 3, 1}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Errorf("position %d: ID = %d, want %d", i, got[i].ID, want)
		}
	}
}

func TestListHandler_EmptyCollectionIsJSONArray(t *testing.T) {
	handler := article.ListHandler{Svc: newTestService(), Logger: discardLogger()}

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if body := rr.Body.String(); body != "[]\n" {
		t.Errorf("body = %q, want empty JSON array", body)
	}
}

func TestListHandler_StoreError(t *testing.T) {
	handler := article.ListHandler{
		Svc:    &artUC.Service{Repo: failingRepo{}},
		Logger: discardLogger(),
	}

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}
