package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/WeddyNkatha265/rental-management/internal/house"
)

func TestBearerHeaderAttached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/houses/" {
			t.Errorf("path = %q, want /api/houses/", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer testtoken" {
			t.Errorf("Authorization = %q, want Bearer testtoken", r.Header.Get("Authorization"))
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header")
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode([]*house.House{{ID: 1, Name: "Bedsitter B1"}}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("testtoken"))
	houses, err := c.ListHouses()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(houses) != 1 || houses[0].Name != "Bedsitter B1" {
		t.Errorf("unexpected houses: %+v", houses)
	}
}

func TestEmptyTokenSendsUnauthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("Authorization = %q, want none", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode([]*house.House{}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken(""))
	if _, err := c.ListHouses(); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestServerDetailSurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if _, err := w.Write([]byte(`{"detail": "Cannot delete an occupied house. Remove the tenant first."}`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("testtoken"))
	err := c.DeleteHouse(1)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Cannot delete an occupied house. Remove the tenant first." {
		t.Errorf("error = %q", err.Error())
	}
}

func TestGenericFallbackWithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("testtoken"))
	err := c.DeleteHouse(1)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "server error: Internal Server Error" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestUnauthorizedInvokesHookOnceAndPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		if _, err := w.Write([]byte(`{"detail": "Could not validate credentials"}`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("stale"))
	calls := 0
	c.OnUnauthorized(func() { calls++ })

	_, err := c.ListHouses()
	if err == nil {
		t.Fatal("expected error to reach the caller even though the hook ran")
	}
	if !IsUnauthorized(err) {
		t.Errorf("expected a 401 API error, got %v", err)
	}
	if err.Error() != "Could not validate credentials" {
		t.Errorf("error = %q", err.Error())
	}
	if calls != 1 {
		t.Errorf("hook called %d times, want 1", calls)
	}
}

func TestNonUnauthorizedErrorSkipsHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("testtoken"))
	calls := 0
	c.OnUnauthorized(func() { calls++ })

	if _, err := c.GetHouse(99); err == nil {
		t.Fatal("expected error")
	}
	if calls != 0 {
		t.Errorf("hook called %d times, want 0", calls)
	}
}

func TestCreateHouseSendsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %q", r.Header.Get("Content-Type"))
		}
		var form house.Form
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if form.Name != "Bedsitter B1" || form.RentAmount != 8000 {
			t.Errorf("form = %+v", form)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(&house.House{ID: 7, Name: form.Name, Type: form.Type, RentAmount: form.RentAmount}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("testtoken"))
	h, err := c.CreateHouse(&house.Form{Name: "Bedsitter B1", Type: house.Bedsitter, RentAmount: 8000})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if h.ID != 7 {
		t.Errorf("id = %d, want 7", h.ID)
	}
}
