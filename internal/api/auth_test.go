package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginIsFormEncoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q, want form encoding", ct)
		}
		if r.PostFormValue("username") != "admin" || r.PostFormValue("password") != "secret" {
			t.Errorf("form = %v", r.PostForm)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"access_token": "tok123", "token_type": "bearer", "admin_name": "Weddy"}`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	token, name, err := c.Login("admin", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "tok123" {
		t.Errorf("token = %q", token)
	}
	if name != "Weddy" {
		t.Errorf("name = %q", name)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		if _, err := w.Write([]byte(`{"detail": "Incorrect username or password"}`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, _, err := c.Login("admin", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Incorrect username or password" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestMe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/me" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"id": 1, "username": "admin", "full_name": "Weddy"}`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("tok"))
	admin, err := c.Me()
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if admin.Username != "admin" || admin.FullName != "Weddy" {
		t.Errorf("admin = %+v", admin)
	}
}
