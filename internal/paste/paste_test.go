package paste

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestUpload(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/documents" {
			http.NotFound(w, r)
			return
		}
		b, _ := io.ReadAll(r.Body)
		got = string(b)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"key":"abcdef"}`)
	}))
	defer srv.Close()

	key, err := New(srv.URL+"/", time.Second).Upload("@fast\n")
	if err != nil {
		t.Fatal(err)
	}
	if key != "abcdef" {
		t.Errorf("key = %q", key)
	}
	if got != "@fast\n" {
		t.Errorf("server got %q", got)
	}
}

func TestUploadRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too large", http.StatusRequestEntityTooLarge)
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Upload("x")
	if !errors.Is(err, ErrRejected) {
		t.Errorf("err = %v, want ErrRejected", err)
	}
}

func TestUploadNoKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	if _, err := New(srv.URL, time.Second).Upload("x"); err == nil {
		t.Error("expected error")
	}
}
