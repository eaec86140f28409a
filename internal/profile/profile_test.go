package profile

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mapart "github.com/AK1089/minecraftMapArt"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/profiles/minecraft/Notch":
			io.WriteString(w, `{"id":"069a79f444e94726a5befca90e38aaf5","name":"Notch"}`)
		case "/users/profiles/minecraft/Broken":
			io.WriteString(w, `{"id":"123"}`)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLookup(t *testing.T) {
	c := New(newServer(t).URL, time.Second)
	id, err := c.Lookup(" Notch ")
	if err != nil {
		t.Fatal(err)
	}
	if id != "069a79f4-44e9-4726-a5be-fca90e38aaf5" {
		t.Errorf("id = %s", id)
	}
	for _, name := range []string{"", "Nobody", "Broken"} {
		if _, err := c.Lookup(name); err == nil {
			t.Errorf("Lookup(%q) succeeded", name)
		}
	}
}

func TestUUIDPlaceholder(t *testing.T) {
	c := New(newServer(t).URL, time.Second)
	for _, name := range []string{"", "Nobody"} {
		if got := c.UUID(name); got != mapart.PlaceholderUUID {
			t.Errorf("UUID(%q) = %s", name, got)
		}
	}
	if got := c.UUID("Notch"); got == mapart.PlaceholderUUID {
		t.Error("known player got the placeholder")
	}
}
