package vault

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestSimulated(t *testing.T) {
	v := &Simulated{}
	key, err := v.Push(context.Background(), "backup", []byte(`{"inventory":[]}`))
	if err != nil {
		t.Fatalf("Push() error: %v", err)
	}
	if !strings.HasPrefix(key, KeyPrefix) || len(key) != len(KeyPrefix)+6 || strings.ToUpper(key) != key {
		t.Errorf("Push() key = %q, want %sXXXXXX", key, KeyPrefix)
	}
	if string(v.Pushed[key]) != `{"inventory":[]}` {
		t.Errorf("document not kept under %s", key)
	}
}

func TestSimulatedCanceled(t *testing.T) {
	v := &Simulated{Delay: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := v.Push(ctx, "backup", nil); err == nil {
		t.Error("Push() on a canceled context succeeded")
	}
}

func TestMailtoLink(t *testing.T) {
	doc := strings.Repeat("a", 2000)
	link := MailtoLink([]byte(doc))
	if !strings.HasPrefix(link, "mailto:?") {
		t.Fatalf("MailtoLink() = %q", link[:20])
	}
	q, err := url.ParseQuery(strings.TrimPrefix(link, "mailto:?"))
	if err != nil {
		t.Fatal(err)
	}
	if got := q.Get("subject"); got != "Biashara Master Data Backup" {
		t.Errorf("subject = %q", got)
	}
	body := q.Get("body")
	if strings.Count(body, "a") != mailBodyLimit || !strings.HasSuffix(body, "...") {
		t.Errorf("body holds %d characters of the document, want %d", strings.Count(body, "a"), mailBodyLimit)
	}
	if strings.Contains(link, "+") {
		t.Errorf("spaces are encoded as +: %s", link[:60])
	}
}

func TestHTTP(t *testing.T) {
	var gotName, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotName = r.Header.Get("X-Backup-Name")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"key": "K-42"})
	}))
	defer srv.Close()

	key, err := NewHTTP(srv.URL, nil).Push(context.Background(), "daily", []byte(`{"sales":[]}`))
	if err != nil {
		t.Fatalf("Push() error: %v", err)
	}
	if key != "K-42" || gotName != "daily" || gotBody != `{"sales":[]}` {
		t.Errorf("Push() = %q, server got name %q body %q", key, gotName, gotBody)
	}
}

func TestHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusBadRequest)
	}))
	defer srv.Close()
	if _, err := NewHTTP(srv.URL, nil).Push(context.Background(), "daily", []byte(`{}`)); err == nil {
		t.Error("Push() succeeded on a 400 answer")
	}
	if _, err := NewHTTP("", nil).Push(context.Background(), "daily", nil); err == nil {
		t.Error("Push() succeeded without url")
	}
}

func TestNewMongoInvalidURI(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := NewMongo(ctx, "not-a-mongo-uri", "biashara", nil); err == nil {
		t.Error("NewMongo() succeeded with an invalid uri")
	}
}

func TestValues(t *testing.T) {
	got := Values([][]string{{"SALE", "Dress"}, {}})
	if len(got) != 2 || got[0][1] != "Dress" || len(got[1]) != 0 {
		t.Errorf("Values() = %v", got)
	}
}
