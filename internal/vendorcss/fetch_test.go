package vendorcss

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/flex.scss", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("@mixin flex { display: flex; }\n"))
	})
	mux.HandleFunc("/media.scss", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("@mixin mq {}\n"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch(t *testing.T) {
	srv := newServer(t)
	dir := t.TempDir()

	results := NewFetcher(5*time.Second).Fetch(context.Background(), dir, []Resource{
		{Name: "_flex.scss", URL: srv.URL + "/flex.scss"},
		{Name: "_missing.scss", URL: srv.URL + "/missing.scss"},
		{Name: "_media.scss", URL: srv.URL + "/media.scss"},
	})

	if len(results) != 3 {
		t.Fatalf("Fetch() returned %d results, want 3", len(results))
	}

	wantOutcomes := []Outcome{Populated, Failed, Populated}
	for i, want := range wantOutcomes {
		if results[i].Outcome != want {
			t.Errorf("results[%d].Outcome = %v, want %v (err: %v)", i, results[i].Outcome, want, results[i].Err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "_flex.scss"))
	if err != nil {
		t.Fatalf("flex mixins not written: %v", err)
	}
	if string(data) != "@mixin flex { display: flex; }\n" {
		t.Errorf("body should be written verbatim, got %q", string(data))
	}
	if results[0].Bytes != int64(len(data)) {
		t.Errorf("Bytes = %d, want %d", results[0].Bytes, len(data))
	}

	if _, err := os.Stat(filepath.Join(dir, "_missing.scss")); err == nil {
		t.Error("failed resource should not create a file")
	}

	var fetchErr *FetchError
	if !errors.As(results[1].Err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %T", results[1].Err)
	}
	if !strings.HasPrefix(fetchErr.Error(), "Could not populate resource: _missing.scss") {
		t.Errorf("Error() = %q", fetchErr.Error())
	}
}

func TestFetch_UpdateAndKeepOnFailure(t *testing.T) {
	srv := newServer(t)
	dir := t.TempDir()

	for _, name := range []string{"_flex.scss", "_stale.scss"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("old"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	results := NewFetcher(0).Fetch(context.Background(), dir, []Resource{
		{Name: "_flex.scss", URL: srv.URL + "/flex.scss"},
		{Name: "_stale.scss", URL: srv.URL + "/gone.scss"},
	})

	if results[0].Outcome != Updated {
		t.Errorf("existing file should be reported Updated, got %v", results[0].Outcome)
	}
	if results[1].Outcome != Failed {
		t.Fatalf("404 should fail, got %v", results[1].Outcome)
	}
	if !strings.HasPrefix(results[1].Err.Error(), "Unable to update resource") {
		t.Errorf("Error() = %q", results[1].Err.Error())
	}

	data, err := os.ReadFile(filepath.Join(dir, "_stale.scss"))
	if err != nil || string(data) != "old" {
		t.Errorf("previous file should be kept on failure, got %q (%v)", string(data), err)
	}
}

func TestFetch_Unreachable(t *testing.T) {
	srv := newServer(t)
	url := srv.URL
	srv.Close()

	results := NewFetcher(time.Second).Fetch(context.Background(), t.TempDir(), []Resource{
		{Name: "_flex.scss", URL: url + "/flex.scss"},
	})
	if results[0].Outcome != Failed {
		t.Errorf("unreachable server should fail, got %v", results[0].Outcome)
	}
}

func TestFetch_OrderWithConcurrency(t *testing.T) {
	srv := newServer(t)
	dir := t.TempDir()

	var resources []Resource
	for i := 0; i < 10; i++ {
		path := "/flex.scss"
		if i%2 == 1 {
			path = "/media.scss"
		}
		resources = append(resources, Resource{Name: "_r" + strconv.Itoa(i) + ".scss", URL: srv.URL + path})
	}

	for _, limit := range []int{0, 1, 3} {
		f := NewFetcher(5 * time.Second)
		f.Concurrency = limit
		results := f.Fetch(context.Background(), dir, resources)
		if len(results) != len(resources) {
			t.Fatalf("limit %d: got %d results, want %d", limit, len(results), len(resources))
		}
		for i, r := range results {
			if r.Resource != resources[i] {
				t.Errorf("limit %d: results[%d] is %s, want %s", limit, i, r.Resource.Name, resources[i].Name)
			}
			if r.Err != nil {
				t.Errorf("limit %d: results[%d] failed: %v", limit, i, r.Err)
			}
		}
	}
}

func TestFetch_DefaultIsSequential(t *testing.T) {
	var inFlight, peak atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(srv.Close)

	var resources []Resource
	for i := 0; i < 4; i++ {
		resources = append(resources, Resource{Name: "_r" + strconv.Itoa(i) + ".scss", URL: srv.URL + "/r"})
	}

	f := NewFetcher(5 * time.Second)
	if f.Concurrency != 1 {
		t.Fatalf("NewFetcher concurrency = %d, want 1", f.Concurrency)
	}
	f.Fetch(context.Background(), t.TempDir(), resources)

	if got := peak.Load(); got != 1 {
		t.Errorf("peak concurrent requests = %d, want 1", got)
	}
}
