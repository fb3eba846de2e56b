// Package vendorcss downloads third-party stylesheet snippets into a project.
package vendorcss

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/tacogips/sitekit/internal/debug"
	"github.com/tacogips/sitekit/internal/fsutil"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency downloads one resource at a time.
const DefaultConcurrency = 1

// Resource is one file to download.
type Resource struct {
	// Name is the file name written into the destination directory.
	Name string
	// URL is fetched with a plain GET.
	URL string
}

// Outcome describes what happened to one resource.
type Outcome int

const (
	// Populated means the file was written for the first time.
	Populated Outcome = iota
	// Updated means an existing file was replaced.
	Updated
	// Failed means the fetch or write failed; any previous file is kept.
	Failed
)

// Result is the per-resource report of a Fetch run.
type Result struct {
	Resource Resource
	Outcome  Outcome
	// Path is the destination file.
	Path string
	// Bytes is the number of bytes written.
	Bytes int64
	// Err is set when Outcome is Failed.
	Err error
}

// Fetcher downloads vendor resources over HTTP.
type Fetcher struct {
	// HTTPClient performs the requests.
	HTTPClient *http.Client
	// Concurrency is the number of parallel downloads. Values below 1 use DefaultConcurrency.
	Concurrency int
}

// NewFetcher creates a Fetcher. A zero timeout means requests never time out.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		HTTPClient:  &http.Client{Timeout: timeout},
		Concurrency: DefaultConcurrency,
	}
}

// Fetch downloads every resource into dir, one after another unless
// Concurrency allows more. Results keep the order of resources.
// Failures are reported per resource and never stop the remaining downloads.
func (f *Fetcher) Fetch(ctx context.Context, dir string, resources []Resource) []Result {
	limit := f.Concurrency
	if limit < 1 {
		limit = DefaultConcurrency
	}

	results := make([]Result, len(resources))
	var eg errgroup.Group
	eg.SetLimit(limit)
	for i, r := range resources {
		eg.Go(func() error {
			results[i] = f.fetchOne(ctx, dir, r)
			return nil
		})
	}
	_ = eg.Wait()
	return results
}

func (f *Fetcher) fetchOne(ctx context.Context, dir string, r Resource) Result {
	path := filepath.Join(dir, r.Name)
	existed := fsutil.IsFile(path)
	result := Result{Resource: r, Path: path}

	debug.Debug("[vendor] GET %s -> %s", r.URL, path)

	body, err := f.get(ctx, r.URL)
	if err == nil {
		err = fsutil.WriteFile(path, body, 0644)
	}
	if err != nil {
		result.Outcome = Failed
		result.Err = &FetchError{Resource: r, Existed: existed, Cause: err}
		return result
	}

	result.Bytes = int64(len(body))
	result.Outcome = Populated
	if existed {
		result.Outcome = Updated
	}
	return result
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// FetchError reports a resource that could not be downloaded.
type FetchError struct {
	Resource Resource
	// Existed is true when a previous copy of the file was present and kept.
	Existed bool
	Cause   error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	message := "Could not populate resource"
	if e.Existed {
		message = "Unable to update resource"
	}
	return fmt.Sprintf("%s: %s from url: %s: %v", message, e.Resource.Name, e.Resource.URL, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Cause
}
