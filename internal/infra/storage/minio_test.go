package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeS3 answers just enough of the S3 API for bucket checks and PutObject.
type fakeS3 struct {
	mu      sync.Mutex
	buckets map[string]bool
	objects map[string]string
	ctypes  map[string]string
}

func newFakeS3(t *testing.T) (*fakeS3, *httptest.Server) {
	t.Helper()
	f := &fakeS3{buckets: map[string]bool{}, objects: map[string]string{}, ctypes: map[string]string{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		p := strings.Trim(r.URL.Path, "/")
		bucket, object, _ := strings.Cut(p, "/")
		switch {
		case object == "" && r.Method == http.MethodHead:
			if !f.buckets[bucket] {
				w.WriteHeader(http.StatusNotFound)
				return
			}
		case object == "" && r.Method == http.MethodPut:
			f.buckets[bucket] = true
		case r.Method == http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			f.objects[p] = string(body)
			f.ctypes[p] = r.Header.Get("Content-Type")
			w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		default:
			w.WriteHeader(http.StatusNotImplemented)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return f, srv
}

func testOptions(srv *httptest.Server) Options {
	return Options{
		Endpoint:  strings.TrimPrefix(srv.URL, "http://"),
		Region:    "us-east-1",
		Bucket:    "legal-reports",
		AccessKey: "minio",
		SecretKey: "minio123",
		Prefix:    "reports",
	}
}

func TestArchiveCreatesBucketAndStoresReport(t *testing.T) {
	fake, srv := newFakeS3(t)
	ctx := context.Background()

	store, err := New(ctx, testOptions(srv))
	if err != nil {
		t.Fatal(err)
	}
	if !fake.buckets["legal-reports"] {
		t.Fatal("missing bucket should be created")
	}

	url, err := store.Archive(ctx, "s1/legal-analysis-report-2024-03-09.html", []byte("<html></html>"))
	if err != nil {
		t.Fatal(err)
	}
	key := "legal-reports/reports/s1/legal-analysis-report-2024-03-09.html"
	if fake.objects[key] != "<html></html>" {
		t.Errorf("stored objects = %v", fake.objects)
	}
	if fake.ctypes[key] != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", fake.ctypes[key])
	}
	if url != srv.URL+"/"+key {
		t.Errorf("url = %q", url)
	}
}

func TestArchivePresignedURL(t *testing.T) {
	_, srv := newFakeS3(t)
	opts := testOptions(srv)
	opts.Presign = time.Hour

	store, err := New(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	url, err := store.Archive(context.Background(), "s1/r.html", []byte("x"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(url, "/legal-reports/reports/s1/r.html?") || !strings.Contains(url, "X-Amz-Signature=") {
		t.Errorf("presigned url = %q", url)
	}
}
