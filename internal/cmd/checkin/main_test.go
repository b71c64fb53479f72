package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/ooni/checkinv2/internal/model"
	"github.com/ooni/checkinv2/internal/must"
	"github.com/ooni/checkinv2/internal/runtimex"
)

// v1response is the check-in v1 response returned by [newBackend].
const v1response = `{
	"conf": {"features": {}, "test_helpers": {}},
	"probe_asn": "AS30722",
	"probe_cc": "IT",
	"tests": {
		"web_connectivity": {"report_id": "r1", "urls": [{"category_code": "NEWS", "country_code": "IT", "url": "https://www.example.com/"}]},
		"tor": {"report_id": "r2"}
	},
	"utc_time": "2024-01-01T00:00:00Z",
	"v": 1
}`

// backend is a local check-in v1 backend saving the requests it receives.
type backend struct {
	mu       sync.Mutex
	requests []map[string]any
	srv      *httptest.Server
}

// newBackend creates a new [*backend].
func newBackend(t *testing.T) *backend {
	b := &backend{}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		runtimex.Assert(r.URL.Path == "/api/v1/check-in", "invalid URL path")
		var request map[string]any
		must.UnmarshalJSON(runtimex.Try1(io.ReadAll(r.Body)), &request)
		b.mu.Lock()
		b.requests = append(b.requests, request)
		b.mu.Unlock()
		w.Write([]byte(v1response))
	}))
	t.Cleanup(b.srv.Close)
	return b
}

// categoryCodes returns the category codes of the last request.
func (b *backend) categoryCodes() []any {
	b.mu.Lock()
	defer b.mu.Unlock()
	runtimex.Assert(len(b.requests) == 2, "expected exactly two requests")
	wc := b.requests[1]["web_connectivity"].(map[string]any)
	return wc["category_codes"].([]any)
}

func TestMainWithArgs(t *testing.T) {
	color.NoColor = true

	t.Run("on success", func(t *testing.T) {
		b := newBackend(t)
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		args := []string{"--probe-services", b.srv.URL, "--only-category", "NEWS", "--only-category", "HUMR"}

		if code := mainWithArgs(args, stdout, stderr); code != 0 {
			t.Fatal("unexpected exit code", code, stderr.String())
		}

		// the second request should contain the categories in order
		if diff := cmp.Diff([]any{"NEWS", "HUMR"}, b.categoryCodes()); diff != "" {
			t.Fatal(diff)
		}

		// the standard output should contain a single v2 response
		if strings.Count(stdout.String(), "\n") != 1 {
			t.Fatal("expected a single line", stdout.String())
		}
		var v2 model.OOAPICheckInResultV2
		if err := json.Unmarshal(stdout.Bytes(), &v2); err != nil {
			t.Fatal(err)
		}
		if string(v2.V) != "2" || v2.UTCTime != "2024-01-01T00:00:00Z" || len(v2.MainScript) == 0 {
			t.Fatal("unexpected v2 response", stdout.String())
		}

		// the standard error should contain the requests and the warnings
		logs := stderr.String()
		for _, s := range []string{"v2request> {", "v1request> {", "cannot find psiphon in v1 response"} {
			if !strings.Contains(logs, s) {
				t.Fatal("missing", s, "in", logs)
			}
		}
	})

	t.Run("with categories from the config file", func(t *testing.T) {
		b := newBackend(t)
		configFile := filepath.Join(t.TempDir(), "config.json")
		data := must.MarshalJSON(map[string]any{
			"probe_services_url": b.srv.URL,
			"only_categories":    []string{"CULTR"},
		})
		if err := os.WriteFile(configFile, data, 0600); err != nil {
			t.Fatal(err)
		}
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		if code := mainWithArgs([]string{"--config", configFile}, stdout, stderr); code != 0 {
			t.Fatal("unexpected exit code", code, stderr.String())
		}

		if diff := cmp.Diff([]any{"CULTR"}, b.categoryCodes()); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with an unknown category", func(t *testing.T) {
		b := newBackend(t)
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		args := []string{"--probe-services", b.srv.URL, "--only-category", "ANTANI"}

		if code := mainWithArgs(args, stdout, stderr); code != 0 {
			t.Fatal("unexpected exit code", code, stderr.String())
		}
		if !strings.Contains(stderr.String(), "unknown category code: ANTANI") {
			t.Fatal("expected a warning", stderr.String())
		}
	})

	t.Run("with an invalid probe services URL", func(t *testing.T) {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		if code := mainWithArgs([]string{"--probe-services", "ftp://x"}, stdout, stderr); code != 1 {
			t.Fatal("unexpected exit code", code)
		}
		if !strings.Contains(stderr.String(), "FATAL: ") {
			t.Fatal("expected a fatal error", stderr.String())
		}
		if stdout.Len() != 0 {
			t.Fatal("expected empty stdout")
		}
	})

	t.Run("with a nonexistent config file", func(t *testing.T) {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		args := []string{"--config", filepath.Join(t.TempDir(), "nonexistent.json")}
		if code := mainWithArgs(args, stdout, stderr); code != 1 {
			t.Fatal("unexpected exit code", code)
		}
	})

	t.Run("when the backend fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		if code := mainWithArgs([]string{"--probe-services", srv.URL}, stdout, stderr); code != 1 {
			t.Fatal("unexpected exit code", code)
		}
		if !strings.Contains(stderr.String(), "HTTP status 500") {
			t.Fatal("unexpected stderr", stderr.String())
		}
		if stdout.Len() != 0 {
			t.Fatal("expected empty stdout")
		}
	})

	t.Run("with positional arguments", func(t *testing.T) {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		if code := mainWithArgs([]string{"antani"}, stdout, stderr); code != 1 {
			t.Fatal("unexpected exit code", code)
		}
	})

	t.Run("with --version", func(t *testing.T) {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		if code := mainWithArgs([]string{"--version"}, stdout, stderr); code != 0 {
			t.Fatal("unexpected exit code", code)
		}
		if stdout.String() != "0.1.0\n" {
			t.Fatal("unexpected version", stdout.String())
		}
	})
}
