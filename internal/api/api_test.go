package api

import (
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/koushikbethu/aud-isl-convo/internal/adapters/normalizer"
	"github.com/koushikbethu/aud-isl-convo/internal/core/convert"
	"github.com/koushikbethu/aud-isl-convo/internal/core/domain"
	"github.com/koushikbethu/aud-isl-convo/internal/core/tables"
	"github.com/koushikbethu/aud-isl-convo/internal/ports"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Close() error                                   { return nil }

// testConverter wires the real normalizer and resolver without the facade,
// keeping the test free of logging configuration.
type testConverter struct {
	normalizer ports.Normalizer
	resolver   ports.Resolver
}

func (c *testConverter) Convert(ctx context.Context, raw string) (domain.Result, error) {
	return c.resolver.Resolve(ctx, c.normalizer.Normalize(raw))
}

func newTestServer(t *testing.T, origins []string) (*fasthttp.Client, func()) {
	t.Helper()

	gifsDir := t.TempDir()
	lettersDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(gifsDir, "hello.gif"), []byte("GIF89a"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(lettersDir, "a.jpg"), []byte("jpegdata"), 0o644); err != nil {
		t.Fatal(err)
	}

	core, err := convert.New(convert.Config{Logger: nopLogger{}})
	if err != nil {
		t.Fatal(err)
	}
	conv := &testConverter{
		normalizer: normalizer.NewDefaultNormalizer(),
		resolver:   core,
	}

	server := NewServer(conv, nopLogger{}, Config{
		AllowedOrigins: origins,
		GifsDir:        gifsDir,
		LettersDir:     lettersDir,
	})

	ln := fasthttputil.NewInmemoryListener()
	httpServer := &fasthttp.Server{Handler: server.Handler()}
	go func() {
		_ = httpServer.Serve(ln)
	}()

	client := &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) {
			return ln.Dial()
		},
	}

	cleanup := func() {
		_ = httpServer.Shutdown()
		_ = ln.Close()
	}
	return client, cleanup
}

func doRequest(t *testing.T, client *fasthttp.Client, method, url, body string, headers map[string]string) (int, []byte, *fasthttp.ResponseHeader) {
	t.Helper()

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(method)
	req.SetRequestURI(url)
	if body != "" {
		req.SetBodyString(body)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if err := client.Do(req, resp); err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}

	respBody := make([]byte, len(resp.Body()))
	copy(respBody, resp.Body())
	header := &fasthttp.ResponseHeader{}
	resp.Header.CopyTo(header)
	return resp.StatusCode(), respBody, header
}

func TestProcessPhrase(t *testing.T) {
	client, cleanup := newTestServer(t, []string{"*"})
	defer cleanup()

	status, body, _ := doRequest(t, client, fasthttp.MethodPost, "http://test/process", `{"text":"Hello!"}`, nil)
	if status != fasthttp.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", status, body)
	}

	var resp GifResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Type != "gif" || resp.Src != "/static/gifs/hello.gif" || resp.Alt != "hello" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestConvertAliasSequence(t *testing.T) {
	client, cleanup := newTestServer(t, []string{"*"})
	defer cleanup()

	status, body, _ := doRequest(t, client, fasthttp.MethodPost, "http://test/api/convert", `{"text":"xyz123"}`, nil)
	if status != fasthttp.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", status, body)
	}

	var resp SequenceResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Type != "sequence" {
		t.Errorf("Type = %q, want sequence", resp.Type)
	}
	if len(resp.Data) != 3 {
		t.Errorf("len(Data) = %d, want 3", len(resp.Data))
	}
	if resp.OriginalText != "xyz123" {
		t.Errorf("OriginalText = %q, want xyz123", resp.OriginalText)
	}
}

func TestProcessInvalidInput(t *testing.T) {
	client, cleanup := newTestServer(t, []string{"*"})
	defer cleanup()

	tests := []struct {
		name string
		body string
	}{
		{name: "punctuation only", body: `{"text":"!!!"}`},
		{name: "digits only", body: `{"text":"12345"}`},
		{name: "missing text", body: `{}`},
		{name: "malformed json", body: `{"text":`},
		{name: "text too long", body: `{"text":"` + strings.Repeat("a", 501) + `"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body, _ := doRequest(t, client, fasthttp.MethodPost, "http://test/process", tc.body, nil)
			if status != fasthttp.StatusBadRequest {
				t.Errorf("status = %d, want 400, body: %s", status, body)
			}
			var resp ErrorResponse
			if err := json.Unmarshal(body, &resp); err != nil {
				t.Fatalf("unmarshal error body: %v", err)
			}
			if resp.Error == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestProcessMethodNotAllowed(t *testing.T) {
	client, cleanup := newTestServer(t, []string{"*"})
	defer cleanup()

	status, _, _ := doRequest(t, client, fasthttp.MethodGet, "http://test/process", "", nil)
	if status != fasthttp.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", status)
	}
}

func TestHealth(t *testing.T) {
	client, cleanup := newTestServer(t, []string{"*"})
	defer cleanup()

	status, body, _ := doRequest(t, client, fasthttp.MethodGet, "http://test/health", "", nil)
	if status != fasthttp.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var resp HealthResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("Status = %q, want healthy", resp.Status)
	}
	if resp.PhrasesCount != tables.PhraseCount() {
		t.Errorf("PhrasesCount = %d, want %d", resp.PhrasesCount, tables.PhraseCount())
	}
	if resp.LettersCount != 26 {
		t.Errorf("LettersCount = %d, want 26", resp.LettersCount)
	}
}

func TestPhrases(t *testing.T) {
	client, cleanup := newTestServer(t, []string{"*"})
	defer cleanup()

	status, body, _ := doRequest(t, client, fasthttp.MethodGet, "http://test/api/phrases", "", nil)
	if status != fasthttp.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var resp PhrasesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != len(resp.Phrases) || resp.Count == 0 {
		t.Errorf("Count = %d, len(Phrases) = %d", resp.Count, len(resp.Phrases))
	}
}

func TestNotFound(t *testing.T) {
	client, cleanup := newTestServer(t, []string{"*"})
	defer cleanup()

	status, _, _ := doRequest(t, client, fasthttp.MethodGet, "http://test/nope", "", nil)
	if status != fasthttp.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
}

func TestCORSPreflight(t *testing.T) {
	client, cleanup := newTestServer(t, []string{"http://localhost:5173"})
	defer cleanup()

	headers := map[string]string{"Origin": "http://localhost:5173"}
	status, _, respHeader := doRequest(t, client, fasthttp.MethodOptions, "http://test/process", "", headers)
	if status != fasthttp.StatusNoContent {
		t.Fatalf("status = %d, want 204", status)
	}
	if got := string(respHeader.Peek("Access-Control-Allow-Origin")); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if got := string(respHeader.Peek("Access-Control-Allow-Methods")); got != "GET, POST, OPTIONS" {
		t.Errorf("Access-Control-Allow-Methods = %q", got)
	}
}

func TestCORSDisallowedOrigin(t *testing.T) {
	client, cleanup := newTestServer(t, []string{"http://localhost:5173"})
	defer cleanup()

	headers := map[string]string{"Origin": "http://evil.example"}
	_, _, respHeader := doRequest(t, client, fasthttp.MethodGet, "http://test/health", "", headers)
	if got := string(respHeader.Peek("Access-Control-Allow-Origin")); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
	}
}

func TestStaticAssets(t *testing.T) {
	client, cleanup := newTestServer(t, []string{"*"})
	defer cleanup()

	status, body, _ := doRequest(t, client, fasthttp.MethodGet, "http://test/static/gifs/hello.gif", "", nil)
	if status != fasthttp.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if string(body) != "GIF89a" {
		t.Errorf("body = %q, want GIF89a", body)
	}

	status, body, _ = doRequest(t, client, fasthttp.MethodGet, "http://test/static/letters/a.jpg", "", nil)
	if status != fasthttp.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if string(body) != "jpegdata" {
		t.Errorf("body = %q, want jpegdata", body)
	}

	status, _, _ = doRequest(t, client, fasthttp.MethodGet, "http://test/static/letters/missing.jpg", "", nil)
	if status != fasthttp.StatusNotFound {
		t.Errorf("missing asset status = %d, want 404", status)
	}
}
