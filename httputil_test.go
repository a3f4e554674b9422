package ticker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// closeTracker records whether a response body was closed.
type closeTracker struct {
	io.ReadCloser
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return c.ReadCloser.Close()
}

// trackingTransport wraps every response body in a closeTracker.
type trackingTransport struct {
	base   http.RoundTripper
	bodies []*closeTracker
}

func (t *trackingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	body := &closeTracker{ReadCloser: resp.Body}
	resp.Body = body
	t.bodies = append(t.bodies, body)
	return resp, nil
}

func TestGetsCloseResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/json":
			fmt.Fprint(w, `{"ok": true}`)
		case "/html":
			fmt.Fprint(w, `<html><body><div data-last-price="1"></div></body></html>`)
		default:
			http.Error(w, "boom", 500)
		}
	}))
	defer srv.Close()

	transport := &trackingTransport{base: http.DefaultTransport}
	client := &http.Client{Transport: transport}
	ctx := context.Background()

	var data any
	if err := jwget(ctx, client, srv.URL+"/json", &data); err != nil {
		t.Errorf("jwget() unexpected error: %v", err)
	}
	if err := jwget(ctx, client, srv.URL+"/error", &data); err == nil {
		t.Error("jwget() succeeded on a 500 response")
	}
	if _, err := hwget(ctx, client, srv.URL+"/html", nil); err != nil {
		t.Errorf("hwget() unexpected error: %v", err)
	}
	if _, err := hwget(ctx, client, srv.URL+"/error", nil); err == nil {
		t.Error("hwget() succeeded on a 500 response")
	}

	if len(transport.bodies) != 4 {
		t.Fatalf("tracked %d response bodies, want 4", len(transport.bodies))
	}
	for i, body := range transport.bodies {
		if !body.closed {
			t.Errorf("response body %d was never closed", i)
		}
	}
}
