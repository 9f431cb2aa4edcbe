package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
)

// Provider is a fake catalog endpoint. It answers every request with a
// fixed status and body and records request URLs so tests can assert on
// query parameters.
type Provider struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*url.URL
}

func NewProvider(status int, body string) *Provider {
	p := &Provider{}
	p.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		u := *r.URL
		p.requests = append(p.requests, &u)
		p.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	return p
}

// LastRequest returns the most recent request URL, or nil if none was made.
func (p *Provider) LastRequest() *url.URL {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.requests) == 0 {
		return nil
	}
	return p.requests[len(p.requests)-1]
}

// RequestCount returns how many requests the provider has served.
func (p *Provider) RequestCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}
