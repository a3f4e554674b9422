package ticker

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// A HeaderProvider supplies a set of plausible browser request headers.
//
// Quote pages are served to browsers, not to bots, so every page fetch carries
// a randomized browser identity. The interface keeps that concern swappable: a
// Fixed provider serves tests and offline use.
type HeaderProvider interface {
	BrowserHeaders(ctx context.Context) (http.Header, error)
}

// Fixed is a HeaderProvider that always returns the same header set.
type Fixed http.Header

func (f Fixed) BrowserHeaders(context.Context) (http.Header, error) {
	return http.Header(f), nil
}

const scrapeOpsURL = "https://headers.scrapeops.io/v1/browser-headers"

// defaultPoolSize is how many header sets are requested per pick.
const defaultPoolSize = 3

// ScrapeOps fetches browser header sets from the scrapeops.io header-rotation
// service and picks one at random on every call.
type ScrapeOps struct {
	APIKey   string
	PoolSize int          // header sets requested per call, defaults to 3
	URL      string       // endpoint, defaults to the public scrapeops.io one
	Client   *http.Client // defaults to http.DefaultClient
}

func (s *ScrapeOps) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return http.DefaultClient
}

// BrowserHeaders requests a pool of header sets and returns one uniformly at
// random. Any deviation of the response from the expected shape (including an
// empty pool) is an ErrAgentFetch.
func (s *ScrapeOps) BrowserHeaders(ctx context.Context) (http.Header, error) {
	size := s.PoolSize
	if size <= 0 {
		size = defaultPoolSize
	}
	endpoint := s.URL
	if endpoint == "" {
		endpoint = scrapeOpsURL
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endpoint %q: %v", ErrAgentFetch, endpoint, err)
	}
	q := u.Query()
	q.Set("api_key", s.APIKey)
	q.Set("num_results", strconv.Itoa(size))
	u.RawQuery = q.Encode()

	var jobj any
	if err := jwget(ctx, s.client(), u.String(), &jobj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAgentFetch, err)
	}

	jval, err := jsonpath.Get("$.result", jobj)
	if err != nil {
		return nil, fmt.Errorf("%w: no result list in the response: %v", ErrAgentFetch, err)
	}
	pool, ok := jval.([]any)
	if !ok || len(pool) == 0 {
		return nil, fmt.Errorf("%w: no browser agents found in the response", ErrAgentFetch)
	}

	set, ok := pool[rand.Intn(len(pool))].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: browser agent is not a header object", ErrAgentFetch)
	}
	headers := make(http.Header, len(set))
	for name, value := range set {
		text, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: header %q is not a string", ErrAgentFetch, name)
		}
		headers.Set(name, text)
	}
	return headers, nil
}
