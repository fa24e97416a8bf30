package blobstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Opener opens a byte source for a URL. It returns the source and the
// total byte count if the scheme can know it upfront, or -1 when the
// length is unknown.
type Opener func(ctx context.Context, u *url.URL, opts *Options) (io.ReadCloser, int64, error)

var (
	schemeOpeners = make(map[string]Opener)
	openerMutex   sync.RWMutex
)

// RegisterScheme registers an opener for a URL scheme. The file, http
// and https schemes are registered by the package itself; additional
// schemes (for example cloud storage) can be plugged in by callers.
func RegisterScheme(name string, opener Opener) {
	openerMutex.Lock()
	defer openerMutex.Unlock()
	schemeOpeners[name] = opener
}

// lookupScheme returns the opener registered for a scheme
func lookupScheme(name string) (Opener, bool) {
	openerMutex.RLock()
	defer openerMutex.RUnlock()
	opener, exists := schemeOpeners[name]
	return opener, exists
}

func init() {
	RegisterScheme("http", openHTTP)
	RegisterScheme("https", openHTTP)
}

// openHTTP fetches a http/https resource with the configured client.
// The response length is reported as unknown; callers who know the size
// declare it with WithLength.
func openHTTP(ctx context.Context, u *url.URL, opts *Options) (io.ReadCloser, int64, error) {
	client := opts.HTTPClient
	if client == nil {
		if timeout := loadConfig().HTTPTimeoutSeconds; timeout > 0 {
			client = &http.Client{Timeout: time.Duration(timeout) * time.Second}
		} else {
			client = http.DefaultClient
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, -1, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, -1, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, -1, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, -1, nil
}
