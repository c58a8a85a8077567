package utils

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type API struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

func NewAPI(baseURL string) *API {
	return &API{client: http.DefaultClient, baseURL: strings.TrimRight(baseURL, "/")}
}

// WithTimeout replaces the default client with one bounded by timeout.
func (a *API) WithTimeout(timeout time.Duration) *API {
	if timeout > 0 {
		a.client = &http.Client{Timeout: timeout}
	}
	return a
}

func (a *API) WithUserAgent(userAgent string) *API {
	a.userAgent = userAgent
	return a
}

func (a *API) BaseURL() string {
	return a.baseURL
}

// Get fetches path relative to the base URL and returns the raw body.
func (a *API) Get(path string) ([]byte, error) {
	return a.Fetch(fmt.Sprintf("%s%s", a.baseURL, path))
}

// Fetch fetches an absolute URL and returns the raw body. Any status other
// than 200 is an error.
func (a *API) Fetch(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	if a.userAgent != "" {
		req.Header.Set("User-Agent", a.userAgent)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
