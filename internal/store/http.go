package store

import (
	"net/http"
	"time"
)

// Transport defaults for dataset downloads.
const (
	DefaultTimeout               = 30 * time.Second
	DefaultResponseHeaderTimeout = 15 * time.Second
	DefaultTLSHandshakeTimeout   = 10 * time.Second
	DefaultIdleConnTimeout       = 90 * time.Second
)

// NewHTTPClient returns a client for dataset downloads. A zero timeout uses
// DefaultTimeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          4,
		MaxIdleConnsPerHost:   2,
		IdleConnTimeout:       DefaultIdleConnTimeout,
		ResponseHeaderTimeout: min(timeout, DefaultResponseHeaderTimeout),
		TLSHandshakeTimeout:   DefaultTLSHandshakeTimeout,
		ExpectContinueTimeout: time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
