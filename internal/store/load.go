package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mieltoinc/yclistdedalus/internal/domain"
	"github.com/mieltoinc/yclistdedalus/internal/logger"
	"github.com/mieltoinc/yclistdedalus/internal/retry"
)

// ErrUnsupportedSource is returned when a Source names neither a file nor an
// http(s) URL.
var ErrUnsupportedSource = errors.New("unsupported dataset source")

// defaultMaxBytes caps remote downloads.
const defaultMaxBytes int64 = 256 << 20

// ErrDatasetTooLarge is returned when a remote dataset exceeds the download cap.
var ErrDatasetTooLarge = errors.New("dataset exceeds size limit")

// Source locates the dataset. URL wins when both are set.
type Source struct {
	Path string
	URL  string
}

// String returns the location used for loading.
func (s Source) String() string {
	if s.URL != "" {
		return s.URL
	}
	return s.Path
}

type loadOptions struct {
	client   *http.Client
	retry    retry.Config
	log      logger.Logger
	maxBytes int64
}

// Option customizes Load.
type Option func(*loadOptions)

// WithHTTPClient sets the client used for URL sources.
func WithHTTPClient(c *http.Client) Option {
	return func(o *loadOptions) { o.client = c }
}

// WithRetry sets the backoff used for URL sources.
func WithRetry(cfg retry.Config) Option {
	return func(o *loadOptions) { o.retry = cfg }
}

// WithTimeout builds a client with the given request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *loadOptions) { o.client = NewHTTPClient(d) }
}

// WithMaxBytes caps the size of a remote dataset body.
func WithMaxBytes(n int64) Option {
	return func(o *loadOptions) { o.maxBytes = n }
}

// WithLogger receives warnings about dropped records and retries.
func WithLogger(l logger.Logger) Option {
	return func(o *loadOptions) { o.log = l }
}

// Load reads the dataset described by src. On failure it returns an empty,
// not-loaded store together with the error; the store is always usable.
func Load(ctx context.Context, src Source, opts ...Option) (*Store, error) {
	o := loadOptions{retry: retry.DefaultConfig(), log: logger.NewNop(), maxBytes: defaultMaxBytes}
	for _, opt := range opts {
		opt(&o)
	}

	data, err := read(ctx, src, &o)
	if err != nil {
		return empty(src.String()), err
	}

	companies, err := decode(data)
	if err != nil {
		return empty(src.String()), fmt.Errorf("parse dataset %s: %w", src, err)
	}

	s, dropped := build(companies, src.String())
	if len(dropped) > 0 {
		o.log.Warn("Dropped records with duplicate ids",
			logger.Int("count", len(dropped)),
			logger.Any("ids", dropped),
			logger.String("source", src.String()),
		)
	}
	return s, nil
}

func read(ctx context.Context, src Source, o *loadOptions) ([]byte, error) {
	switch {
	case src.URL != "":
		if !strings.HasPrefix(src.URL, "http://") && !strings.HasPrefix(src.URL, "https://") {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, src.URL)
		}
		return fetch(ctx, src.URL, o)
	case src.Path != "":
		data, err := os.ReadFile(src.Path)
		if err != nil {
			return nil, fmt.Errorf("read dataset %s: %w", src.Path, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: no path or url configured", ErrUnsupportedSource)
	}
}

func fetch(ctx context.Context, url string, o *loadOptions) ([]byte, error) {
	client := o.client
	if client == nil {
		client = NewHTTPClient(0)
	}

	cfg := o.retry
	cfg.OnRetry = func(attempt int, delay time.Duration, err error) {
		o.log.Warn("Retrying dataset download",
			logger.String("url", url),
			logger.Int("attempt", attempt),
			logger.Duration("delay", delay),
			logger.Error(err),
		)
	}

	var body []byte
	err := retry.Do(ctx, cfg, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("fetch dataset %s: %w", url, err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			statusErr := fmt.Errorf("fetch dataset %s: unexpected status %d", url, resp.StatusCode)
			if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
				return retry.Transient(statusErr)
			}
			return statusErr
		}

		body, err = io.ReadAll(io.LimitReader(resp.Body, o.maxBytes+1))
		if err != nil {
			return retry.Transient(fmt.Errorf("read dataset body: %w", err))
		}
		if int64(len(body)) > o.maxBytes {
			return fmt.Errorf("%w: %s is larger than %d bytes", ErrDatasetTooLarge, url, o.maxBytes)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

// decode accepts {"companies": [...]} or a bare array.
func decode(data []byte) ([]domain.Company, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty document")
	}

	if trimmed[0] == '[' {
		var companies []domain.Company
		if err := json.Unmarshal(trimmed, &companies); err != nil {
			return nil, err
		}
		return companies, nil
	}

	var doc struct {
		Companies []domain.Company `json:"companies"`
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	return doc.Companies, nil
}
