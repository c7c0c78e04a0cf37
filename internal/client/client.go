package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"accessctl/internal/normalize"
	"accessctl/pkg/models"
)

const requestIDHeader = "X-Request-ID"

// ConsoleClient talks to the admin console backend. It keeps no state between
// calls beyond the underlying HTTP client, so it is safe for concurrent use.
type ConsoleClient struct {
	HTTP   *resty.Client
	Config ClientConfig
	log    logrus.FieldLogger
}

type ClientConfig struct {
	BaseURL            string
	Timeout            time.Duration
	RateLimit          float64 // requests per second, 0 disables the limiter
	InsecureSkipVerify bool    // on-prem backends often use self-signed certs
	Logger             logrus.FieldLogger
}

// ErrMalformedRecord is returned by detail and mutation calls whose payload is
// present but cannot be read as the requested record.
var ErrMalformedRecord = errors.New("malformed record")

// TransportError is a network failure, a non-2xx answer, or a 2xx answer whose
// envelope says success:false. The last case carries the 2xx status and the
// backend message; it is an error rather than an empty result because the
// backend has refused the operation. It is returned to callers unchanged; the
// client never retries.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int // 0 when no response was received
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

func New(cfg ClientConfig) *ConsoleClient {
	if cfg.Logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		cfg.Logger = l
	}

	r := resty.New()
	r.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	r.SetHeader("Content-Type", "application/json")
	r.SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		r.SetTimeout(cfg.Timeout)
	}
	if cfg.InsecureSkipVerify {
		r.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	c := &ConsoleClient{
		HTTP:   r,
		Config: cfg,
		log:    cfg.Logger.WithField("component", "client"),
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	r.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if limiter != nil {
			if err := limiter.Wait(req.Context()); err != nil {
				return err
			}
		}
		req.SetHeader(requestIDHeader, uuid.NewString())
		return nil
	})
	r.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		c.log.WithFields(logrus.Fields{
			"method":     resp.Request.Method,
			"url":        resp.Request.URL,
			"status":     resp.StatusCode(),
			"duration":   resp.Time(),
			"request_id": resp.Request.Header.Get(requestIDHeader),
		}).Debug("backend exchange")
		return nil
	})

	return c
}

// request performs one exchange and returns the raw response body. Every
// failure it returns is a *TransportError.
func (c *ConsoleClient) request(ctx context.Context, method, path string, params url.Values, body any) ([]byte, error) {
	req := c.HTTP.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParamsFromValues(params)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}

	if !resp.IsSuccess() {
		return nil, &TransportError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Body:       strings.TrimSpace(resp.String()),
			Err:        errors.New(http.StatusText(resp.StatusCode())),
		}
	}

	raw := resp.Body()
	if msg, rejected := normalize.Rejected(raw); rejected {
		return nil, &TransportError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Body:       msg,
			Err:        errors.New(msg),
		}
	}
	return raw, nil
}

// payload performs one exchange and resolves the envelope. A missing payload
// is returned as normalize.ErrMissingPayload for the caller to absorb.
func (c *ConsoleClient) payload(ctx context.Context, method, path string, params url.Values, body any) (json.RawMessage, error) {
	raw, err := c.request(ctx, method, path, params, body)
	if err != nil {
		return nil, err
	}

	p, err := normalize.Unwrap(raw)
	if err != nil {
		c.log.WithFields(logrus.Fields{"method": method, "path": path}).WithError(err).Debug("response carried no payload")
		return nil, err
	}
	return p, nil
}

// fetchList performs a listing call and assembles a ListResult. A response
// without payload yields an empty result rather than an error.
func fetchList[T any](
	ctx context.Context,
	c *ConsoleClient,
	path string,
	params url.Values,
	recordKeys []string,
	decode func([]json.RawMessage) ([]T, []models.RecordError),
) (models.ListResult[T], error) {
	p, err := c.payload(ctx, http.MethodGet, path, params, nil)
	if errors.Is(err, normalize.ErrMissingPayload) {
		return models.EmptyList[T](), nil
	}
	if err != nil {
		return models.ListResult[T]{}, err
	}

	wire, meta, err := normalize.SplitList(p, recordKeys...)
	if err != nil {
		c.log.WithField("path", path).WithError(err).Warn("unreadable list payload")
		return models.EmptyList[T](), nil
	}

	records, rejected := decode(wire)
	for _, r := range rejected {
		c.log.WithFields(logrus.Fields{"path": path, "index": r.Index}).Warn("dropped malformed record: " + r.Err)
	}

	return models.ListResult[T]{
		Records:  records,
		Rejected: rejected,
		Paging:   normalize.Project(meta, len(wire)),
	}, nil
}

// fetchOne reads a single record. It returns nil without error when the
// backend answered without a record object, as some mutations do, and
// ErrMalformedRecord when a record object cannot be decoded.
func fetchOne[T any](
	ctx context.Context,
	c *ConsoleClient,
	method, path string,
	body any,
	decode func(json.RawMessage) (T, error),
) (*T, error) {
	p, err := c.payload(ctx, method, path, nil, body)
	if errors.Is(err, normalize.ErrMissingPayload) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if p = bytes.TrimSpace(p); len(p) == 0 || p[0] != '{' {
		c.log.WithFields(logrus.Fields{"method": method, "path": path}).Debug("response carried no record")
		return nil, nil
	}

	rec, err := decode(p)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w: %v", method, path, ErrMalformedRecord, err)
	}
	return &rec, nil
}
