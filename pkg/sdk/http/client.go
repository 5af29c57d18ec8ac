package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "exrest-go"
)

// Client is a thin resty wrapper that returns raw response bodies.
// It never retries: retry policy belongs to the caller.
type Client struct {
	client *resty.Client
}

// Options configures a Client. Zero values use defaults.
type Options struct {
	HTTPClient *http.Client  // overrides Timeout and Proxy when set
	Timeout    time.Duration // per request, including reading the body
	Proxy      string        // e.g. http://127.0.0.1:7890
	UserAgent  string
	Logger     resty.Logger
}

func NewClient(opts Options) (*Client, error) {
	var client *resty.Client
	if opts.HTTPClient != nil {
		client = resty.NewWithClient(opts.HTTPClient)
	} else {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = resty.New().SetTimeout(timeout)
		if opts.Proxy != "" {
			if _, err := url.Parse(opts.Proxy); err != nil {
				return nil, errors.Wrapf(err, "invalid proxy url %q", opts.Proxy)
			}
			client.SetProxy(opts.Proxy)
		}
	}

	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	client.SetHeader("User-Agent", ua).
		SetRetryCount(0)
	if opts.Logger != nil {
		client.SetLogger(opts.Logger)
	}

	return &Client{client: client}, nil
}

type RequestOptions struct {
	Headers map[string]string
	Body    string
}

// Response is the raw outcome of a request. Non-2xx statuses are not errors.
type Response struct {
	StatusCode int
	Body       string
	Duration   time.Duration
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// DoRaw sends the request to rawURL exactly as given (query string included)
// and returns the body text regardless of the status code.
func (c *Client) DoRaw(ctx context.Context, method, rawURL string, opt *RequestOptions) (*Response, error) {
	rc := c.client.R()
	if ctx != nil {
		rc.SetContext(ctx)
	}
	if opt != nil {
		for k, v := range opt.Headers {
			rc.SetHeader(k, v)
		}
		if opt.Body != "" {
			rc.SetBody(opt.Body)
		}
	}

	var (
		resp *resty.Response
		err  error
	)
	switch strings.ToUpper(method) {
	case http.MethodGet:
		resp, err = rc.Get(rawURL)
	case http.MethodPost:
		resp, err = rc.Post(rawURL)
	default:
		return nil, fmt.Errorf("unsupported method: %s", method)
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       string(resp.Body()),
		Duration:   resp.Time(),
	}, nil
}
