package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	ghAPI "github.com/cli/go-gh/v2/pkg/api"
	"github.com/sirupsen/logrus"

	"github.com/altinukshini/jobportal-tui/internal/config"
)

type Client struct {
	rest    *ghAPI.RESTClient
	baseURL string
	log     *logrus.Logger
}

// NewClient builds a REST client for the job-portal backend. Requests carry
// the configured bearer token; the client never acquires or refreshes it.
func NewClient(cfg config.Config, log *logrus.Logger) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	opts := ghAPI.ClientOptions{
		Host:      u.Hostname(),
		AuthToken: cfg.Token,
		Headers: map[string]string{
			"Accept":        "application/json",
			"Authorization": "Bearer " + cfg.Token,
			"User-Agent":    "jobportal-tui",
		},
		SkipDefaultHeaders: true,
		Timeout:            cfg.RequestTimeout,
		Transport:          http.DefaultTransport,
	}
	if log.IsLevelEnabled(logrus.DebugLevel) {
		opts.Log = log.WriterLevel(logrus.DebugLevel)
		opts.LogIgnoreEnv = true
	}
	rest, err := ghAPI.NewRESTClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return &Client{
		rest:    rest,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		log:     log,
	}, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if qs := query.Encode(); qs != "" {
		u += "?" + qs
	}
	return u
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, result interface{}) error {
	return c.rest.DoWithContext(ctx, http.MethodGet, c.endpoint(path, query), nil, result)
}

func (c *Client) Put(ctx context.Context, path string, query url.Values, body interface{}, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	return c.rest.DoWithContext(ctx, http.MethodPut, c.endpoint(path, query), reader, result)
}

// StatusCode extracts the HTTP status from an error returned by the REST
// client, or 0 when the request never got a response.
func StatusCode(err error) int {
	var httpErr *ghAPI.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
