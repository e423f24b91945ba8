package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/altinukshini/jobportal-tui/internal/model"
)

// TransportError is returned by GlobalSearch for any network, status or
// decoding failure.
type TransportError struct {
	Query      string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("global search %q: status %d: %v", e.Query, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("global search %q: %v", e.Query, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// GlobalSearch runs GET /globalSearch?q=<query>. The query must already be
// trimmed and non-empty.
func (c *Client) GlobalSearch(ctx context.Context, query string) (model.ResultSet, error) {
	v := url.Values{}
	v.Set("q", query)

	log := c.log.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"query":      query,
	})
	start := time.Now()

	var raw map[string]json.RawMessage
	if err := c.Get(ctx, "globalSearch", v, &raw); err != nil {
		terr := &TransportError{Query: query, StatusCode: StatusCode(err), Err: err}
		log.WithError(err).WithField("status", terr.StatusCode).Warn("global search request failed")
		return nil, terr
	}

	rs, err := model.DecodeResultSet(raw)
	if err != nil {
		log.WithError(err).Warn("global search response malformed")
		return nil, &TransportError{Query: query, Err: err}
	}
	log.WithFields(logrus.Fields{
		"kinds":    len(rs),
		"items":    rs.Count(),
		"duration": time.Since(start),
	}).Debug("global search completed")
	return rs, nil
}
