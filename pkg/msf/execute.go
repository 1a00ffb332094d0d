package msf

import (
	"context"
	"net/http"
	"time"

	"github.com/matzehuels/mysportsfeeds/pkg/decode"
	"github.com/matzehuels/mysportsfeeds/pkg/errors"
	"github.com/matzehuels/mysportsfeeds/pkg/feeds"
	"github.com/matzehuels/mysportsfeeds/pkg/httputil"
	"github.com/matzehuels/mysportsfeeds/pkg/observability"
)

// execute performs the single GET for req and routes the response to the
// save path (200) or the stored-copy path (304).
func (c *Client) execute(ctx context.Context, req feeds.Request) (decode.Document, error) {
	url := req.URL(c.baseURL)
	if c.verbose {
		c.logger.Info("Making API request", "url", url)
	}
	hooks := observability.Requests()
	hooks.OnRequest(ctx, string(req.Feed), url)

	start := time.Now()
	resp, err := httputil.Get(ctx, c.http, url, map[string]string{
		"Authorization": httputil.BasicAuth(c.creds.Username, c.creds.Password),
	})
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.observeRequest(req.Feed, 0, elapsed)
		hooks.OnError(ctx, string(req.Feed), err)
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "request %s", req.Feed)
	}
	c.metrics.observeRequest(req.Feed, resp.StatusCode, elapsed)
	hooks.OnResponse(ctx, string(req.Feed), resp.StatusCode, elapsed)

	switch resp.StatusCode {
	case http.StatusOK:
		return c.save(ctx, resp.Body, req)
	case http.StatusNotModified:
		if c.verbose {
			c.logger.Info("Data hasn't changed since last call", "feed", req.Feed)
		}
		return c.readCached(ctx, req)
	default:
		return nil, errors.RequestFailed(resp.StatusCode)
	}
}
