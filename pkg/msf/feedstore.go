package msf

import (
	"context"

	"github.com/matzehuels/mysportsfeeds/pkg/decode"
	"github.com/matzehuels/mysportsfeeds/pkg/errors"
	"github.com/matzehuels/mysportsfeeds/pkg/feeds"
	"github.com/matzehuels/mysportsfeeds/pkg/observability"
)

// save decodes a fresh response, persists the raw bytes when a store is
// configured and records the document as the last output. Nothing is
// written or recorded unless decoding succeeds.
func (c *Client) save(ctx context.Context, raw []byte, req feeds.Request) (decode.Document, error) {
	doc, err := decode.Decode(req.Format, raw)
	if err != nil {
		return nil, err
	}

	if c.hasStore() {
		name := req.Filename()
		if err := c.store.Set(ctx, name, raw); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "store %s", name)
		}
		c.logger.Debug("Stored response", "name", name, "bytes", len(raw))
		observability.Store().OnStoreSet(ctx, name, len(raw))
	}

	c.last = doc
	return doc, nil
}

// readCached loads the bytes stored by an earlier 200 for the same request
// and decodes them.
func (c *Client) readCached(ctx context.Context, req feeds.Request) (decode.Document, error) {
	name := req.Filename()

	raw, ok, err := c.store.Get(ctx, name)
	if err != nil || !ok {
		c.metrics.observeCacheRead(req.Feed, false)
		observability.Store().OnStoreMiss(ctx, name)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCacheMiss, err, "read stored %s", name)
		}
		return nil, errors.New(errors.ErrCodeCacheMiss, "no stored copy of %s", name)
	}
	c.metrics.observeCacheRead(req.Feed, true)
	observability.Store().OnStoreHit(ctx, name)

	doc, err := decode.Decode(req.Format, raw)
	if err != nil {
		return nil, err
	}
	c.last = doc
	return doc, nil
}
