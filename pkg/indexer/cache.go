/*
 Copyright 2026 NanaFS Authors.

 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package indexer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bluele/gcache"
	"github.com/hyponet/eventbus"
	"go.uber.org/zap"

	"github.com/basenana/sqljieba/pkg/events"
	"github.com/basenana/sqljieba/pkg/types"
	"github.com/basenana/sqljieba/utils"
	"github.com/basenana/sqljieba/utils/logger"
)

const defaultCacheExpire = 5 * time.Minute

// cachedIndexer keeps Query results per namespace. Every namespace has a
// generation that is part of the cache key, a change bumps it and the
// stale entries age out of the LRU. Reindexing an id under another
// namespace moves it, so the namespace it leaves is bumped as well. When
// that namespace is unknown the epoch shared by all keys is bumped.
type cachedIndexer struct {
	Indexer

	cache       gcache.Cache
	generations sync.Map
	owners      sync.Map
	epoch       atomic.Int64
	listenerID  string
	logger      *zap.SugaredLogger
}

func NewCached(idx Indexer, size int) Indexer {
	c := &cachedIndexer{
		Indexer: idx,
		cache:   gcache.New(size).LRU().Expiration(defaultCacheExpire).Build(),
		logger:  logger.NewLogger("queryCache"),
	}
	c.listenerID = eventbus.Subscribe(events.TopicAllDocumentActions, c.handleEvent)
	return c
}

func (c *cachedIndexer) Index(ctx context.Context, namespace string, doc *types.IndexDocument) error {
	defer c.invalidate(namespace)
	if doc == nil {
		return c.Indexer.Index(ctx, namespace, doc)
	}

	// owners is updated before the write so the index event of this call
	// finds the document at home already
	if doc.ID == 0 {
		doc.ID = utils.GenerateNewID()
		c.owners.Store(doc.ID, namespace)
		err := c.Indexer.Index(ctx, namespace, doc)
		if err != nil {
			c.owners.Delete(doc.ID)
		}
		return err
	}

	prev, loaded := c.owners.Swap(doc.ID, namespace)
	if err := c.Indexer.Index(ctx, namespace, doc); err != nil {
		if loaded {
			c.owners.Store(doc.ID, prev)
		} else {
			c.owners.Delete(doc.ID)
		}
		return err
	}
	c.leave(prev, loaded, namespace)
	return nil
}

func (c *cachedIndexer) Delete(ctx context.Context, namespace string, id int64) error {
	defer c.invalidate(namespace)
	if err := c.Indexer.Delete(ctx, namespace, id); err != nil {
		return err
	}
	c.owners.Delete(id)
	return nil
}

func (c *cachedIndexer) Query(ctx context.Context, namespace, query string) ([]*types.IndexDocument, error) {
	key := c.key(namespace, query)
	if cached, err := c.cache.Get(key); err == nil {
		return cloneDocuments(cached.([]*types.IndexDocument)), nil
	}

	docs, err := c.Indexer.Query(ctx, namespace, query)
	if err != nil {
		return nil, err
	}
	if err = c.cache.Set(key, cloneDocuments(docs)); err != nil {
		c.logger.Warnw("cache query result failed", "namespace", namespace, "err", err)
	}
	return docs, nil
}

func (c *cachedIndexer) Close() error {
	eventbus.Unsubscribe(c.listenerID)
	c.cache.Purge()
	return c.Indexer.Close()
}

func (c *cachedIndexer) handleEvent(evt *types.Event) {
	if evt == nil {
		return
	}
	c.logger.Debugw("invalidate query cache", "namespace", evt.Namespace, "action", evt.Type, "source", evt.Source)
	switch evt.Type {
	case events.ActionTypeIndex:
		c.track(evt.RefID, evt.Namespace)
	case events.ActionTypeDestroy:
		c.owners.Delete(evt.RefID)
	}
	c.invalidate(evt.Namespace)
}

// track records namespace as the home of id and invalidates the namespace
// the document left.
func (c *cachedIndexer) track(id int64, namespace string) {
	prev, loaded := c.owners.Swap(id, namespace)
	c.leave(prev, loaded, namespace)
}

func (c *cachedIndexer) leave(prev interface{}, loaded bool, namespace string) {
	switch {
	case !loaded:
		c.epoch.Add(1)
	case prev.(string) != namespace:
		c.invalidate(prev.(string))
	}
}

func (c *cachedIndexer) generation(namespace string) *atomic.Int64 {
	gen, _ := c.generations.LoadOrStore(namespace, &atomic.Int64{})
	return gen.(*atomic.Int64)
}

func (c *cachedIndexer) invalidate(namespace string) {
	c.generation(namespace).Add(1)
}

func (c *cachedIndexer) key(namespace, query string) string {
	return fmt.Sprintf("%s/%d/%d/%s", namespace, c.epoch.Load(), c.generation(namespace).Load(), query)
}

func cloneDocuments(docs []*types.IndexDocument) []*types.IndexDocument {
	result := make([]*types.IndexDocument, 0, len(docs))
	for _, d := range docs {
		copied := *d
		result = append(result, &copied)
	}
	return result
}
