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
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/basenana/sqljieba/pkg/types"
)

type countingIndexer struct {
	Indexer
	queries int32
}

func (c *countingIndexer) Query(ctx context.Context, namespace, query string) ([]*types.IndexDocument, error) {
	atomic.AddInt32(&c.queries, 1)
	return c.Indexer.Query(ctx, namespace, query)
}

func (c *countingIndexer) Queries() int32 {
	return atomic.LoadInt32(&c.queries)
}

var _ = Describe("TestCachedIndexer", func() {
	var (
		ctx     = context.TODO()
		backend *countingIndexer
		idx     Indexer
	)
	BeforeEach(func() {
		backend = &countingIndexer{Indexer: WithEvents(NewMem(tokenizer))}
		idx = NewCached(backend, 16)
		indexTestDocuments(idx, namespace)
	})
	AfterEach(func() {
		Expect(idx.Close()).Should(Succeed())
	})

	It("should serve repeated queries from cache", func() {
		docs, err := idx.Query(ctx, namespace, "北京")
		Expect(err).Should(BeNil())
		Expect(docs).Should(HaveLen(2))
		docs[0].Title = "changed"

		docs, err = idx.Query(ctx, namespace, "北京")
		Expect(err).Should(BeNil())
		Expect(docs).Should(HaveLen(2))
		Expect(docs[0].Title).ShouldNot(Equal("changed"))
		Expect(backend.Queries()).Should(Equal(int32(1)))
	})

	It("should drop cached results after a change", func() {
		_, err := idx.Query(ctx, namespace, "北京")
		Expect(err).Should(BeNil())
		Expect(idx.Delete(ctx, namespace, 1)).Should(Succeed())

		docs, err := idx.Query(ctx, namespace, "北京")
		Expect(err).Should(BeNil())
		Expect(docIDs(docs)).Should(Equal([]int64{3}))
		Expect(backend.Queries()).Should(Equal(int32(2)))
	})

	It("should keep other namespaces cached", func() {
		_, err := idx.Query(ctx, "other", "北京")
		Expect(err).Should(BeNil())
		Expect(idx.Index(ctx, namespace, &types.IndexDocument{URI: "/docs/new", Content: "北京"})).Should(Succeed())
		_, err = idx.Query(ctx, "other", "北京")
		Expect(err).Should(BeNil())
		Expect(backend.Queries()).Should(Equal(int32(1)))
	})

	It("should follow changes made through another indexer", func() {
		peer := NewCached(backend, 16)
		defer peer.Close()

		docs, err := peer.Query(ctx, namespace, "天安门")
		Expect(err).Should(BeNil())
		Expect(docIDs(docs)).Should(Equal([]int64{1}))

		Expect(idx.Index(ctx, namespace, &types.IndexDocument{ID: 2, URI: "/docs/shanghai", Content: "天安门"})).Should(Succeed())
		Eventually(func() []int64 {
			docs, err := peer.Query(ctx, namespace, "天安门")
			Expect(err).Should(BeNil())
			return docIDs(docs)
		}, time.Second, 10*time.Millisecond).Should(ConsistOf(int64(1), int64(2)))
	})

	It("should drop the namespace a document moves out of", func() {
		Expect(idx.Index(ctx, "a", &types.IndexDocument{ID: 7, URI: "/docs/7", Content: "我爱北京"})).Should(Succeed())
		docs, err := idx.Query(ctx, "a", "北京")
		Expect(err).Should(BeNil())
		Expect(docIDs(docs)).Should(Equal([]int64{7}))

		Expect(idx.Index(ctx, "b", &types.IndexDocument{ID: 7, URI: "/docs/7", Content: "我爱北京"})).Should(Succeed())
		docs, err = idx.Query(ctx, "a", "北京")
		Expect(err).Should(BeNil())
		Expect(docs).Should(BeEmpty())
	})

	It("should drop every namespace when the previous home is unknown", func() {
		Expect(backend.Index(ctx, "a", &types.IndexDocument{ID: 8, URI: "/docs/8", Content: "我爱北京"})).Should(Succeed())
		docs, err := idx.Query(ctx, "a", "北京")
		Expect(err).Should(BeNil())
		Expect(docIDs(docs)).Should(Equal([]int64{8}))

		Expect(idx.Index(ctx, "b", &types.IndexDocument{ID: 8, URI: "/docs/8", Content: "我爱北京"})).Should(Succeed())
		docs, err = idx.Query(ctx, "a", "北京")
		Expect(err).Should(BeNil())
		Expect(docs).Should(BeEmpty())
	})
})

var _ = Describe("TestCachedSqliteIndexer", func() {
	It("should not serve a moved document from its old namespace", func() {
		ctx := context.TODO()
		idx := NewCached(newTestSqlite(), 16)
		defer idx.Close()

		Expect(idx.Index(ctx, "a", &types.IndexDocument{ID: 7, URI: "/docs/7", Content: "我爱北京"})).Should(Succeed())
		docs, err := idx.Query(ctx, "a", "北京")
		Expect(err).Should(BeNil())
		Expect(docIDs(docs)).Should(Equal([]int64{7}))

		Expect(idx.Index(ctx, "b", &types.IndexDocument{ID: 7, URI: "/docs/7", Content: "我爱北京"})).Should(Succeed())
		docs, err = idx.Query(ctx, "a", "北京")
		Expect(err).Should(BeNil())
		Expect(docs).Should(BeEmpty())
		docs, err = idx.Query(ctx, "b", "北京")
		Expect(err).Should(BeNil())
		Expect(docIDs(docs)).Should(Equal([]int64{7}))
	})
})
