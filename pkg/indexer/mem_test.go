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
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/basenana/sqljieba/pkg/types"
)

// indexerBehaviour runs the shared query semantics against any host.
func indexerBehaviour(newIndexer func() Indexer) {
	var (
		ctx = context.TODO()
		idx Indexer
	)
	BeforeEach(func() {
		idx = newIndexer()
		indexTestDocuments(idx, namespace)
	})
	AfterEach(func() {
		Expect(idx.Close()).Should(Succeed())
	})

	query := func(q string) []int64 {
		docs, err := idx.Query(ctx, namespace, q)
		Expect(err).Should(BeNil())
		return docIDs(docs)
	}

	It("should find single word", func() {
		Expect(query("北京")).Should(ConsistOf(int64(1), int64(3)))
	})
	It("should honor must not", func() {
		Expect(query("+北京 -清华大学")).Should(Equal([]int64{1}))
	})
	It("should match any optional word", func() {
		Expect(query("上海 北京")).Should(ConsistOf(int64(1), int64(2), int64(3)))
	})
	It("should match phrases in order", func() {
		Expect(query(`"北京 天安门"`)).Should(Equal([]int64{1}))
		Expect(query("北京天安门")).Should(Equal([]int64{1}))
	})
	It("should match prefixes", func() {
		Expect(query("清华*")).Should(Equal([]int64{3}))
	})
	It("should ignore case", func() {
		Expect(query("HELLO")).Should(Equal([]int64{4}))
	})
	It("should return nothing for excluded only query", func() {
		Expect(query("-北京")).Should(BeEmpty())
		Expect(query("")).Should(BeEmpty())
	})
	It("should keep namespaces apart", func() {
		docs, err := idx.Query(ctx, "other", "北京")
		Expect(err).Should(BeNil())
		Expect(docs).Should(BeEmpty())
	})
	It("should delete documents", func() {
		Expect(idx.Delete(ctx, namespace, 1)).Should(Succeed())
		Expect(query("北京")).Should(Equal([]int64{3}))
		err := idx.Delete(ctx, namespace, 1)
		Expect(errors.Is(err, types.ErrNotFound)).Should(BeTrue())
	})
	It("should replace documents on reindex", func() {
		Expect(idx.Index(ctx, namespace, &types.IndexDocument{ID: 2, URI: "/docs/shanghai", Title: "上海", Content: "我爱天安门"})).Should(Succeed())
		Expect(query("天安门")).Should(ConsistOf(int64(1), int64(2)))
		Expect(query("+我 +在")).Should(BeEmpty())
	})
	It("should move a document reindexed under another namespace", func() {
		Expect(idx.Index(ctx, "a", &types.IndexDocument{ID: 7, URI: "/docs/7", Content: "我爱北京"})).Should(Succeed())
		Expect(idx.Index(ctx, "b", &types.IndexDocument{ID: 7, URI: "/docs/7", Content: "我爱北京"})).Should(Succeed())

		docs, err := idx.Query(ctx, "a", "北京")
		Expect(err).Should(BeNil())
		Expect(docs).Should(BeEmpty())
		docs, err = idx.Query(ctx, "b", "北京")
		Expect(err).Should(BeNil())
		Expect(docIDs(docs)).Should(Equal([]int64{7}))
	})
	It("should index html text only", func() {
		doc := &types.IndexDocument{URI: "/docs/page.html", ContentType: types.ContentTypeHTML,
			Content: "<html><head><script>上海</script></head><body><p>广场</p></body></html>"}
		Expect(idx.Index(ctx, namespace, doc)).Should(Succeed())
		Expect(doc.ID).ShouldNot(BeZero())
		Expect(query("广场")).Should(Equal([]int64{doc.ID}))
		Expect(query("上海")).Should(Equal([]int64{2}))
	})
	It("should reject documents without uri", func() {
		err := idx.Index(ctx, namespace, &types.IndexDocument{ID: 9, Title: "北京"})
		Expect(errors.Is(err, types.ErrInvalidArgs)).Should(BeTrue())
	})
}

var _ = Describe("TestMemIndexer", func() {
	indexerBehaviour(func() Indexer {
		return NewMem(tokenizer)
	})

	It("should rank documents by hits", func() {
		idx := NewMem(tokenizer)
		indexTestDocuments(idx, namespace)
		docs, err := idx.Query(context.TODO(), namespace, "北京")
		Expect(err).Should(BeNil())
		Expect(docIDs(docs)).Should(Equal([]int64{1, 3}))

		docs, err = idx.Query(context.TODO(), namespace, "北京 >清华大学")
		Expect(err).Should(BeNil())
		Expect(docIDs(docs)).Should(Equal([]int64{3, 1}))
	})
})
