/*
 Copyright 2023 NanaFS Authors.

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
	"path"

	"github.com/glebarez/sqlite"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/basenana/sqljieba/config"
	"github.com/basenana/sqljieba/pkg/types"
)

var sqliteSeq int

func newTestSqlite() Indexer {
	sqliteSeq++
	idx, err := NewSqlite(path.Join(workdir, fmt.Sprintf("sqlite-%d.db", sqliteSeq)), tokenizer)
	Expect(err).Should(BeNil())
	return idx
}

var _ = Describe("TestSqliteIndexer", func() {
	indexerBehaviour(newTestSqlite)

	It("should keep fts rows in step with documents", func() {
		idx := newTestSqlite()
		defer idx.Close()
		indexTestDocuments(idx, namespace)

		db := idx.(*metaDB).db
		var count int64
		Expect(db.Table("documents_fts").Count(&count).Error).Should(BeNil())
		Expect(count).Should(Equal(int64(len(testDocuments))))

		Expect(idx.Index(context.TODO(), namespace, &types.IndexDocument{ID: 1, URI: "/docs/beijing", Title: "北京", Content: "天安门广场"})).Should(Succeed())
		Expect(db.Table("documents_fts").Count(&count).Error).Should(BeNil())
		Expect(count).Should(Equal(int64(len(testDocuments))))

		var model DocumentModel
		Expect(db.Where("id = ?", 1).First(&model).Error).Should(BeNil())
		Expect(model.ContentTokens).Should(Equal("天安门 广场"))
		Expect(model.Namespace).Should(Equal(namespace))
	})

	It("should migrate twice", func() {
		db, err := gorm.Open(sqlite.Open(path.Join(workdir, "migrate.db")), &gorm.Config{Logger: newDbLogger()})
		Expect(err).Should(BeNil())
		Expect(Migrate(db)).Should(Succeed())
		Expect(Migrate(db)).Should(Succeed())
		Expect(db.Migrator().HasTable("documents")).Should(BeTrue())
		Expect(db.Migrator().HasTable("documents_fts")).Should(BeTrue())
	})

	It("should be built from config", func() {
		idx, err := New(config.Index{Type: config.SqliteIndex, Path: path.Join(workdir, "factory.db"), CacheSize: 16}, testParser)
		Expect(err).Should(BeNil())
		defer idx.Close()
		Expect(idx.Index(context.TODO(), namespace, &types.IndexDocument{ID: 7, URI: "/docs/7", Content: "我爱北京"})).Should(Succeed())
		docs, err := idx.Query(context.TODO(), namespace, "北京")
		Expect(err).Should(BeNil())
		Expect(docIDs(docs)).Should(Equal([]int64{7}))
	})
})
