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
	"regexp"

	"github.com/DATA-DOG/go-sqlmock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/basenana/sqljieba/pkg/types"
)

var documentColumns = []string{"id", "uri", "namespace", "title", "content", "content_type",
	"title_tokens", "content_tokens", "created_at", "changed_at"}

var _ = Describe("TestMysqlIndexer", func() {
	var (
		ctx  = context.TODO()
		mock sqlmock.Sqlmock
		idx  *metaDB
	)
	BeforeEach(func() {
		mockDB, m, err := sqlmock.New()
		Expect(err).Should(BeNil())
		mock = m
		db, err := gorm.Open(mysql.New(mysql.Config{Conn: mockDB, SkipInitializeWithVersion: true}), &gorm.Config{Logger: newDbLogger()})
		Expect(err).Should(BeNil())
		idx, err = newMetaDB(db, tokenizer)
		Expect(err).Should(BeNil())
	})
	AfterEach(func() {
		Expect(mock.ExpectationsWereMet()).Should(Succeed())
	})

	It("should upsert segmented columns", func() {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `documents` .* ON DUPLICATE KEY UPDATE").
			WithArgs(int64(1), "/docs/beijing", namespace, "北京", "我爱北京天安门", "",
				"北京", "我 爱 北京 天安门", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		doc := &types.IndexDocument{ID: 1, URI: "/docs/beijing", Title: "北京", Content: "我爱北京天安门"}
		Expect(idx.Index(ctx, namespace, doc)).Should(Succeed())
	})

	It("should query in boolean mode", func() {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT *, MATCH(title_tokens, content_tokens) AGAINST (? IN BOOLEAN MODE) AS score FROM `documents` WHERE namespace = ? AND MATCH(title_tokens, content_tokens) AGAINST (? IN BOOLEAN MODE) ORDER BY score DESC")).
			WithArgs(`+"北京 天安门" -上海`, namespace, `+"北京 天安门" -上海`).
			WillReturnRows(sqlmock.NewRows(append(documentColumns, "score")).
				AddRow(1, "/docs/beijing", namespace, "北京", "我爱北京天安门", "", "北京", "我 爱 北京 天安门", 1, 2, 1.5))

		docs, err := idx.Query(ctx, namespace, "+北京天安门 -上海")
		Expect(err).Should(BeNil())
		Expect(docIDs(docs)).Should(Equal([]int64{1}))
		Expect(docs[0].URI).Should(Equal("/docs/beijing"))
		Expect(docs[0].ChangedAt).Should(Equal(int64(2)))
	})

	It("should skip the database for empty query", func() {
		docs, err := idx.Query(ctx, namespace, "  ")
		Expect(err).Should(BeNil())
		Expect(docs).Should(BeEmpty())
	})

	It("should delete by namespace and id", func() {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `documents` WHERE namespace = ? AND id = ?")).
			WithArgs(namespace, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		Expect(idx.Delete(ctx, namespace, 1)).Should(Succeed())
	})

	It("should report missing documents", func() {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `documents` WHERE namespace = ? AND id = ?")).
			WithArgs(namespace, int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()
		err := idx.Delete(ctx, namespace, 404)
		Expect(errors.Is(err, types.ErrNotFound)).Should(BeTrue())
	})
})

var _ = Describe("TestPostgresIndexer", func() {
	var (
		ctx  = context.TODO()
		mock sqlmock.Sqlmock
		idx  *metaDB
	)
	BeforeEach(func() {
		mockDB, m, err := sqlmock.New()
		Expect(err).Should(BeNil())
		mock = m
		db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB}), &gorm.Config{Logger: newDbLogger()})
		Expect(err).Should(BeNil())
		idx, err = newMetaDB(db, tokenizer)
		Expect(err).Should(BeNil())
	})
	AfterEach(func() {
		Expect(mock.ExpectationsWereMet()).Should(Succeed())
	})

	It("should query with tsquery", func() {
		tsQuery := `'北京' & !'上海'`
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT *, ts_rank(token, to_tsquery('simple', $1)) AS rank FROM "documents" WHERE namespace = $2 AND token @@ to_tsquery('simple', $3) ORDER BY rank DESC`)).
			WithArgs(tsQuery, namespace, tsQuery).
			WillReturnRows(sqlmock.NewRows(append(documentColumns, "token", "rank")).
				AddRow(3, "/docs/tsinghua", namespace, "清华大学", "清华大学在北京", "", "清华大学", "清华大学 在 北京", 1, 1, "'北京':3B", 0.5))

		docs, err := idx.Query(ctx, namespace, "+北京 -上海")
		Expect(err).Should(BeNil())
		Expect(docIDs(docs)).Should(Equal([]int64{3}))
	})

	It("should delete by namespace and id", func() {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "documents" WHERE namespace = $1 AND id = $2`)).
			WithArgs(namespace, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		Expect(idx.Delete(ctx, namespace, 3)).Should(Succeed())
	})
})
