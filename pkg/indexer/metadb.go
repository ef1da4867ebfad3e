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
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/basenana/sqljieba/pkg/types"
	"github.com/basenana/sqljieba/utils"
	"github.com/basenana/sqljieba/utils/logger"
)

const (
	dialectSqlite   = "sqlite"
	dialectPostgres = "postgres"
	dialectMysql    = "mysql"
)

// sqlDialect holds the statements that differ between the sql hosts.
type sqlDialect interface {
	index(ctx context.Context, db *gorm.DB, namespace string, doc *types.SegmentedDocument) error
	query(ctx context.Context, db *gorm.DB, namespace string, q *Query) ([]*types.IndexDocument, error)
	delete(ctx context.Context, db *gorm.DB, namespace string, id int64) error
}

type metaDB struct {
	db        *gorm.DB
	tokenizer Tokenizer
	dialect   sqlDialect
	logger    *zap.SugaredLogger
}

var _ Indexer = &metaDB{}

// NewWithDB uses an opened gorm handle, the schema is migrated first.
func NewWithDB(db *gorm.DB, tokenizer Tokenizer) (Indexer, error) {
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate documents schema failed: %w", err)
	}
	return newMetaDB(db, tokenizer)
}

func newMetaDB(db *gorm.DB, tokenizer Tokenizer) (*metaDB, error) {
	m := &metaDB{db: db, tokenizer: tokenizer, logger: logger.NewLogger("metaDB")}
	switch db.Dialector.Name() {
	case dialectSqlite:
		m.dialect = sqliteDialect{}
	case dialectPostgres:
		m.dialect = postgresDialect{}
	case dialectMysql:
		m.dialect = mysqlDialect{}
	default:
		return nil, fmt.Errorf("unknown dialector %s", db.Dialector.Name())
	}
	return m, nil
}

func (m *metaDB) Index(ctx context.Context, namespace string, doc *types.IndexDocument) error {
	defer utils.TraceRegion(ctx, "indexer.%s.index", m.db.Dialector.Name())()
	seg, err := segmentDocument(ctx, m.tokenizer, doc)
	if err != nil {
		return err
	}
	if err = m.dialect.index(ctx, m.db, namespace, seg); err != nil {
		m.logger.Errorw("index document failed", "namespace", namespace, "id", seg.ID, "err", err)
		return sqlError2Error(err)
	}
	return nil
}

func (m *metaDB) Query(ctx context.Context, namespace, query string) ([]*types.IndexDocument, error) {
	q, err := m.tokenizer.ParseQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	if q.Empty() {
		return []*types.IndexDocument{}, nil
	}
	defer utils.TraceRegion(ctx, "indexer.%s.query", m.db.Dialector.Name())()
	startAt := time.Now()
	docs, err := m.dialect.query(ctx, m.db, namespace, q)
	if err != nil {
		m.logger.Errorw("query documents failed", "namespace", namespace, "query", query, "err", err)
		return nil, sqlError2Error(err)
	}
	m.logger.Debugw("query documents", "namespace", namespace, "query", query, "hits", len(docs), "elapsed", time.Since(startAt).String())
	return docs, nil
}

func (m *metaDB) Delete(ctx context.Context, namespace string, id int64) error {
	return sqlError2Error(m.dialect.delete(ctx, m.db, namespace, id))
}

func (m *metaDB) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func sqlError2Error(err error) error {
	switch err {
	case gorm.ErrRecordNotFound:
		return types.ErrNotFound
	default:
		return err
	}
}

func toDocuments(models []DocumentModel) []*types.IndexDocument {
	result := make([]*types.IndexDocument, 0, len(models))
	for i := range models {
		result = append(result, models[i].To())
	}
	return result
}

func deleteDocumentRow(tx *gorm.DB, model interface{}, namespace string, id int64) error {
	res := tx.Where("namespace = ? AND id = ?", namespace, id).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("document %d: %w", id, types.ErrNotFound)
	}
	return nil
}
