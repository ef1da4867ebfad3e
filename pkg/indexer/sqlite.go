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
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/basenana/sqljieba/pkg/types"
)

func NewSqlite(path string, tokenizer Tokenizer) (Indexer, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: newDbLogger()})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxIdleTime(time.Hour)
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}
	return NewWithDB(db, tokenizer)
}

type sqliteDialect struct{}

func (sqliteDialect) index(ctx context.Context, db *gorm.DB, namespace string, doc *types.SegmentedDocument) error {
	model := &DocumentModel{}
	model.From(namespace, doc)

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(model).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM documents_fts WHERE rowid = ?`, doc.ID).Error; err != nil {
			return err
		}
		return tx.Exec(`INSERT INTO documents_fts(rowid, title, content) VALUES (?, ?, ?)`,
			doc.ID, doc.TitleTokens, doc.ContentTokens).Error
	})
}

func (sqliteDialect) query(ctx context.Context, db *gorm.DB, namespace string, q *Query) ([]*types.IndexDocument, error) {
	expr := RenderFTS5(q)
	if expr == "" {
		return []*types.IndexDocument{}, nil
	}

	var models []DocumentModel
	err := db.WithContext(ctx).
		Table("documents").
		Select("documents.*").
		Joins("JOIN documents_fts ON documents_fts.rowid = documents.id").
		Where("documents.namespace = ?", namespace).
		Where("documents_fts MATCH ?", expr).
		Order("bm25(documents_fts)").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDocuments(models), nil
}

func (sqliteDialect) delete(ctx context.Context, db *gorm.DB, namespace string, id int64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteDocumentRow(tx, &DocumentModel{}, namespace, id); err != nil {
			return err
		}
		return tx.Exec(`DELETE FROM documents_fts WHERE rowid = ?`, id).Error
	})
}
