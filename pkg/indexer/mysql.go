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

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/basenana/sqljieba/pkg/types"
)

// NewMysql stores the segmented text in an InnoDB FULLTEXT index. The
// server needs innodb_ft_min_token_size=1, otherwise most Chinese words
// are shorter than the default minimum and never indexed.
func NewMysql(dsn string, tokenizer Tokenizer) (Indexer, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newDbLogger()})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}
	return NewWithDB(db, tokenizer)
}

const mysqlMatch = "MATCH(title_tokens, content_tokens) AGAINST (? IN BOOLEAN MODE)"

type mysqlDialect struct{}

func (mysqlDialect) index(ctx context.Context, db *gorm.DB, namespace string, doc *types.SegmentedDocument) error {
	model := &DocumentModel{}
	model.From(namespace, doc)
	return db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(model).Error
}

func (mysqlDialect) query(ctx context.Context, db *gorm.DB, namespace string, q *Query) ([]*types.IndexDocument, error) {
	expr := RenderBooleanMode(q)
	if expr == "" {
		return []*types.IndexDocument{}, nil
	}

	var models []DocumentModel
	err := db.WithContext(ctx).
		Model(&DocumentModel{}).
		Select("*, "+mysqlMatch+" AS score", expr).
		Where("namespace = ?", namespace).
		Where(mysqlMatch, expr).
		Order("score DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDocuments(models), nil
}

func (mysqlDialect) delete(ctx context.Context, db *gorm.DB, namespace string, id int64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteDocumentRow(tx, &DocumentModel{}, namespace, id)
	})
}
