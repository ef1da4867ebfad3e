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
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/basenana/sqljieba/pkg/types"
)

func NewPostgres(dsn string, tokenizer Tokenizer) (Indexer, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: newDbLogger()})
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

type postgresDialect struct{}

func (postgresDialect) index(ctx context.Context, db *gorm.DB, namespace string, doc *types.SegmentedDocument) error {
	model := &PostgresDocumentModel{}
	model.From(namespace, doc)

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(model).Error; err != nil {
			return err
		}
		return tx.Model(&PostgresDocumentModel{}).
			Where("id = ?", doc.ID).
			Update("token", gorm.Expr("setweight(to_tsvector('simple', ?), 'A') || setweight(to_tsvector('simple', ?), 'B')",
				doc.TitleTokens, doc.ContentTokens)).Error
	})
}

func (postgresDialect) query(ctx context.Context, db *gorm.DB, namespace string, q *Query) ([]*types.IndexDocument, error) {
	tsQuery := RenderTsQuery(q)
	if tsQuery == "" {
		return []*types.IndexDocument{}, nil
	}

	var models []PostgresDocumentModel
	err := db.WithContext(ctx).
		Model(&PostgresDocumentModel{}).
		Select("*, ts_rank(token, to_tsquery('simple', ?)) AS rank", tsQuery).
		Where("namespace = ?", namespace).
		Where("token @@ to_tsquery('simple', ?)", tsQuery).
		Order("rank DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	result := make([]*types.IndexDocument, 0, len(models))
	for i := range models {
		result = append(result, models[i].To())
	}
	return result, nil
}

func (postgresDialect) delete(ctx context.Context, db *gorm.DB, namespace string, id int64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteDocumentRow(tx, &PostgresDocumentModel{}, namespace, id)
	})
}
