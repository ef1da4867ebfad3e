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
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func buildMigrations(dialect string) []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "2026101800",
			Migrate: func(db *gorm.DB) error {
				if dialect == dialectPostgres {
					return db.AutoMigrate(&PostgresDocumentModel{})
				}
				return db.AutoMigrate(&DocumentModel{})
			},
			Rollback: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&DocumentModel{})
			},
		},
		{
			ID: "2026101801",
			Migrate: func(db *gorm.DB) error {
				switch dialect {
				case dialectSqlite:
					return db.Exec(`CREATE VIRTUAL TABLE IF NOT EXISTS documents_fts USING fts5(
						title, content,
						tokenize='unicode61'
					)`).Error
				case dialectPostgres:
					return db.Exec(`CREATE INDEX IF NOT EXISTS idx_documents_token ON documents USING GIN (token)`).Error
				case dialectMysql:
					return db.Exec("ALTER TABLE `documents` ADD FULLTEXT INDEX ft_documents_tokens (title_tokens, content_tokens)").Error
				}
				return nil
			},
			Rollback: func(db *gorm.DB) error {
				if dialect == dialectSqlite {
					return db.Exec(`DROP TABLE IF EXISTS documents_fts`).Error
				}
				return nil
			},
		},
	}
}

func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, buildMigrations(db.Dialector.Name()))
	return m.Migrate()
}
