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
	"database/sql/driver"
	"fmt"

	"github.com/basenana/sqljieba/pkg/types"
)

// DocumentModel is the documents table shared by the sql hosts. The token
// columns hold the parser output joined by single spaces.
type DocumentModel struct {
	ID            int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	URI           string `gorm:"column:uri;size:512;index:doc_uri"`
	Namespace     string `gorm:"column:namespace;size:64;index:doc_namespace"`
	Title         string `gorm:"column:title;type:text"`
	Content       string `gorm:"column:content;type:text"`
	ContentType   string `gorm:"column:content_type;size:32"`
	TitleTokens   string `gorm:"column:title_tokens;type:text"`
	ContentTokens string `gorm:"column:content_tokens;type:text"`
	CreatedAt     int64  `gorm:"column:created_at;autoCreateTime:false"`
	ChangedAt     int64  `gorm:"column:changed_at"`
}

func (d *DocumentModel) TableName() string {
	return "documents"
}

func (d *DocumentModel) From(namespace string, document *types.SegmentedDocument) {
	d.ID = document.ID
	d.URI = document.URI
	d.Namespace = namespace
	d.Title = document.Title
	d.Content = document.Content
	d.ContentType = document.ContentType
	d.TitleTokens = document.TitleTokens
	d.ContentTokens = document.ContentTokens
	d.CreatedAt = document.CreateAt
	d.ChangedAt = document.ChangedAt
}

func (d *DocumentModel) To() *types.IndexDocument {
	return &types.IndexDocument{
		ID:          d.ID,
		URI:         d.URI,
		Title:       d.Title,
		Content:     d.Content,
		ContentType: d.ContentType,
		CreateAt:    d.CreatedAt,
		ChangedAt:   d.ChangedAt,
	}
}

type PostgresDocumentModel struct {
	DocumentModel
	Token TsVector `gorm:"column:token;type:tsvector"`
}

func (d *PostgresDocumentModel) TableName() string {
	return "documents"
}

type TsVector string

func (t *TsVector) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*t = TsVector(v)
	case string:
		*t = TsVector(v)
	default:
		return fmt.Errorf("cannot scan type %T into TsVector", value)
	}
	return nil
}

func (t TsVector) Value() (driver.Value, error) {
	return string(t), nil
}
