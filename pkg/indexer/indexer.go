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
	"fmt"

	"github.com/basenana/sqljieba/config"
	"github.com/basenana/sqljieba/pkg/ftparser"
	"github.com/basenana/sqljieba/pkg/types"
)

// Indexer is a full-text host. It segments documents with a parser on
// Index and parses boolean queries with the same parser on Query.
type Indexer interface {
	Index(ctx context.Context, namespace string, doc *types.IndexDocument) error
	Query(ctx context.Context, namespace, query string) ([]*types.IndexDocument, error)
	Delete(ctx context.Context, namespace string, id int64) error
	Close() error
}

// New builds the indexer named by cfg.Type. The parser must be initialized
// by the caller and outlive the indexer.
func New(cfg config.Index, parser *ftparser.Parser) (Indexer, error) {
	var (
		idx Indexer
		err error
	)
	tokenizer := NewParserTokenizer(parser)
	switch cfg.Type {
	case config.MemoryIndex, "":
		idx = NewMem(tokenizer)
	case config.SqliteIndex:
		idx, err = NewSqlite(cfg.Path, tokenizer)
	case config.PostgresIndex:
		idx, err = NewPostgres(cfg.DSN, tokenizer)
	case config.MysqlIndex:
		idx, err = NewMysql(cfg.DSN, tokenizer)
	default:
		return nil, fmt.Errorf("unknown index type %s", cfg.Type)
	}
	if err != nil {
		return nil, err
	}

	idx = WithEvents(idx)
	if cfg.CacheSize > 0 {
		idx = NewCached(idx, cfg.CacheSize)
	}
	return idx, nil
}
