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

package apps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/basenana/sqljieba/config"
	"github.com/basenana/sqljieba/pkg/indexer"
	"github.com/basenana/sqljieba/pkg/types"
	"github.com/basenana/sqljieba/utils"
	"github.com/basenana/sqljieba/utils/logger"
)

var (
	namespace     string
	indexParallel int
	searchLimit   int
)

func init() {
	indexCmd.Flags().StringVar(&namespace, "namespace", types.DefaultNamespace, "index namespace")
	indexCmd.Flags().IntVar(&indexParallel, "parallel", 4, "files indexed at the same time")
	searchCmd.Flags().StringVar(&namespace, "namespace", types.DefaultNamespace, "index namespace")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "max documents printed")
}

var indexCmd = &cobra.Command{
	Use:   "index FILE...",
	Short: "Index files into the configured full-text index",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withIndexer(func(idx indexer.Indexer) error {
			return indexFiles(cmd.Context(), cmd.OutOrStdout(), idx, namespace, args, indexParallel)
		})
	},
}

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search the configured full-text index with a boolean query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withIndexer(func(idx indexer.Indexer) error {
			return searchDocuments(cmd.Context(), cmd.OutOrStdout(), idx, namespace, strings.Join(args, " "), searchLimit)
		})
	},
}

func withIndexer(fn func(idx indexer.Indexer) error) error {
	cfg, err := loadConfig(false)
	if err != nil {
		return err
	}
	if cfg.Index.Type == config.MemoryIndex {
		logger.NewLogger("sqljieba").Warn("memory index is dropped when the command exits")
	}
	parser, err := newParser(cfg)
	if err != nil {
		return err
	}
	defer parser.Deinit()

	idx, err := indexer.New(cfg.Index, parser)
	if err != nil {
		return err
	}
	defer idx.Close()
	return fn(idx)
}

func indexFiles(ctx context.Context, out io.Writer, idx indexer.Indexer, namespace string, files []string, parallel int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var (
		limiter = utils.NewParallelLimiter(parallel)
		wg      sync.WaitGroup
		mux     sync.Mutex
		errs    []error
	)
	for _, file := range files {
		if err := limiter.Acquire(ctx); err != nil {
			return err
		}
		wg.Add(1)
		go func(file string) {
			defer wg.Done()
			defer limiter.Release()
			doc, err := indexFile(ctx, idx, namespace, file)

			mux.Lock()
			defer mux.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("index %s failed: %w", file, err))
				return
			}
			fmt.Fprintf(out, "%d\t%s\n", doc.ID, doc.URI)
		}(file)
	}
	wg.Wait()
	return errors.Join(errs...)
}

func indexFile(ctx context.Context, idx indexer.Indexer, namespace, file string) (doc *types.IndexDocument, err error) {
	defer func() {
		if rErr := utils.Recover(recover()); rErr != nil {
			err = rErr
		}
	}()

	uri, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(uri)
	if err != nil {
		return nil, err
	}
	// reindexing a file replaces its previous version
	doc = &types.IndexDocument{
		ID:          utils.StableID(uri),
		URI:         uri,
		Title:       strings.TrimSuffix(filepath.Base(uri), filepath.Ext(uri)),
		Content:     string(content),
		ContentType: fileContentType(uri),
	}
	return doc, idx.Index(ctx, namespace, doc)
}

func fileContentType(uri string) string {
	switch strings.ToLower(filepath.Ext(uri)) {
	case ".html", ".htm":
		return types.ContentTypeHTML
	case ".md", ".markdown":
		return types.ContentTypeMarkdown
	default:
		return types.ContentTypeText
	}
}

func searchDocuments(ctx context.Context, out io.Writer, idx indexer.Indexer, namespace, query string, limit int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	docs, err := idx.Query(ctx, namespace, query)
	if err != nil {
		return err
	}
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	for _, doc := range docs {
		fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", doc.ID, doc.URI, doc.Title, utils.Snippet(doc.ContentType, doc.Content, 60))
	}
	return nil
}
