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
	"strings"

	"github.com/basenana/sqljieba/pkg/types"
	"github.com/basenana/sqljieba/utils"
)

// segmentDocument fills a missing id, reduces html to text and runs the
// parser over title and content.
func segmentDocument(ctx context.Context, tokenizer Tokenizer, doc *types.IndexDocument) (*types.SegmentedDocument, error) {
	if doc == nil {
		return nil, types.ErrInvalidArgs
	}
	if doc.URI == "" {
		return nil, fmt.Errorf("document uri is empty: %w", types.ErrInvalidArgs)
	}
	if doc.ID == 0 {
		doc.ID = utils.GenerateNewID()
	}
	doc.Touch()

	titleTokens, err := tokenizer.Tokenize(ctx, doc.Title)
	if err != nil {
		return nil, fmt.Errorf("segment title of document %d failed: %w", doc.ID, err)
	}
	contentTokens, err := tokenizer.Tokenize(ctx, utils.DocumentText(doc.ContentType, doc.Content))
	if err != nil {
		return nil, fmt.Errorf("segment content of document %d failed: %w", doc.ID, err)
	}

	return &types.SegmentedDocument{
		IndexDocument: *doc,
		TitleTokens:   strings.Join(titleTokens, " "),
		ContentTokens: strings.Join(contentTokens, " "),
	}, nil
}
