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
	"strings"

	"github.com/basenana/sqljieba/pkg/ftparser"
)

// Tokenizer turns text into the words stored in an index.
type Tokenizer interface {
	Tokenize(ctx context.Context, content string) ([]string, error)
	ParseQuery(ctx context.Context, query string) (*Query, error)
}

type parserTokenizer struct {
	parser *ftparser.Parser
}

func NewParserTokenizer(parser *ftparser.Parser) Tokenizer {
	return &parserTokenizer{parser: parser}
}

// Tokenize returns lower-cased words in document order. Whitespace and
// punctuation tokens are dropped because no host can match them.
func (t *parserTokenizer) Tokenize(ctx context.Context, content string) ([]string, error) {
	if content == "" {
		return []string{}, nil
	}
	c := &collector{tokens: make([]string, 0, len(content)/3)}
	err := t.parser.Parse(ctx, ftparser.Param{Doc: []byte(content), Mode: ftparser.ModeSimple, Sink: c})
	if err != nil {
		return nil, err
	}
	return c.tokens, nil
}

func (t *parserTokenizer) ParseQuery(ctx context.Context, query string) (*Query, error) {
	return ParseQuery(ctx, t.parser, query)
}

type collector struct {
	tokens []string
}

func (c *collector) AddWord(ctx context.Context, word []byte, info *ftparser.BooleanInfo) error {
	if info.Type != ftparser.TokenWord || !isIndexable(word) {
		return nil
	}
	c.tokens = append(c.tokens, strings.ToLower(string(word)))
	return nil
}

func isIndexable(word []byte) bool {
	for _, r := range string(word) {
		if isWordRune(r) {
			return true
		}
	}
	return false
}
