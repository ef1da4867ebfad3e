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
	"strings"
	"unicode"

	"github.com/basenana/sqljieba/pkg/ftparser"
)

type ClauseKind int

const (
	ClauseWord ClauseKind = iota
	ClausePhrase
	ClauseGroup
)

// Clause is one operand of a boolean query. Words holds one word for
// ClauseWord and the phrase words for ClausePhrase, Group the members of
// a parenthesized group.
type Clause struct {
	Kind         ClauseKind
	Words        []string
	Group        []*Clause
	YesNo        int
	WeightAdjust int
	WasSign      bool
	Trunc        bool
}

func (c *Clause) Required() bool {
	return c.YesNo > 0
}

func (c *Clause) Excluded() bool {
	return c.YesNo < 0
}

func (c *Clause) empty() bool {
	switch c.Kind {
	case ClauseGroup:
		return len(c.Group) == 0
	default:
		return len(c.Words) == 0
	}
}

type Query struct {
	Raw     string
	Clauses []*Clause
}

func (q *Query) Empty() bool {
	return q == nil || len(q.Clauses) == 0
}

// ParseQuery runs the parser in full boolean mode and folds its tokens into
// a clause tree. Stop words are dropped.
func ParseQuery(ctx context.Context, parser *ftparser.Parser, raw string) (*Query, error) {
	q := &Query{Raw: raw}
	if strings.TrimSpace(raw) == "" {
		return q, nil
	}
	b := &queryBuilder{}
	err := parser.Parse(ctx, ftparser.Param{Doc: []byte(raw), Mode: ftparser.ModeFullBoolean, Sink: b})
	if err != nil {
		return nil, err
	}
	q.Clauses = b.finish()
	return q, nil
}

type queryBuilder struct {
	root  []*Clause
	stack []*Clause
}

func (b *queryBuilder) AddWord(ctx context.Context, word []byte, info *ftparser.BooleanInfo) error {
	switch info.Type {
	case ftparser.TokenLeftParen:
		kind := ClauseGroup
		if info.Quot {
			kind = ClausePhrase
		}
		b.stack = append(b.stack, &Clause{Kind: kind, YesNo: info.YesNo, WeightAdjust: info.WeightAdjust, WasSign: info.WasSign})
	case ftparser.TokenRightParen:
		b.pop()
	case ftparser.TokenWord:
		w := strings.ToLower(string(word))
		if top := b.top(); top != nil && top.Kind == ClausePhrase {
			top.Words = append(top.Words, w)
			top.Trunc = info.Trunc
			return nil
		}
		b.add(&Clause{Kind: ClauseWord, Words: []string{w}, YesNo: info.YesNo,
			WeightAdjust: info.WeightAdjust, WasSign: info.WasSign, Trunc: info.Trunc})
	}
	return nil
}

func (b *queryBuilder) top() *Clause {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

func (b *queryBuilder) pop() {
	top := b.top()
	if top == nil {
		return
	}
	b.stack = b.stack[:len(b.stack)-1]
	if top.Kind == ClausePhrase && len(top.Words) == 1 {
		top.Kind = ClauseWord
	}
	b.add(top)
}

func (b *queryBuilder) add(c *Clause) {
	if c.empty() {
		return
	}
	if parent := b.top(); parent != nil {
		if parent.Kind == ClausePhrase {
			parent.Words = append(parent.Words, c.Words...)
			return
		}
		parent.Group = append(parent.Group, c)
		return
	}
	b.root = append(b.root, c)
}

func (b *queryBuilder) finish() []*Clause {
	for len(b.stack) > 0 {
		b.pop()
	}
	return b.root
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
