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
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/basenana/sqljieba/pkg/types"
)

type memDocument struct {
	doc       *types.IndexDocument
	positions map[string][]int
}

type memNamespace struct {
	docs     map[int64]*memDocument
	postings map[string]map[int64]struct{}
}

type memIndexer struct {
	tokenizer  Tokenizer
	namespaces map[string]*memNamespace
	mux        sync.RWMutex
}

var _ Indexer = &memIndexer{}

func NewMem(tokenizer Tokenizer) Indexer {
	return &memIndexer{tokenizer: tokenizer, namespaces: map[string]*memNamespace{}}
}

func (m *memIndexer) Index(ctx context.Context, namespace string, doc *types.IndexDocument) error {
	seg, err := segmentDocument(ctx, m.tokenizer, doc)
	if err != nil {
		return err
	}

	positions := map[string][]int{}
	pos := 0
	for _, field := range []string{seg.TitleTokens, seg.ContentTokens} {
		for _, w := range strings.Fields(field) {
			positions[w] = append(positions[w], pos)
			pos++
		}
		// keep phrases from matching across title and content
		pos++
	}

	stored := seg.IndexDocument
	m.mux.Lock()
	defer m.mux.Unlock()
	// a document id lives in one namespace at a time
	for _, other := range m.namespaces {
		other.remove(stored.ID)
	}
	ns := m.namespace(namespace)
	ns.docs[stored.ID] = &memDocument{doc: &stored, positions: positions}
	for w := range positions {
		if ns.postings[w] == nil {
			ns.postings[w] = map[int64]struct{}{}
		}
		ns.postings[w][stored.ID] = struct{}{}
	}
	return nil
}

func (m *memIndexer) Query(ctx context.Context, namespace, query string) ([]*types.IndexDocument, error) {
	q, err := m.tokenizer.ParseQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	if q.Empty() {
		return []*types.IndexDocument{}, nil
	}

	m.mux.RLock()
	defer m.mux.RUnlock()
	ns, ok := m.namespaces[namespace]
	if !ok {
		return []*types.IndexDocument{}, nil
	}

	type scored struct {
		doc   *types.IndexDocument
		score float64
	}
	var hits []scored
	for id := range ns.candidates(q.Clauses) {
		d := ns.docs[id]
		matched, score := evalClauses(d, q.Clauses)
		if matched {
			copied := *d.doc
			hits = append(hits, scored{doc: &copied, score: score})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].doc.ID < hits[j].doc.ID
	})

	result := make([]*types.IndexDocument, 0, len(hits))
	for _, h := range hits {
		result = append(result, h.doc)
	}
	return result, nil
}

func (m *memIndexer) Delete(ctx context.Context, namespace string, id int64) error {
	m.mux.Lock()
	defer m.mux.Unlock()
	ns, ok := m.namespaces[namespace]
	if !ok || !ns.remove(id) {
		return fmt.Errorf("document %d: %w", id, types.ErrNotFound)
	}
	return nil
}

func (m *memIndexer) Close() error {
	return nil
}

func (m *memIndexer) namespace(name string) *memNamespace {
	ns, ok := m.namespaces[name]
	if !ok {
		ns = &memNamespace{docs: map[int64]*memDocument{}, postings: map[string]map[int64]struct{}{}}
		m.namespaces[name] = ns
	}
	return ns
}

func (n *memNamespace) remove(id int64) bool {
	old, ok := n.docs[id]
	if !ok {
		return false
	}
	for w := range old.positions {
		delete(n.postings[w], id)
		if len(n.postings[w]) == 0 {
			delete(n.postings, w)
		}
	}
	delete(n.docs, id)
	return true
}

// candidates collects documents holding any word of a non-excluded clause.
func (n *memNamespace) candidates(clauses []*Clause) map[int64]struct{} {
	result := map[int64]struct{}{}
	var walk func(cs []*Clause)
	walk = func(cs []*Clause) {
		for _, c := range cs {
			if c.Excluded() {
				continue
			}
			if c.Kind == ClauseGroup {
				walk(c.Group)
				continue
			}
			for i, w := range c.Words {
				trunc := c.Trunc && i == len(c.Words)-1
				for _, term := range n.expand(w, trunc) {
					for id := range n.postings[term] {
						result[id] = struct{}{}
					}
				}
			}
		}
	}
	walk(clauses)
	return result
}

func (n *memNamespace) expand(word string, trunc bool) []string {
	if !trunc {
		return []string{word}
	}
	var result []string
	for term := range n.postings {
		if strings.HasPrefix(term, word) {
			result = append(result, term)
		}
	}
	return result
}

// evalClauses applies MySQL boolean semantics to one document.
func evalClauses(d *memDocument, clauses []*Clause) (bool, float64) {
	var (
		hasRequired bool
		anyOptional bool
		score       float64
	)
	for _, c := range clauses {
		matched, s := evalClause(d, c)
		switch {
		case c.Required():
			hasRequired = true
			if !matched {
				return false, 0
			}
		case c.Excluded():
			if matched {
				return false, 0
			}
			continue
		default:
			if matched {
				anyOptional = true
			}
		}
		if matched {
			score += clauseWeight(c) * s
		}
	}
	if !hasRequired && !anyOptional {
		return false, 0
	}
	return true, score
}

func evalClause(d *memDocument, c *Clause) (bool, float64) {
	switch c.Kind {
	case ClauseGroup:
		return evalClauses(d, c.Group)
	case ClausePhrase:
		n := phraseCount(d, c.Words, c.Trunc)
		return n > 0, float64(n)
	default:
		n := 0
		for term, pos := range d.positions {
			if term == c.Words[0] || (c.Trunc && strings.HasPrefix(term, c.Words[0])) {
				n += len(pos)
			}
		}
		return n > 0, float64(n)
	}
}

func phraseCount(d *memDocument, words []string, trunc bool) int {
	starts := termPositions(d, words[0], trunc && len(words) == 1)
	count := 0
	for _, start := range starts {
		ok := true
		for i := 1; i < len(words); i++ {
			if !hasPosition(termPositions(d, words[i], trunc && i == len(words)-1), start+i) {
				ok = false
				break
			}
		}
		if ok {
			count++
		}
	}
	return count
}

func termPositions(d *memDocument, word string, trunc bool) []int {
	if !trunc {
		return d.positions[word]
	}
	var result []int
	for term, pos := range d.positions {
		if strings.HasPrefix(term, word) {
			result = append(result, pos...)
		}
	}
	return result
}

func hasPosition(positions []int, p int) bool {
	for _, pos := range positions {
		if pos == p {
			return true
		}
	}
	return false
}

// clauseWeight follows the > < ~ operators: each step moves the weight by
// half, ~ turns the contribution negative.
func clauseWeight(c *Clause) float64 {
	w := 1 + 0.5*float64(c.WeightAdjust)
	if w < 0.1 {
		w = 0.1
	}
	if c.WasSign {
		w = -w
	}
	return w
}
