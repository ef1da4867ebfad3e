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

package segment

import (
	"bytes"
	"sort"
	"unicode/utf8"
)

type span struct {
	start  int
	length int
}

func (s span) end() int {
	return s.start + s.length
}

type spanStream struct {
	doc    []byte
	spans  []span
	cur    int
	closed bool
}

func newSpanStream(doc []byte, spans []span) *spanStream {
	return &spanStream{doc: doc, spans: spans, cur: -1}
}

func (s *spanStream) Next() bool {
	if s.closed {
		return false
	}
	s.cur++
	return s.cur < len(s.spans)
}

func (s *spanStream) Token() Token {
	if s.closed || s.cur < 0 || s.cur >= len(s.spans) {
		return Token{}
	}
	sp := s.spans[s.cur]
	return Token{Text: s.doc[sp.start:sp.end():sp.end()], Offset: sp.start}
}

func (s *spanStream) Len() int {
	return len(s.spans)
}

func (s *spanStream) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.doc = nil
	s.spans = nil
}

// alignWords locates every word in doc scanning forward from the end of the
// previous match. Matching ignores case since some backends lower-case
// their output. Words that are not found in doc are dropped.
func alignWords(doc []byte, words []string) []span {
	spans := make([]span, 0, len(words))
	cursor := 0
	for _, w := range words {
		if w == "" {
			continue
		}
		idx := indexFold(doc[cursor:], []byte(w))
		if idx < 0 {
			continue
		}
		sp := span{start: cursor + idx, length: len(w)}
		spans = append(spans, sp)
		cursor = sp.end()
	}
	return spans
}

// alignSearchWords places the output of a search-mode cut. Jieba emits the
// sub-words of a word right before the word itself, so every pending group
// is located inside the span of the default-mode word that closes it.
func alignSearchWords(doc []byte, full []span, words []string) []span {
	var (
		result  = make([]span, 0, len(words))
		pending []string
		fi      int
	)
	for _, w := range words {
		if w == "" {
			continue
		}
		if fi >= len(full) {
			break
		}
		region := full[fi]
		if !bytes.EqualFold([]byte(w), doc[region.start:region.end()]) {
			pending = append(pending, w)
			continue
		}
		for _, sub := range pending {
			idx := indexFold(doc[region.start:region.end()], []byte(sub))
			if idx < 0 {
				continue
			}
			result = append(result, span{start: region.start + idx, length: len(sub)})
		}
		result = append(result, region)
		pending = pending[:0]
		fi++
	}
	result = append(result, full[fi:]...)
	sortSpans(result)
	return result
}

// indexFold is bytes.Index under Unicode case folding. Only matches of the
// same byte length as word are reported, so spans stay exact.
func indexFold(doc, word []byte) int {
	if idx := bytes.Index(doc, word); idx >= 0 {
		return idx
	}
	for i := 0; i+len(word) <= len(doc); i++ {
		if !utf8.RuneStart(doc[i]) {
			continue
		}
		if bytes.EqualFold(doc[i:i+len(word)], word) {
			return i
		}
	}
	return -1
}

func sortSpans(spans []span) {
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].length < spans[j].length
	})
}
