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
	"unicode"
	"unicode/utf8"
)

func init() {
	Register(BackendSpace, func(opts Options) (Segmenter, error) {
		return NewSpaceSegmenter(), nil
	})
}

// spaceSegmenter splits on every rune that is neither a letter nor a digit.
// It loads nothing and is the fallback for text without Chinese words.
type spaceSegmenter struct{}

func NewSpaceSegmenter() Segmenter {
	return &spaceSegmenter{}
}

func (s *spaceSegmenter) Name() string {
	return BackendSpace
}

func (s *spaceSegmenter) Cut(doc []byte) TokenStream {
	var (
		spans []span
		start = -1
	)
	for i := 0; i < len(doc); {
		r, size := utf8.DecodeRune(doc[i:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			spans = append(spans, span{start: start, length: i - start})
			start = -1
		}
		i += size
	}
	if start >= 0 {
		spans = append(spans, span{start: start, length: len(doc) - start})
	}
	return newSpanStream(doc, spans)
}

func (s *spaceSegmenter) Close() error {
	return nil
}
