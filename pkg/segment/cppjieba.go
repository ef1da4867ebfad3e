//go:build cgo

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
	"fmt"
	"os"
	"sync"

	"github.com/yanyiwu/gojieba"
)

func init() {
	Register(BackendCppJieba, newCppJiebaSegmenter)
}

// cppJiebaSegmenter binds the cppjieba C library through gojieba. Empty
// paths use the dictionaries of the gojieba module, cppjieba also needs its
// idf and stop word files from there.
type cppJiebaSegmenter struct {
	handle *gojieba.Jieba
	hmm    bool
	mode   gojieba.TokenizeMode
	once   sync.Once
}

// cppJiebaPaths returns dict, hmm, user dict, idf and stop word paths in the
// order gojieba.NewJieba takes them.
func cppJiebaPaths(opts Options) []string {
	orDefault := func(p, def string) string {
		if p == "" {
			return def
		}
		return p
	}
	return []string{
		orDefault(opts.DictPath, gojieba.DICT_PATH),
		orDefault(opts.HMMPath, gojieba.HMM_PATH),
		orDefault(opts.UserDictPath, gojieba.USER_DICT_PATH),
		gojieba.IDF_PATH,
		gojieba.STOP_WORDS_PATH,
	}
}

func newCppJiebaSegmenter(opts Options) (Segmenter, error) {
	// cppjieba aborts the process on a resource file it cannot open, so
	// every file is checked before the handle is built.
	paths := cppJiebaPaths(opts)
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("cppjieba: resource file %q: %w", p, err)
		}
	}

	mode := gojieba.DefaultMode
	if opts.SearchMode {
		mode = gojieba.SearchMode
	}
	handle := gojieba.NewJieba(paths...)
	return &cppJiebaSegmenter{handle: handle, hmm: opts.HMM, mode: mode}, nil
}

func (c *cppJiebaSegmenter) Name() string {
	return BackendCppJieba
}

func (c *cppJiebaSegmenter) Cut(doc []byte) TokenStream {
	var spans []span
	// the C side stops at NUL, each piece is cut on its own
	base := 0
	for _, piece := range bytes.Split(doc, []byte{0}) {
		spans = append(spans, c.cutPiece(piece, base)...)
		base += len(piece) + 1
	}
	if c.mode == gojieba.SearchMode {
		sortSpans(spans)
	}
	return newSpanStream(doc, spans)
}

func (c *cppJiebaSegmenter) cutPiece(piece []byte, base int) []span {
	if len(piece) == 0 {
		return nil
	}
	words := c.handle.Tokenize(string(piece), c.mode, c.hmm)
	spans := make([]span, 0, len(words))
	for _, w := range words {
		if w.Start < 0 || w.End > len(piece) || w.End <= w.Start {
			continue
		}
		spans = append(spans, span{start: base + w.Start, length: w.End - w.Start})
	}
	return spans
}

func (c *cppJiebaSegmenter) Close() error {
	c.once.Do(func() {
		c.handle.Free()
	})
	return nil
}
