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
	"fmt"

	"github.com/wangbin/jiebago"
)

func init() {
	Register(BackendJiebago, newJiebagoSegmenter)
}

// jiebagoSegmenter runs the pure Go jieba port. Its HMM model is compiled
// into the library, Options.HMMPath is not read.
type jiebagoSegmenter struct {
	seg    *jiebago.Segmenter
	hmm    bool
	search bool
}

func newJiebagoSegmenter(opts Options) (Segmenter, error) {
	if opts.DictPath == "" {
		return nil, fmt.Errorf("jiebago: dictionary path is empty")
	}
	seg := &jiebago.Segmenter{}
	if err := seg.LoadDictionary(opts.DictPath); err != nil {
		return nil, fmt.Errorf("jiebago: load dictionary %s failed: %w", opts.DictPath, err)
	}
	if opts.UserDictPath != "" {
		if err := seg.LoadUserDictionary(opts.UserDictPath); err != nil {
			return nil, fmt.Errorf("jiebago: load user dictionary %s failed: %w", opts.UserDictPath, err)
		}
	}
	return &jiebagoSegmenter{seg: seg, hmm: opts.HMM, search: opts.SearchMode}, nil
}

func (j *jiebagoSegmenter) Name() string {
	return BackendJiebago
}

func (j *jiebagoSegmenter) Cut(doc []byte) TokenStream {
	if len(doc) == 0 {
		return newSpanStream(doc, nil)
	}
	text := string(doc)
	full := alignWords(doc, drainWords(j.seg.Cut(text, j.hmm)))
	if !j.search {
		return newSpanStream(doc, full)
	}
	return newSpanStream(doc, alignSearchWords(doc, full, drainWords(j.seg.CutForSearch(text, j.hmm))))
}

func (j *jiebagoSegmenter) Close() error {
	j.seg = nil
	return nil
}

// drainWords reads the channel to the end so the producing goroutine of
// jiebago always exits.
func drainWords(ch <-chan string) []string {
	var words []string
	for w := range ch {
		words = append(words, w)
	}
	return words
}
