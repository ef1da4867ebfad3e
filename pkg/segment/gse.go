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
	"strings"

	"github.com/go-ego/gse"
)

func init() {
	Register(BackendGse, newGseSegmenter)
}

// gseSegmenter uses the embedded gse dictionary when no dictionary path is
// configured. The HMM model is also embedded, Options.HMMPath is not read.
type gseSegmenter struct {
	seg    *gse.Segmenter
	hmm    bool
	search bool
}

func newGseSegmenter(opts Options) (Segmenter, error) {
	seg := &gse.Segmenter{}
	var err error
	if opts.DictPath == "" {
		err = seg.LoadDictEmbed()
		if err == nil && opts.UserDictPath != "" {
			err = seg.LoadDict(opts.UserDictPath)
		}
	} else {
		files := []string{opts.DictPath}
		if opts.UserDictPath != "" {
			files = append(files, opts.UserDictPath)
		}
		err = seg.LoadDict(strings.Join(files, ","))
	}
	if err != nil {
		return nil, fmt.Errorf("gse: load dictionary failed: %w", err)
	}
	if opts.HMM {
		seg.LoadModel()
	}
	return &gseSegmenter{seg: seg, hmm: opts.HMM, search: opts.SearchMode}, nil
}

func (g *gseSegmenter) Name() string {
	return BackendGse
}

func (g *gseSegmenter) Cut(doc []byte) TokenStream {
	if len(doc) == 0 {
		return newSpanStream(doc, nil)
	}
	text := string(doc)
	full := alignWords(doc, g.seg.Cut(text, g.hmm))
	if !g.search {
		return newSpanStream(doc, full)
	}
	return newSpanStream(doc, alignSearchWords(doc, full, g.seg.CutSearch(text, g.hmm)))
}

func (g *gseSegmenter) Close() error {
	g.seg = nil
	return nil
}
