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
	"sort"
	"sync"
)

const (
	BackendCppJieba = "cppjieba"
	BackendJiebago  = "jiebago"
	BackendGse      = "gse"
	BackendSpace    = "space"
)

// Token is one segmented word. Text is a sub-slice of the document passed
// to Cut, Offset is the byte offset of Text inside that document.
type Token struct {
	Text   []byte
	Offset int
}

func (t Token) Len() int {
	return len(t.Text)
}

func (t Token) End() int {
	return t.Offset + len(t.Text)
}

// TokenStream is a finite, non-restartable sequence of tokens in document
// order. Close releases the memory handed out by the segmenter and must be
// called on every path, it is safe to call more than once.
type TokenStream interface {
	Next() bool
	Token() Token
	Len() int
	Close()
}

// Segmenter is a loaded segmentation handle. Cut never fails, a document
// the backend cannot split yields an empty stream.
type Segmenter interface {
	Name() string
	Cut(doc []byte) TokenStream
	Close() error
}

type Options struct {
	DictPath     string
	HMMPath      string
	UserDictPath string

	// HMM enables unknown word discovery on backends that support it.
	HMM bool
	// SearchMode additionally emits the dictionary sub-words of long words.
	SearchMode bool
}

func (o Options) Paths() []string {
	return []string{o.DictPath, o.HMMPath, o.UserDictPath}
}

type Builder func(opts Options) (Segmenter, error)

var (
	builders   = map[string]Builder{}
	buildersMu sync.RWMutex
)

func Register(name string, builder Builder) {
	buildersMu.Lock()
	defer buildersMu.Unlock()
	builders[name] = builder
}

func Backends() []string {
	buildersMu.RLock()
	defer buildersMu.RUnlock()
	result := make([]string, 0, len(builders))
	for name := range builders {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

func New(backend string, opts Options) (Segmenter, error) {
	buildersMu.RLock()
	builder, ok := builders[backend]
	buildersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown segment backend %s", backend)
	}
	return builder(opts)
}
