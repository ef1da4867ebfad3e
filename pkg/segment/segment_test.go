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
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("spanStream", func() {
	doc := []byte("hello world")

	It("should yield spans in order and report its length", func() {
		stream := newSpanStream(doc, []span{{start: 0, length: 5}, {start: 6, length: 5}})
		Expect(stream.Len()).Should(Equal(2))
		Expect(stream.Next()).Should(BeTrue())
		Expect(stream.Token()).Should(Equal(Token{Text: []byte("hello"), Offset: 0}))
		Expect(stream.Next()).Should(BeTrue())
		Expect(stream.Token().Offset).Should(Equal(6))
		Expect(stream.Next()).Should(BeFalse())
		Expect(stream.Next()).Should(BeFalse())
	})

	It("should stop after close", func() {
		stream := newSpanStream(doc, []span{{start: 0, length: 5}})
		stream.Close()
		stream.Close()
		Expect(stream.Next()).Should(BeFalse())
		Expect(stream.Token().Text).Should(BeNil())
	})

	It("should not let callers grow a token into the document", func() {
		stream := newSpanStream(doc, []span{{start: 0, length: 5}})
		Expect(stream.Next()).Should(BeTrue())
		tok := stream.Token()
		_ = append(tok.Text, '!')
		Expect(string(doc)).Should(Equal("hello world"))
	})
})

var _ = Describe("alignWords", func() {
	It("should locate words with their byte offsets", func() {
		doc := []byte("我爱北京天安门")
		spans := alignWords(doc, []string{"我", "爱", "北京", "天安门"})
		Expect(spans).Should(Equal([]span{{0, 3}, {3, 3}, {6, 6}, {12, 9}}))
	})

	It("should drop words missing from the document", func() {
		doc := []byte("abc def")
		spans := alignWords(doc, []string{"abc", "xyz", "", "def"})
		Expect(spans).Should(Equal([]span{{0, 3}, {4, 3}}))
	})

	It("should match words that differ only in case", func() {
		doc := []byte("Hello World 北京 GoLang")
		spans := alignWords(doc, []string{"hello", " ", "world", " ", "北京", " ", "golang"})
		Expect(spans).Should(Equal([]span{{0, 5}, {5, 1}, {6, 5}, {11, 1}, {12, 6}, {18, 1}, {19, 6}}))
	})

	It("should match repeated words left to right", func() {
		doc := []byte("go go go")
		spans := alignWords(doc, []string{"go", " ", "go", " ", "go"})
		Expect(spans).Should(Equal([]span{{0, 2}, {2, 1}, {3, 2}, {5, 1}, {6, 2}}))
	})
})

var _ = Describe("alignSearchWords", func() {
	It("should place sub-words inside the word that follows them", func() {
		doc := []byte("我来到清华大学")
		full := alignWords(doc, []string{"我", "来到", "清华大学"})
		spans := alignSearchWords(doc, full, []string{"我", "来到", "清华", "华大", "大学", "清华大学"})
		Expect(spans).Should(Equal([]span{
			{0, 3}, {3, 6}, {9, 6}, {9, 12}, {12, 6}, {15, 6},
		}))
	})

	It("should keep default words when the search output diverges", func() {
		doc := []byte("北京大学")
		full := alignWords(doc, []string{"北京大学"})
		spans := alignSearchWords(doc, full, []string{"北京", "大学"})
		Expect(spans).Should(Equal([]span{{0, 12}}))
	})

	It("should place lower-cased sub-words", func() {
		doc := []byte("GoLang")
		full := alignWords(doc, []string{"golang"})
		spans := alignSearchWords(doc, full, []string{"go", "lang", "golang"})
		Expect(spans).Should(Equal([]span{{0, 2}, {0, 6}, {2, 4}}))
	})
})

var _ = Describe("space segmenter", func() {
	seg := NewSpaceSegmenter()

	It("should split on non word runes", func() {
		Expect(collectWords(seg.Cut([]byte("Hello, World! 2024")))).Should(Equal([]string{"Hello", "World", "2024"}))
	})

	It("should keep runs of han characters", func() {
		tokens := collectTokens(seg.Cut([]byte("北京 天安门")))
		Expect(tokens).Should(HaveLen(2))
		Expect(tokens[1].Offset).Should(Equal(7))
		Expect(string(tokens[1].Text)).Should(Equal("天安门"))
	})

	It("should yield nothing for an empty document", func() {
		stream := seg.Cut(nil)
		Expect(stream.Len()).Should(Equal(0))
		Expect(stream.Next()).Should(BeFalse())
		stream.Close()
	})
})

var _ = Describe("backend registry", func() {
	It("should list the pure go backends", func() {
		Expect(Backends()).Should(ContainElements(BackendSpace, BackendJiebago, BackendGse))
	})

	It("should reject unknown backends", func() {
		_, err := New("unknown", Options{})
		Expect(err).ShouldNot(BeNil())
	})
})

var _ = Describe("jiebago segmenter", func() {
	It("should cut with the configured dictionary", func() {
		seg, err := New(BackendJiebago, Options{DictPath: testDictPath})
		Expect(err).Should(BeNil())
		defer seg.Close()

		tokens := collectTokens(seg.Cut([]byte("我爱北京天安门")))
		Expect(tokens).Should(HaveLen(4))
		Expect(string(tokens[2].Text)).Should(Equal("北京"))
		Expect(tokens[2].Offset).Should(Equal(6))
		Expect(tokens[3].Offset).Should(Equal(12))
	})

	It("should load the user dictionary", func() {
		seg, err := New(BackendJiebago, Options{DictPath: testDictPath, UserDictPath: testUserDict})
		Expect(err).Should(BeNil())
		defer seg.Close()

		Expect(collectWords(seg.Cut([]byte("天安门广场")))).Should(Equal([]string{"天安门广场"}))
	})

	It("should emit sub-words in search mode", func() {
		seg, err := New(BackendJiebago, Options{DictPath: testDictPath, SearchMode: true})
		Expect(err).Should(BeNil())
		defer seg.Close()

		Expect(collectWords(seg.Cut([]byte("清华大学")))).Should(ContainElements("清华", "大学", "清华大学"))
	})

	It("should fail on a missing dictionary", func() {
		_, err := New(BackendJiebago, Options{DictPath: "/not/exist/jieba.dict.utf8"})
		Expect(err).ShouldNot(BeNil())
	})

	It("should fail without a dictionary path", func() {
		_, err := New(BackendJiebago, Options{})
		Expect(err).ShouldNot(BeNil())
	})
})

var _ = Describe("gse segmenter", func() {
	It("should fail on a missing dictionary", func() {
		_, err := New(BackendGse, Options{DictPath: "/not/exist/dict.txt"})
		Expect(err).ShouldNot(BeNil())
	})

	It("should cut with its embedded dictionary", func() {
		seg, err := New(BackendGse, Options{})
		Expect(err).Should(BeNil())
		defer seg.Close()

		doc := []byte("我爱北京天安门")
		tokens := collectTokens(seg.Cut(doc))
		Expect(tokens).ShouldNot(BeEmpty())
		for _, tok := range tokens {
			Expect(string(doc[tok.Offset:tok.End()])).Should(Equal(string(tok.Text)))
		}
	})

	It("should keep mixed-case latin words", func() {
		seg, err := New(BackendGse, Options{})
		Expect(err).Should(BeNil())
		defer seg.Close()

		doc := []byte("Hello World 北京 GoLang")
		tokens := collectTokens(seg.Cut(doc))
		var joined strings.Builder
		for _, tok := range tokens {
			Expect(string(doc[tok.Offset:tok.End()])).Should(Equal(string(tok.Text)))
			joined.WriteString(strings.TrimSpace(string(tok.Text)))
		}
		Expect(collectWords(seg.Cut(doc))).Should(ContainElements("Hello", "World", "北京"))
		Expect(joined.String()).Should(Equal("HelloWorld北京GoLang"))
	})
})
