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

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("TestParserTokenizer", func() {
	It("should return lower-cased words without spaces", func() {
		tokens, err := tokenizer.Tokenize(context.TODO(), "我爱北京天安门 Hello World")
		Expect(err).Should(BeNil())
		Expect(tokens).Should(Equal([]string{"我", "爱", "北京", "天安门", "hello", "world"}))
	})
	It("should return nothing for empty text", func() {
		tokens, err := tokenizer.Tokenize(context.TODO(), "")
		Expect(err).Should(BeNil())
		Expect(tokens).Should(BeEmpty())
	})
})

var _ = Describe("TestParseQuery", func() {
	parse := func(q string) *Query {
		query, err := tokenizer.ParseQuery(context.TODO(), q)
		Expect(err).Should(BeNil())
		return query
	}

	It("should build must and must not words", func() {
		q := parse("+北京 -上海")
		Expect(q.Clauses).Should(HaveLen(2))
		Expect(q.Clauses[0].Kind).Should(Equal(ClauseWord))
		Expect(q.Clauses[0].Words).Should(Equal([]string{"北京"}))
		Expect(q.Clauses[0].Required()).Should(BeTrue())
		Expect(q.Clauses[1].Excluded()).Should(BeTrue())
	})

	It("should build phrases", func() {
		q := parse(`"北京 天安门"`)
		Expect(q.Clauses).Should(HaveLen(1))
		Expect(q.Clauses[0].Kind).Should(Equal(ClausePhrase))
		Expect(q.Clauses[0].Words).Should(Equal([]string{"北京", "天安门"}))

		q = parse("北京天安门")
		Expect(q.Clauses).Should(HaveLen(1))
		Expect(q.Clauses[0].Kind).Should(Equal(ClausePhrase))
		Expect(q.Clauses[0].Words).Should(Equal([]string{"北京", "天安门"}))
	})

	It("should build groups", func() {
		q := parse("+(北京 上海) -清华*")
		Expect(q.Clauses).Should(HaveLen(2))
		Expect(q.Clauses[0].Kind).Should(Equal(ClauseGroup))
		Expect(q.Clauses[0].Group).Should(HaveLen(2))
		Expect(q.Clauses[1].Trunc).Should(BeTrue())
	})

	It("should drop stop words", func() {
		q := parse("的 北京")
		Expect(q.Clauses).Should(HaveLen(1))
		Expect(q.Clauses[0].Words).Should(Equal([]string{"北京"}))
	})

	It("should be empty for blank query", func() {
		Expect(parse("  ").Empty()).Should(BeTrue())
		Expect(parse("+ - ()").Empty()).Should(BeTrue())
	})
})

var _ = Describe("TestRender", func() {
	parse := func(q string) *Query {
		query, err := tokenizer.ParseQuery(context.TODO(), q)
		Expect(err).Should(BeNil())
		return query
	}

	It("should render fts5 match", func() {
		Expect(RenderFTS5(parse("+北京 -上海"))).Should(Equal(`"北京" NOT "上海"`))
		Expect(RenderFTS5(parse("北京 上海"))).Should(Equal(`"北京" OR "上海"`))
		Expect(RenderFTS5(parse("北京 上海 -清华"))).Should(Equal(`("北京" OR "上海") NOT "清华"`))
		Expect(RenderFTS5(parse(`+"北京 天安门" +清华*`))).Should(Equal(`"北京 天安门" AND "清华"*`))
		Expect(RenderFTS5(parse("+(北京 上海) 清华"))).Should(Equal(`("北京" OR "上海")`))
		Expect(RenderFTS5(parse("-北京"))).Should(Equal(""))
	})

	It("should render tsquery", func() {
		Expect(RenderTsQuery(parse("+北京 -上海"))).Should(Equal(`'北京' & !'上海'`))
		Expect(RenderTsQuery(parse("北京 上海"))).Should(Equal(`'北京' | '上海'`))
		Expect(RenderTsQuery(parse("北京天安门*"))).Should(Equal(`('北京' <-> '天安门':*)`))
		Expect(tsLexeme("it's", false)).Should(Equal(`'it''s'`))
		Expect(tsLexeme(`a\b`, true)).Should(Equal(`'a\\b':*`))
	})

	It("should render mysql boolean mode", func() {
		Expect(RenderBooleanMode(parse("+北京 -上海"))).Should(Equal("+北京 -上海"))
		Expect(RenderBooleanMode(parse("北京天安门"))).Should(Equal(`"北京 天安门"`))
		Expect(RenderBooleanMode(parse(">北京 <上海 ~清华*"))).Should(Equal(">北京 <上海 ~清华*"))
		Expect(RenderBooleanMode(parse("+(北京 上海) -清华大学"))).Should(Equal("+(北京 上海) -清华大学"))
	})
})
