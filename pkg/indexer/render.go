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
	"strings"
)

// exprDialect describes a backend query language with AND / OR / NOT
// operators, FTS5 MATCH and to_tsquery both fit.
type exprDialect struct {
	term   func(word string, trunc bool) string
	phrase func(words []string, trunc bool) string
	and    string
	or     string
	not    func(left, right string) string
}

// renderExpr follows MySQL boolean mode: when required clauses exist the
// optional ones only affect ranking, otherwise at least one optional
// clause must match. A query made only of excluded clauses matches nothing
// and renders as "".
func renderExpr(d exprDialect, clauses []*Clause) string {
	var must, should, mustNot []string
	for _, c := range clauses {
		e := renderClause(d, c)
		if e == "" {
			continue
		}
		switch {
		case c.Required():
			must = append(must, e)
		case c.Excluded():
			mustNot = append(mustNot, e)
		default:
			should = append(should, e)
		}
	}

	var expr string
	switch {
	case len(must) > 0:
		expr = strings.Join(must, d.and)
		if len(must) > 1 && len(mustNot) > 0 {
			expr = "(" + expr + ")"
		}
	case len(should) > 0:
		expr = strings.Join(should, d.or)
		if len(should) > 1 && len(mustNot) > 0 {
			expr = "(" + expr + ")"
		}
	default:
		return ""
	}
	for _, n := range mustNot {
		expr = d.not(expr, n)
	}
	return expr
}

func renderClause(d exprDialect, c *Clause) string {
	switch c.Kind {
	case ClauseWord:
		return d.term(c.Words[0], c.Trunc)
	case ClausePhrase:
		return d.phrase(c.Words, c.Trunc)
	case ClauseGroup:
		inner := renderExpr(d, c.Group)
		if inner == "" {
			return ""
		}
		return "(" + inner + ")"
	}
	return ""
}

var fts5Dialect = exprDialect{
	term: func(word string, trunc bool) string {
		return fts5String(word, trunc)
	},
	phrase: func(words []string, trunc bool) string {
		return fts5String(strings.Join(words, " "), trunc)
	},
	and: " AND ",
	or:  " OR ",
	not: func(left, right string) string {
		return left + " NOT " + right
	},
}

func fts5String(s string, trunc bool) string {
	result := `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	if trunc {
		result += "*"
	}
	return result
}

// RenderFTS5 builds the right hand side of a documents_fts MATCH.
func RenderFTS5(q *Query) string {
	if q.Empty() {
		return ""
	}
	return renderExpr(fts5Dialect, q.Clauses)
}

var tsQueryDialect = exprDialect{
	term: tsLexeme,
	phrase: func(words []string, trunc bool) string {
		lexemes := make([]string, len(words))
		for i, w := range words {
			lexemes[i] = tsLexeme(w, trunc && i == len(words)-1)
		}
		return "(" + strings.Join(lexemes, " <-> ") + ")"
	},
	and: " & ",
	or:  " | ",
	not: func(left, right string) string {
		return left + " & !" + right
	},
}

var tsEscaper = strings.NewReplacer(`\`, `\\`, `'`, `''`)

func tsLexeme(word string, trunc bool) string {
	result := "'" + tsEscaper.Replace(word) + "'"
	if trunc {
		result += ":*"
	}
	return result
}

// RenderTsQuery builds a to_tsquery('simple', ...) argument.
func RenderTsQuery(q *Query) string {
	if q.Empty() {
		return ""
	}
	return renderExpr(tsQueryDialect, q.Clauses)
}

// RenderBooleanMode writes the clause tree back in MySQL boolean syntax,
// with words separated by spaces so InnoDB's own parser sees the
// segmented words.
func RenderBooleanMode(q *Query) string {
	if q.Empty() {
		return ""
	}
	return renderBooleanClauses(q.Clauses)
}

func renderBooleanClauses(clauses []*Clause) string {
	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		var body string
		switch c.Kind {
		case ClauseWord:
			body = mysqlWord(c.Words[0])
			if c.Trunc && !strings.HasPrefix(body, `"`) {
				body += "*"
			}
		case ClausePhrase:
			body = `"` + strings.ReplaceAll(strings.Join(c.Words, " "), `"`, " ") + `"`
		case ClauseGroup:
			inner := renderBooleanClauses(c.Group)
			if inner == "" {
				continue
			}
			body = "(" + inner + ")"
		}
		parts = append(parts, booleanPrefix(c)+body)
	}
	return strings.Join(parts, " ")
}

func booleanPrefix(c *Clause) string {
	var sb strings.Builder
	switch {
	case c.YesNo > 0:
		sb.WriteByte('+')
	case c.YesNo < 0:
		sb.WriteByte('-')
	}
	for i := 0; i < c.WeightAdjust; i++ {
		sb.WriteByte('>')
	}
	for i := 0; i > c.WeightAdjust; i-- {
		sb.WriteByte('<')
	}
	if c.WasSign {
		sb.WriteByte('~')
	}
	return sb.String()
}

func mysqlWord(word string) string {
	for _, r := range word {
		if !isWordRune(r) && r != '_' {
			return `"` + strings.ReplaceAll(word, `"`, " ") + `"`
		}
	}
	return word
}
