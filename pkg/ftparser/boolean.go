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

package ftparser

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// parseBoolean scans the MySQL boolean operators and segments the text
// between them. Operators are only recognized at the start of a word.
// A chunk the segmenter splits into several words becomes a phrase so the
// host matches it as one term.
func (p *Parser) parseBoolean(e *emitter, doc []byte) error {
	var (
		op      BooleanInfo
		depth   int
		atStart = true
		i       int
	)

	for i < len(doc) {
		r, size := utf8.DecodeRune(doc[i:])
		switch {
		case r == '"':
			end := bytes.IndexByte(doc[i+1:], '"')
			if end < 0 {
				end = len(doc)
			} else {
				end += i + 1
			}
			if err := p.emitQuoted(e, doc, i, end, op); err != nil {
				return err
			}
			op = BooleanInfo{}
			atStart = true
			i = end + 1
			continue

		case r == '(':
			if err := e.emit(doc[i:i+1], withOp(op, TokenLeftParen, i, doc)); err != nil {
				return err
			}
			depth++
			op = BooleanInfo{}
			atStart = true

		case r == ')':
			if depth > 0 {
				if err := e.emit(doc[i:i+1], BooleanInfo{Type: TokenRightParen, Position: i, Prev: prevByte(doc, i)}); err != nil {
					return err
				}
				depth--
			}
			op = BooleanInfo{}
			atStart = true

		case unicode.IsSpace(r) || r == '*':
			op = BooleanInfo{}
			atStart = true

		case atStart && isOperator(r):
			switch r {
			case '+':
				op.YesNo = 1
			case '-':
				op.YesNo = -1
			case '>':
				op.WeightAdjust++
			case '<':
				op.WeightAdjust--
			case '~':
				op.WasSign = !op.WasSign
			}

		default:
			end := chunkEnd(doc, i)
			trunc := end < len(doc) && doc[end] == '*'
			if err := p.emitChunk(e, doc, i, end, op, trunc); err != nil {
				return err
			}
			op = BooleanInfo{}
			atStart = false
			i = end
			continue
		}
		i += size
	}

	for ; depth > 0; depth-- {
		if err := e.emit(nil, BooleanInfo{Type: TokenRightParen, Position: len(doc), Prev: prevByte(doc, len(doc))}); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) emitChunk(e *emitter, doc []byte, start, end int, op BooleanInfo, trunc bool) error {
	words := p.cutChunk(doc[start:end], start)
	switch len(words) {
	case 0:
		return nil
	case 1:
		info := withOp(op, p.wordType(words[0].Text), words[0].Offset, doc)
		info.Trunc = trunc
		return e.emit(words[0].Text, info)
	}

	if err := e.emit(nil, withOp(op, TokenLeftParen, start, doc)); err != nil {
		return err
	}
	for i, w := range words {
		info := BooleanInfo{Type: p.wordType(w.Text), YesNo: 1, Position: w.Offset, Prev: prevByte(doc, w.Offset), Quot: true}
		info.Trunc = trunc && i == len(words)-1
		if err := e.emit(w.Text, info); err != nil {
			return err
		}
	}
	return e.emit(nil, BooleanInfo{Type: TokenRightParen, Position: end, Prev: prevByte(doc, end), Quot: true})
}

// emitQuoted handles "...", start is the opening quote and end the closing
// one or len(doc) when the quote is never closed.
func (p *Parser) emitQuoted(e *emitter, doc []byte, start, end int, op BooleanInfo) error {
	left := withOp(op, TokenLeftParen, start, doc)
	left.Quot = true
	if err := e.emit(doc[start:start+1], left); err != nil {
		return err
	}
	for _, w := range p.cutChunk(doc[start+1:end], start+1) {
		info := BooleanInfo{Type: p.wordType(w.Text), YesNo: 1, Position: w.Offset, Prev: prevByte(doc, w.Offset), Quot: true}
		if err := e.emit(w.Text, info); err != nil {
			return err
		}
	}
	var closing []byte
	if end < len(doc) {
		closing = doc[end : end+1]
	}
	return e.emit(closing, BooleanInfo{Type: TokenRightParen, Position: end, Prev: prevByte(doc, end), Quot: true})
}

func (p *Parser) wordType(word []byte) TokenType {
	if p.stops.has(word) {
		return TokenStopword
	}
	return TokenWord
}

func withOp(op BooleanInfo, t TokenType, pos int, doc []byte) BooleanInfo {
	op.Type = t
	op.Position = pos
	op.Prev = prevByte(doc, pos)
	return op
}

func isOperator(r rune) bool {
	switch r {
	case '+', '-', '>', '<', '~':
		return true
	}
	return false
}

func chunkEnd(doc []byte, start int) int {
	i := start
	for i < len(doc) {
		r, size := utf8.DecodeRune(doc[i:])
		if unicode.IsSpace(r) {
			return i
		}
		switch r {
		case '"', '(', ')', '*':
			return i
		}
		i += size
	}
	return i
}

// prevByte is the byte before pos, or a space at the start of the document
// and after multi-byte runes.
func prevByte(doc []byte, pos int) byte {
	if pos <= 0 || pos > len(doc) {
		return ' '
	}
	b := doc[pos-1]
	if b >= utf8.RuneSelf {
		return ' '
	}
	return b
}
