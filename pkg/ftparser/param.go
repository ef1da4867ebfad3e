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
	"context"
	"fmt"
)

// Mode tells the parser what the host wants the words for.
type Mode int

const (
	// ModeSimple is used while indexing, every word is a plain word.
	ModeSimple Mode = iota
	// ModeWithStopwords is used for natural language queries, configured
	// stop words are reported as TokenStopword.
	ModeWithStopwords
	// ModeFullBoolean makes the parser interpret + - ~ < > ( ) " * itself.
	ModeFullBoolean
)

func (m Mode) String() string {
	switch m {
	case ModeSimple:
		return "simple"
	case ModeWithStopwords:
		return "with_stopwords"
	case ModeFullBoolean:
		return "full_boolean"
	default:
		return "unknown"
	}
}

// ParseMode accepts the String form of a mode and the short aliases
// simple, stopwords and boolean.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "simple":
		return ModeSimple, nil
	case "stopwords", "with_stopwords":
		return ModeWithStopwords, nil
	case "boolean", "full_boolean":
		return ModeFullBoolean, nil
	}
	return ModeSimple, fmt.Errorf("unknown parse mode %q", s)
}

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenWord
	TokenLeftParen
	TokenRightParen
	TokenStopword
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "eof"
	case TokenWord:
		return "word"
	case TokenLeftParen:
		return "left_paren"
	case TokenRightParen:
		return "right_paren"
	case TokenStopword:
		return "stopword"
	default:
		return "unknown"
	}
}

// BooleanInfo is the metadata attached to every emitted token. Its fields
// follow MYSQL_FTPARSER_BOOLEAN_INFO.
type BooleanInfo struct {
	Type TokenType
	// YesNo is 1 for a required word, -1 for an excluded word and 0 otherwise.
	YesNo        int
	WeightAdjust int
	WasSign      bool
	Trunc        bool
	// Position is the byte offset of the token inside Param.Doc.
	Position int
	Prev     byte
	// Quot marks phrase parens and the words inside a phrase.
	Quot bool
}

// Sink receives tokens from Parse. word points into Param.Doc and is only
// valid as long as the document is.
type Sink interface {
	AddWord(ctx context.Context, word []byte, info *BooleanInfo) error
}

type SinkFunc func(ctx context.Context, word []byte, info *BooleanInfo) error

func (f SinkFunc) AddWord(ctx context.Context, word []byte, info *BooleanInfo) error {
	return f(ctx, word, info)
}

type Param struct {
	Doc  []byte
	Mode Mode
	Sink Sink
}
