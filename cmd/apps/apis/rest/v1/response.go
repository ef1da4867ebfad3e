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

package v1

import (
	"github.com/basenana/sqljieba/config"
	"github.com/basenana/sqljieba/pkg/ftparser"
	"github.com/basenana/sqljieba/pkg/types"
	"github.com/basenana/sqljieba/utils"
)

const snippetLength = 120

type Token struct {
	Word         string `json:"word"`
	Type         string `json:"type"`
	Position     int    `json:"position"`
	YesNo        int    `json:"yes_no,omitempty"`
	WeightAdjust int    `json:"weight_adjust,omitempty"`
	WasSign      bool   `json:"was_sign,omitempty"`
	Trunc        bool   `json:"trunc,omitempty"`
	Quot         bool   `json:"quot,omitempty"`
}

type TokenizeResponse struct {
	Mode   string   `json:"mode"`
	Tokens []*Token `json:"tokens"`
}

type DocumentInfo struct {
	ID        int64  `json:"id"`
	URI       string `json:"uri"`
	Title     string `json:"title"`
	Snippet   string `json:"snippet,omitempty"`
	CreateAt  int64  `json:"create_at"`
	ChangedAt int64  `json:"changed_at"`
}

type SearchResponse struct {
	Namespace string          `json:"namespace"`
	Query     string          `json:"query"`
	Documents []*DocumentInfo `json:"documents"`
}

type DeleteDocumentResponse struct {
	ID int64 `json:"id"`
}

type StatusResponse struct {
	Version    string              `json:"version"`
	Plugin     ftparser.PluginInfo `json:"plugin"`
	Parser     map[string]string   `json:"parser"`
	Registered []string            `json:"registered"`
}

func toToken(word []byte, info *ftparser.BooleanInfo) *Token {
	return &Token{
		Word:         string(word),
		Type:         info.Type.String(),
		Position:     info.Position,
		YesNo:        info.YesNo,
		WeightAdjust: info.WeightAdjust,
		WasSign:      info.WasSign,
		Trunc:        info.Trunc,
		Quot:         info.Quot,
	}
}

func toDocumentInfo(doc *types.IndexDocument, withSnippet bool) *DocumentInfo {
	info := &DocumentInfo{
		ID:        doc.ID,
		URI:       doc.URI,
		Title:     doc.Title,
		CreateAt:  doc.CreateAt,
		ChangedAt: doc.ChangedAt,
	}
	if withSnippet {
		info.Snippet = utils.Snippet(doc.ContentType, doc.Content, snippetLength)
	}
	return info
}

func newStatusResponse(parser *ftparser.Parser) *StatusResponse {
	return &StatusResponse{
		Version:    config.VersionInfo().String(),
		Plugin:     ftparser.Descriptor(),
		Parser:     parser.Status(),
		Registered: ftparser.Parsers(),
	}
}
