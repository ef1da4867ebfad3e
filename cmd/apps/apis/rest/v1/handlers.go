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
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/basenana/sqljieba/cmd/apps/apis/apitool"
	"github.com/basenana/sqljieba/pkg/ftparser"
	"github.com/basenana/sqljieba/pkg/types"
	"github.com/basenana/sqljieba/utils"
)

func (s *ServicesV1) Tokenize(gCtx *gin.Context) {
	var req TokenizeRequest
	if err := gCtx.ShouldBindJSON(&req); err != nil {
		apitool.ApiErrorResponse(gCtx, http.StatusBadRequest, apitool.ApiArgsError, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		apitool.ErrorResponse(gCtx, fmt.Errorf("text: %w", types.ErrEmptyContent))
		return
	}
	mode, err := ftparser.ParseMode(req.Mode)
	if err != nil {
		apitool.ApiErrorResponse(gCtx, http.StatusBadRequest, apitool.ApiArgsError, err)
		return
	}

	ctx := gCtx.Request.Context()
	param := ftparser.Param{Doc: []byte(req.Text), Mode: mode}
	tokens := make([]*Token, 0)
	param.Sink = ftparser.SinkFunc(func(ctx context.Context, word []byte, info *ftparser.BooleanInfo) error {
		tokens = append(tokens, toToken(word, info))
		return nil
	})

	s.parser.Begin(ctx, param)
	err = s.parser.Parse(ctx, param)
	s.parser.End(ctx, param)
	if err != nil {
		utils.ContextLog(ctx, s.logger).Warnw("tokenize failed", "mode", mode.String(), "err", err)
		apitool.ErrorResponse(gCtx, err)
		return
	}
	apitool.JsonResponse(gCtx, http.StatusOK, &TokenizeResponse{Mode: mode.String(), Tokens: tokens})
}

func (s *ServicesV1) IndexDocument(gCtx *gin.Context) {
	var req IndexDocumentRequest
	if err := gCtx.ShouldBindJSON(&req); err != nil {
		apitool.ApiErrorResponse(gCtx, http.StatusBadRequest, apitool.ApiArgsError, err)
		return
	}

	ctx := gCtx.Request.Context()
	namespace := apitool.Namespace(gCtx)
	doc := &types.IndexDocument{
		ID:          req.ID,
		URI:         req.URI,
		Title:       req.Title,
		Content:     req.Content,
		ContentType: req.ContentType,
	}
	if err := s.indexer.Index(ctx, namespace, doc); err != nil {
		utils.ContextLog(ctx, s.logger).Errorw("index document failed", "namespace", namespace, "uri", req.URI, "err", err)
		apitool.ErrorResponse(gCtx, err)
		return
	}
	apitool.JsonResponse(gCtx, http.StatusCreated, toDocumentInfo(doc, false))
}

func (s *ServicesV1) DeleteDocument(gCtx *gin.Context) {
	id, err := strconv.ParseInt(gCtx.Param("id"), 10, 64)
	if err != nil {
		apitool.ApiErrorResponse(gCtx, http.StatusBadRequest, apitool.ApiArgsError, fmt.Errorf("invalid id: %w", err))
		return
	}

	ctx := gCtx.Request.Context()
	namespace := apitool.Namespace(gCtx)
	if err = s.indexer.Delete(ctx, namespace, id); err != nil {
		if !errors.Is(err, types.ErrNotFound) {
			utils.ContextLog(ctx, s.logger).Errorw("delete document failed", "namespace", namespace, "id", id, "err", err)
		}
		apitool.ErrorResponse(gCtx, err)
		return
	}
	apitool.JsonResponse(gCtx, http.StatusOK, &DeleteDocumentResponse{ID: id})
}

func (s *ServicesV1) Search(gCtx *gin.Context) {
	var req SearchRequest
	if err := gCtx.ShouldBindQuery(&req); err != nil {
		apitool.ApiErrorResponse(gCtx, http.StatusBadRequest, apitool.ApiArgsError, err)
		return
	}

	ctx := gCtx.Request.Context()
	namespace := apitool.Namespace(gCtx)
	docs, err := s.indexer.Query(ctx, namespace, req.Query)
	if err != nil {
		utils.ContextLog(ctx, s.logger).Errorw("search documents failed", "namespace", namespace, "query", req.Query, "err", err)
		apitool.ErrorResponse(gCtx, err)
		return
	}
	if req.Limit > 0 && len(docs) > req.Limit {
		docs = docs[:req.Limit]
	}

	resp := &SearchResponse{Namespace: namespace, Query: req.Query, Documents: make([]*DocumentInfo, 0, len(docs))}
	for _, doc := range docs {
		resp.Documents = append(resp.Documents, toDocumentInfo(doc, true))
	}
	apitool.JsonResponse(gCtx, http.StatusOK, resp)
}

func (s *ServicesV1) Status(gCtx *gin.Context) {
	apitool.JsonResponse(gCtx, http.StatusOK, newStatusResponse(s.parser))
}
