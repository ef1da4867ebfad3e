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

package apitool

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/basenana/sqljieba/pkg/types"
	"github.com/basenana/sqljieba/utils"
)

const HeaderNamespace = "X-Namespace"

// TraceMiddleware tags the request context with a trace id and echoes it
// back to the caller.
func TraceMiddleware() gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		ctx := utils.NewApiContext(gCtx.Request)
		gCtx.Request = gCtx.Request.WithContext(ctx)
		gCtx.Header(utils.RequestIDHeader, utils.TraceID(ctx))
		gCtx.Next()
	}
}

// RecoverMiddleware answers 500 for a panicking handler and reports the
// panic to sentry.
func RecoverMiddleware() gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		defer func() {
			if err := utils.Recover(recover()); err != nil {
				ApiErrorResponse(gCtx, http.StatusInternalServerError, ApiInternalError, err)
			}
		}()
		gCtx.Next()
	}
}

// NamespaceMiddleware reads the namespace from the X-Namespace header,
// requests without it use the default namespace.
func NamespaceMiddleware() gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		ns := gCtx.GetHeader(HeaderNamespace)
		if ns == "" {
			ns = types.DefaultNamespace
		}
		ctx := types.WithNamespace(gCtx.Request.Context(), types.NewNamespace(ns))
		gCtx.Request = gCtx.Request.WithContext(ctx)
		gCtx.Next()
	}
}

func Namespace(gCtx *gin.Context) string {
	return types.GetNamespace(gCtx.Request.Context()).String()
}
