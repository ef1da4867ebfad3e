/*
 Copyright 2023 NanaFS Authors.

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
	"github.com/gin-gonic/gin"

	"github.com/basenana/sqljieba/cmd/apps/apis/apitool"
)

func RegisterRoutes(engine *gin.Engine, s *ServicesV1, withMetrics bool) {
	handle := func(id string, h gin.HandlerFunc) []gin.HandlerFunc {
		if withMetrics {
			return []gin.HandlerFunc{apitool.MetricMiddleware(id), h}
		}
		return []gin.HandlerFunc{h}
	}

	v1 := engine.Group("/api/v1")
	v1.Use(apitool.NamespaceMiddleware())
	{
		v1.POST("/tokenize", handle("tokenize", s.Tokenize)...)
		v1.GET("/status", handle("status", s.Status)...)
		v1.GET("/search", handle("search", s.Search)...)

		// Documents
		documents := v1.Group("/documents")
		{
			documents.POST("", handle("index_document", s.IndexDocument)...)
			documents.DELETE("/:id", handle("delete_document", s.DeleteDocument)...)
		}
	}
}
