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
	"go.uber.org/zap"

	"github.com/basenana/sqljieba/pkg/ftparser"
	"github.com/basenana/sqljieba/pkg/indexer"
	"github.com/basenana/sqljieba/utils/logger"
)

type ServicesV1 struct {
	parser  *ftparser.Parser
	indexer indexer.Indexer
	logger  *zap.SugaredLogger
}

func NewServicesV1(parser *ftparser.Parser, idx indexer.Indexer) *ServicesV1 {
	return &ServicesV1{
		parser:  parser,
		indexer: idx,
		logger:  logger.NewLogger("rest"),
	}
}
