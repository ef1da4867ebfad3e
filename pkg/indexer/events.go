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

	"github.com/google/uuid"
	"github.com/hyponet/eventbus"

	"github.com/basenana/sqljieba/pkg/events"
	"github.com/basenana/sqljieba/pkg/types"
)

// eventIndexer publishes a document event after every successful change.
type eventIndexer struct {
	Indexer
	source string
}

func WithEvents(idx Indexer) Indexer {
	return &eventIndexer{Indexer: idx, source: "indexer/" + uuid.New().String()}
}

func (e *eventIndexer) Index(ctx context.Context, namespace string, doc *types.IndexDocument) error {
	if err := e.Indexer.Index(ctx, namespace, doc); err != nil {
		return err
	}
	eventbus.Publish(events.DocumentActionTopic(events.ActionTypeIndex),
		events.BuildDocumentEvent(events.ActionTypeIndex, e.source, namespace, doc))
	return nil
}

func (e *eventIndexer) Delete(ctx context.Context, namespace string, id int64) error {
	if err := e.Indexer.Delete(ctx, namespace, id); err != nil {
		return err
	}
	eventbus.Publish(events.DocumentActionTopic(events.ActionTypeDestroy),
		events.BuildDocumentEvent(events.ActionTypeDestroy, e.source, namespace, &types.IndexDocument{ID: id}))
	return nil
}
