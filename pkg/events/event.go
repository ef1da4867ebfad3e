package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/basenana/sqljieba/pkg/types"
)

func BuildDocumentEvent(actionType, source, namespace string, doc *types.IndexDocument) *types.Event {
	return &types.Event{
		Id:              uuid.New().String(),
		Namespace:       namespace,
		Type:            actionType,
		Source:          source,
		SpecVersion:     "1.0",
		Time:            time.Now(),
		RefType:         "document",
		RefID:           doc.ID,
		DataContentType: "application/event-data",
		Data: types.EventData{
			ID:  doc.ID,
			URI: doc.URI,
		},
	}
}
