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

package types

import "time"

const (
	ContentTypeText     = "text"
	ContentTypeHTML     = "html"
	ContentTypeMarkdown = "markdown"
)

// IndexDocument is the unit a host stores in its full-text index.
type IndexDocument struct {
	ID          int64  `json:"id"`
	URI         string `json:"uri"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ContentType string `json:"content_type,omitempty"`
	CreateAt    int64  `json:"create_at"`
	ChangedAt   int64  `json:"changed_at"`
}

func (d *IndexDocument) Touch() {
	now := time.Now().UnixNano()
	if d.CreateAt == 0 {
		d.CreateAt = now
	}
	d.ChangedAt = now
}

// SegmentedDocument carries the parser output for one IndexDocument,
// each field holds the emitted words joined by a single space.
type SegmentedDocument struct {
	IndexDocument
	TitleTokens   string
	ContentTokens string
}
