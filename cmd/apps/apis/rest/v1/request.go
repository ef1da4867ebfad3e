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

type TokenizeRequest struct {
	Text string `json:"text"`
	// Mode is simple, stopwords or boolean.
	Mode string `json:"mode"`
}

type IndexDocumentRequest struct {
	ID          int64  `json:"id"`
	URI         string `json:"uri" binding:"required"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
}

type SearchRequest struct {
	Query string `form:"q" binding:"required"`
	Limit int    `form:"limit"`
}
