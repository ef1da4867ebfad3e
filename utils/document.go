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

package utils

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var repeatSpace = regexp.MustCompile(`\s+`)
var htmlCharFilterRegexp = regexp.MustCompile(`</?[!\w:]+((\s+[\w-]+(\s*=\s*(?:\\*".*?"|'.*?'|[^'">\s]+))?)+\s*|\s*)/?>`)

// DocumentText reduces a document body to the plain text handed to the
// parser. Only html is rewritten.
func DocumentText(contentType, content string) string {
	switch contentType {
	case "html", "htm":
		if text, err := htmlText(content); err == nil {
			return text
		}
		return strings.TrimSpace(ContentTrim("html", content))
	}
	return content
}

func ContentTrim(contentType, content string) string {
	switch contentType {
	case "html", "htm":
		content = strings.ReplaceAll(content, "</p>", "</p>\n")
		content = strings.ReplaceAll(content, "</P>", "</P>\n")
		content = strings.ReplaceAll(content, "</div>", "</div>\n")
		content = strings.ReplaceAll(content, "</DIV>", "</DIV>\n")
		content = htmlCharFilterRegexp.ReplaceAllString(content, "")
	}
	content = repeatSpace.ReplaceAllString(content, " ")
	return content
}

func htmlText(content string) (string, error) {
	query, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", err
	}
	query.Find("script,style,noscript").Remove()
	query.Find("p,div,br,li,h1,h2,h3,h4,h5,h6,tr").AppendHtml("\n")

	lines := strings.Split(query.Text(), "\n")
	contents := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(repeatSpace.ReplaceAllString(line, " "))
		if line != "" {
			contents = append(contents, line)
		}
	}
	return strings.Join(contents, "\n"), nil
}

// Snippet returns at most m runes of the document text.
func Snippet(contentType, content string, m int) string {
	str := repeatSpace.ReplaceAllString(DocumentText(contentType, content), " ")
	runes := []rune(str)
	if len(runes) > m {
		return string(runes[:m])
	}
	return str
}
