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

package ftparser

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type stopWords map[string]struct{}

func (s stopWords) has(word []byte) bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[strings.ToLower(string(word))]
	return ok
}

// loadStopWords reads one word per line, the format of cppjieba's
// stop_words.utf8.
func loadStopWords(filename string) (stopWords, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	result := stopWords{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		result[strings.ToLower(word)] = struct{}{}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stop words %s failed: %w", filename, err)
	}
	return result, nil
}
