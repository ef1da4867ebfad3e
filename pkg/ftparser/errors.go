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
	"errors"
	"fmt"
	"strings"
)

var ErrNotReady = errors.New("parser is not initialized")

// InitializationError is returned by Init when the segmenter resources
// could not be loaded. The parser stays uninitialized.
type InitializationError struct {
	Backend string
	Paths   []string
	Err     error
}

func (e *InitializationError) Error() string {
	paths := make([]string, 0, len(e.Paths))
	for _, p := range e.Paths {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return fmt.Sprintf("init %s segmenter with [%s] failed: %s", e.Backend, strings.Join(paths, ", "), e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}
