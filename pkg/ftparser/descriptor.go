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
	"fmt"
	"sort"
	"sync"

	"github.com/basenana/sqljieba/config"
	"github.com/basenana/sqljieba/pkg/types"
)

const (
	DescriptorName = "sqljieba"
	SimpleName     = "simple"

	pluginAuthor      = "github.com/yanyiwu"
	pluginDescription = "Jieba Full-Text Parser"
	pluginLicense     = "GPL"
	pluginVersion     = 0x0001
	interfaceVersion  = 0x0100
)

type PluginInfo struct {
	Name             string `json:"name"`
	Author           string `json:"author"`
	Description      string `json:"description"`
	License          string `json:"license"`
	Version          uint16 `json:"version"`
	InterfaceVersion uint16 `json:"interface_version"`
}

func Descriptor() PluginInfo {
	return PluginInfo{
		Name:             DescriptorName,
		Author:           pluginAuthor,
		Description:      pluginDescription,
		License:          pluginLicense,
		Version:          pluginVersion,
		InterfaceVersion: interfaceVersion,
	}
}

func (i PluginInfo) VersionString() string {
	return fmt.Sprintf("%d.%d", i.Version>>8, i.Version&0xff)
}

// Factory builds an uninitialized parser for a jieba configuration.
type Factory func(cfg config.Jieba) *Parser

var (
	factories   = map[string]Factory{}
	factoriesMu sync.RWMutex
)

func Register(name string, f Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories[name] = f
}

// Lookup resolves the name used in WITH PARSER.
func Lookup(name string) (Factory, error) {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("parser %s: %w", name, types.ErrNotFound)
	}
	return f, nil
}

func Parsers() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	result := make([]string, 0, len(factories))
	for name := range factories {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

func init() {
	Register(DescriptorName, func(cfg config.Jieba) *Parser {
		return New(cfg)
	})
	Register(SimpleName, func(cfg config.Jieba) *Parser {
		cfg.Backend = config.SpaceBackend
		return New(cfg, WithName(SimpleName))
	})
}
