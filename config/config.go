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

package config

const (
	CppJiebaBackend = "cppjieba"
	JiebaGoBackend  = "jiebago"
	GseBackend      = "gse"
	SpaceBackend    = "space"
)

const (
	MemoryIndex   = "memory"
	SqliteIndex   = "sqlite"
	PostgresIndex = "postgres"
	MysqlIndex    = "mysql"
)

type Config struct {
	Jieba     Jieba  `json:"jieba"`
	Index     Index  `json:"index"`
	Api       Api    `json:"api"`
	SentryDSN string `json:"sentry_dsn,omitempty"`
	Debug     bool   `json:"debug,omitempty"`
}

// Jieba holds the segmenter resources. The three paths are handed to the
// backend unchanged.
type Jieba struct {
	Backend       string `json:"backend"`
	DictPath      string `json:"dict_path"`
	HMMPath       string `json:"hmm_path"`
	UserDictPath  string `json:"user_dict_path"`
	StopWordsPath string `json:"stop_words_path,omitempty"`
	HMM           bool   `json:"hmm"`
	SearchMode    bool   `json:"search_mode,omitempty"`
	SkipSymbols   bool   `json:"skip_symbols,omitempty"`
}

type Index struct {
	Type      string `json:"type"`
	Path      string `json:"path,omitempty"`
	DSN       string `json:"dsn,omitempty"`
	Parser    string `json:"parser,omitempty"`
	CacheSize int    `json:"cache_size,omitempty"`
}

type Api struct {
	Enable  bool   `json:"enable"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
	Pprof   bool   `json:"pprof"`
	Metrics bool   `json:"metrics"`
}
