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

import (
	"os"
	"path"
)

const (
	defaultDictFile     = "jieba.dict.utf8"
	defaultHMMFile      = "hmm_model.utf8"
	defaultUserDictFile = "user.dict.utf8"
	defaultStopWords    = "stop_words.utf8"
	defaultParser       = "sqljieba"
	defaultCacheSize    = 512
)

func DefaultJieba() Jieba {
	dir := DictDir()
	return Jieba{
		Backend:      CppJiebaBackend,
		DictPath:     path.Join(dir, defaultDictFile),
		HMMPath:      path.Join(dir, defaultHMMFile),
		UserDictPath: path.Join(dir, defaultUserDictFile),
		HMM:          true,
	}
}

func DefaultConfig(workdir string) (Config, error) {
	cfg := Config{
		Jieba: DefaultJieba(),
		Index: Index{
			Type:      SqliteIndex,
			Path:      path.Join(workdir, "sqljieba.db"),
			Parser:    defaultParser,
			CacheSize: defaultCacheSize,
		},
		Api: Api{
			Enable:  true,
			Host:    "127.0.0.1",
			Port:    17087,
			Metrics: true,
		},
	}

	if _, err := os.Stat(path.Join(DictDir(), defaultStopWords)); err == nil {
		cfg.Jieba.StopWordsPath = path.Join(DictDir(), defaultStopWords)
	}

	if err := os.MkdirAll(workdir, 0755); err != nil {
		return cfg, err
	}
	return cfg, nil
}
