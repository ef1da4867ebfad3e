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

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("TestVerify", func() {
	Context("empty config", func() {
		It("should fill defaults", func() {
			cfg := Config{}
			Expect(Verify(&cfg)).Should(BeNil())
			Expect(cfg.Jieba.Backend).Should(Equal(CppJiebaBackend))
			Expect(path.Base(cfg.Jieba.DictPath)).Should(Equal("jieba.dict.utf8"))
			Expect(path.Base(cfg.Jieba.HMMPath)).Should(Equal("hmm_model.utf8"))
			Expect(path.Base(cfg.Jieba.UserDictPath)).Should(Equal("user.dict.utf8"))
			Expect(cfg.Index.Type).Should(Equal(MemoryIndex))
			Expect(cfg.Index.Parser).Should(Equal("sqljieba"))
		})
	})
	Context("dictionary dir env", func() {
		It("should move default paths", func() {
			Expect(os.Setenv(DictDirEnv, "/opt/jieba")).Should(BeNil())
			defer os.Unsetenv(DictDirEnv)
			Expect(DefaultJieba().DictPath).Should(Equal("/opt/jieba/jieba.dict.utf8"))
		})
	})
	Context("bad values", func() {
		It("should reject unknown backend", func() {
			cfg := Config{Jieba: Jieba{Backend: "ictclas"}}
			Expect(Verify(&cfg)).ShouldNot(BeNil())
		})
		It("should require dict for jiebago", func() {
			cfg := Config{Jieba: Jieba{Backend: JiebaGoBackend}}
			Expect(Verify(&cfg)).ShouldNot(BeNil())
		})
		It("should require dsn for mysql", func() {
			cfg := Config{Jieba: Jieba{Backend: SpaceBackend}, Index: Index{Type: MysqlIndex}}
			Expect(Verify(&cfg)).ShouldNot(BeNil())
		})
		It("should require api address", func() {
			cfg := Config{Jieba: Jieba{Backend: SpaceBackend}, Api: Api{Enable: true}}
			Expect(Verify(&cfg)).ShouldNot(BeNil())
		})
		It("should check stop words file", func() {
			cfg := Config{Jieba: Jieba{Backend: GseBackend, StopWordsPath: "/not/exist"}}
			Expect(Verify(&cfg)).ShouldNot(BeNil())
		})
	})
})

var _ = Describe("TestLoader", func() {
	var tmpDir string
	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp(os.TempDir(), "sqljieba-config-")
		Expect(err).Should(BeNil())
	})
	AfterEach(func() {
		FilePath = ""
		_ = os.RemoveAll(tmpDir)
	})

	It("should fail without --config", func() {
		FilePath = ""
		_, err := NewConfigLoader().GetConfig()
		Expect(err).ShouldNot(BeNil())
	})
	It("should load and verify json", func() {
		FilePath = path.Join(tmpDir, "sqljieba.conf")
		content := `{"jieba":{"backend":"space"},"index":{"type":"sqlite","path":"/tmp/a.db"},"api":{"enable":true,"host":"127.0.0.1","port":8080}}`
		Expect(os.WriteFile(FilePath, []byte(content), 0644)).Should(BeNil())
		cfg, err := NewConfigLoader().GetConfig()
		Expect(err).Should(BeNil())
		Expect(cfg.Jieba.Backend).Should(Equal(SpaceBackend))
		Expect(cfg.Index.Type).Should(Equal(SqliteIndex))
		Expect(cfg.Index.CacheSize).Should(Equal(512))
	})
	It("should fall back to the config env", func() {
		cfgPath := path.Join(tmpDir, "env.conf")
		Expect(os.WriteFile(cfgPath, []byte(`{"jieba":{"backend":"gse"}}`), 0644)).Should(BeNil())
		Expect(os.Setenv(FileEnv, cfgPath)).Should(BeNil())
		defer os.Unsetenv(FileEnv)

		cfg, err := NewConfigLoader().GetConfig()
		Expect(err).Should(BeNil())
		Expect(cfg.Jieba.Backend).Should(Equal(GseBackend))
		Expect(cfg.Index.Type).Should(Equal(MemoryIndex))
	})
	It("should reject unknown fields", func() {
		FilePath = path.Join(tmpDir, "sqljieba.conf")
		Expect(os.WriteFile(FilePath, []byte(`{"fuse":{"enable":true}}`), 0644)).Should(BeNil())
		_, err := NewConfigLoader().GetConfig()
		Expect(err).ShouldNot(BeNil())
	})
	It("should write default config", func() {
		cfg, err := DefaultConfig(path.Join(tmpDir, "work"))
		Expect(err).Should(BeNil())
		Expect(cfg.Index.Path).Should(Equal(path.Join(tmpDir, "work", "sqljieba.db")))
		_, err = os.Stat(path.Join(tmpDir, "work"))
		Expect(err).Should(BeNil())
	})
})

var _ = Describe("TestVersion", func() {
	It("should parse tag", func() {
		v := parseVersion("v1.2.3-rc1", "abc")
		Expect(v.Version()).Should(Equal("v1.2.3-rc1"))
		Expect(v.String()).Should(Equal("v1.2.3-rc1 (abc)"))
	})
	It("should mark untagged build", func() {
		v := parseVersion("", "")
		Expect(v.Version()).Should(Equal("v0.0.0-dev"))
	})
})
