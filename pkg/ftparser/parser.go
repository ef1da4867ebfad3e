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
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/basenana/sqljieba/config"
	"github.com/basenana/sqljieba/pkg/segment"
	"github.com/basenana/sqljieba/utils/logger"
)

type State int32

const (
	StateUninitialized State = iota
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "uninitialized"
}

type Option func(p *Parser)

// WithSegmenterBuilder replaces segment.New, mostly for tests.
func WithSegmenterBuilder(build func(backend string, opts segment.Options) (segment.Segmenter, error)) Option {
	return func(p *Parser) {
		p.build = build
	}
}

func WithName(name string) Option {
	return func(p *Parser) {
		p.name = name
	}
}

// Parser owns one segmenter handle. Parse may run from many goroutines,
// Init and Deinit wait for them.
type Parser struct {
	name  string
	cfg   config.Jieba
	build func(backend string, opts segment.Options) (segment.Segmenter, error)

	mux   sync.RWMutex
	seg   segment.Segmenter
	stops stopWords
	state State

	parseCalls atomic.Int64
	tokens     atomic.Int64
	initErrors atomic.Int64

	logger *zap.SugaredLogger
}

func New(cfg config.Jieba, opts ...Option) *Parser {
	p := &Parser{
		name:   DescriptorName,
		cfg:    cfg,
		build:  segment.New,
		logger: logger.NewLogger("ftparser"),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(zap.String("parser", p.name), zap.String("backend", cfg.Backend))
	return p
}

func (p *Parser) Name() string {
	return p.name
}

func (p *Parser) Backend() string {
	return p.cfg.Backend
}

func (p *Parser) State() State {
	p.mux.RLock()
	defer p.mux.RUnlock()
	return p.state
}

func (p *Parser) Init(ctx context.Context) error {
	p.mux.Lock()
	defer p.mux.Unlock()
	if p.state == StateReady {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	opts := segment.Options{
		DictPath:     p.cfg.DictPath,
		HMMPath:      p.cfg.HMMPath,
		UserDictPath: p.cfg.UserDictPath,
		HMM:          p.cfg.HMM,
		SearchMode:   p.cfg.SearchMode,
	}
	startAt := time.Now()
	seg, err := p.build(p.cfg.Backend, opts)
	if err != nil {
		return p.initFailed(opts, err)
	}

	var stops stopWords
	if p.cfg.StopWordsPath != "" {
		stops, err = loadStopWords(p.cfg.StopWordsPath)
		if err != nil {
			_ = seg.Close()
			return p.initFailed(opts, err)
		}
	}

	p.seg = seg
	p.stops = stops
	p.state = StateReady
	readyParserGauge.Inc()
	p.logger.Infow("segmenter loaded", "dict", opts.DictPath, "hmm", opts.HMMPath,
		"user_dict", opts.UserDictPath, "stop_words", len(stops), "elapsed", time.Since(startAt).String())
	return nil
}

func (p *Parser) initFailed(opts segment.Options, err error) error {
	initErr := &InitializationError{Backend: p.cfg.Backend, Paths: opts.Paths(), Err: err}
	p.initErrors.Add(1)
	initErrorCounter.WithLabelValues(p.cfg.Backend).Inc()
	sentry.CaptureException(initErr)
	p.logger.Errorw("load segmenter failed", "err", err)
	return initErr
}

// Deinit releases the segmenter. Calling it on an uninitialized parser
// does nothing.
func (p *Parser) Deinit() error {
	p.mux.Lock()
	defer p.mux.Unlock()
	if p.state != StateReady {
		return nil
	}
	err := p.seg.Close()
	p.seg = nil
	p.stops = nil
	p.state = StateUninitialized
	readyParserGauge.Dec()
	if err != nil {
		p.logger.Warnw("close segmenter failed", "err", err)
		return err
	}
	p.logger.Infow("segmenter released")
	return nil
}

func (p *Parser) Begin(ctx context.Context, param Param) {}

func (p *Parser) End(ctx context.Context, param Param) {}

func (p *Parser) Parse(ctx context.Context, param Param) (err error) {
	if param.Sink == nil {
		return errors.New("parse without sink")
	}

	p.mux.RLock()
	defer p.mux.RUnlock()
	if p.state != StateReady {
		return ErrNotReady
	}

	p.parseCalls.Add(1)
	defer logLatency(parseLatency, param.Mode, time.Now())
	defer func() {
		_ = logErr(parseErrorCounter, err, param.Mode)
	}()

	if len(param.Doc) == 0 {
		return nil
	}

	e := &emitter{ctx: ctx, sink: param.Sink}
	defer func() {
		p.tokens.Add(e.count)
	}()

	if param.Mode == ModeFullBoolean {
		return p.parseBoolean(e, param.Doc)
	}
	return p.parseWords(e, param.Doc, param.Mode)
}

func (p *Parser) parseWords(e *emitter, doc []byte, mode Mode) error {
	stream := p.seg.Cut(doc)
	defer stream.Close()

	for stream.Next() {
		tok := stream.Token()
		if p.cfg.SkipSymbols && !hasWordRune(tok.Text) {
			continue
		}
		info := BooleanInfo{Type: TokenWord, Position: tok.Offset, Prev: ' '}
		if mode == ModeWithStopwords && p.stops.has(tok.Text) {
			info.Type = TokenStopword
		}
		if err := e.emit(tok.Text, info); err != nil {
			return err
		}
	}
	return nil
}

// cutChunk segments part of the document starting at base and returns
// tokens with offsets relative to the whole document.
func (p *Parser) cutChunk(chunk []byte, base int) []segment.Token {
	stream := p.seg.Cut(chunk)
	defer stream.Close()

	words := make([]segment.Token, 0, stream.Len())
	for stream.Next() {
		tok := stream.Token()
		if !hasWordRune(tok.Text) {
			continue
		}
		tok.Offset += base
		words = append(words, tok)
	}
	return words
}

func (p *Parser) Status() map[string]string {
	p.mux.RLock()
	state := p.state
	p.mux.RUnlock()
	return map[string]string{
		"state":       state.String(),
		"backend":     p.cfg.Backend,
		"parse_calls": fmt.Sprintf("%d", p.parseCalls.Load()),
		"tokens":      fmt.Sprintf("%d", p.tokens.Load()),
		"init_errors": fmt.Sprintf("%d", p.initErrors.Load()),
	}
}

type emitter struct {
	ctx   context.Context
	sink  Sink
	count int64
}

func (e *emitter) emit(word []byte, info BooleanInfo) error {
	if err := e.ctx.Err(); err != nil {
		return err
	}
	if err := e.sink.AddWord(e.ctx, word, &info); err != nil {
		return fmt.Errorf("add %s at %d failed: %w", info.Type, info.Position, err)
	}
	e.count++
	emittedTokenCounter.WithLabelValues(info.Type.String()).Inc()
	return nil
}

func hasWordRune(word []byte) bool {
	for len(word) > 0 {
		r, size := utf8.DecodeRune(word)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
		word = word[size:]
	}
	return false
}
