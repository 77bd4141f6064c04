// Package journal records the effects handled during a drive and replays them.
//
// A Recorder is installed as an effects.Interceptor; it captures every effect
// with the value its handler returned. The captured entries can be dumped as
// text for golden files, exported as YAML, fingerprinted with Digest, or fed
// back through Replay to drive the same computation without the real handlers.
package journal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/effect_drive_go/effects"
	"gopkg.in/yaml.v3"
)

// ErrReplayMismatch reports a replayed drive that diverged from its recording.
var ErrReplayMismatch = errors.New("replay mismatch")

// Entry is one handled effect.
type Entry struct {
	Seq        int
	EffectType string
	Effect     effects.Effect
	Result     any
	Err        string
}

func (e Entry) String() string {
	if e.Err != "" {
		return fmt.Sprintf("#%d %s %+v -> error: %s", e.Seq, e.EffectType, e.Effect, e.Err)
	}
	return fmt.Sprintf("#%d %s %+v -> %+v", e.Seq, e.EffectType, e.Effect, e.Result)
}

// Recorder collects entries from the handlers it intercepts.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Intercept records each effect passed to next together with its outcome.
// Pass it to effects.WithInterceptor.
func (r *Recorder) Intercept(next effects.Handler) effects.Handler {
	return func(ctx context.Context, eff effects.Effect) (any, error) {
		v, err := next(ctx, eff)
		entry := Entry{EffectType: typeName(eff), Effect: eff, Result: v}
		if err != nil {
			entry.Err = err.Error()
		}
		r.mu.Lock()
		entry.Seq = len(r.entries) + 1
		r.entries = append(r.entries, entry)
		r.mu.Unlock()
		return v, err
	}
}

// Entries returns a copy of the recorded entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Reset drops all recorded entries.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

// Digest returns an xxhash fingerprint of the recorded entries.
// Two drives that handled the same effects with the same results share a digest.
func (r *Recorder) Digest() uint64 {
	d := xxhash.New()
	for _, e := range r.Entries() {
		_, _ = d.WriteString(e.String())
		_, _ = d.WriteString("\n")
	}
	return d.Sum64()
}

// WriteText writes one line per entry.
func (r *Recorder) WriteText(w io.Writer) error {
	for _, e := range r.Entries() {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}
	return nil
}

type yamlEntry struct {
	Seq    int    `yaml:"seq"`
	Type   string `yaml:"type"`
	Effect string `yaml:"effect"`
	Result string `yaml:"result,omitempty"`
	Err    string `yaml:"error,omitempty"`
}

type yamlJournal struct {
	Digest  string      `yaml:"digest"`
	Entries []yamlEntry `yaml:"entries"`
}

// YAML renders the journal and its digest as a YAML document.
func (r *Recorder) YAML() ([]byte, error) {
	doc := yamlJournal{Digest: fmt.Sprintf("%016x", r.Digest())}
	for _, e := range r.Entries() {
		ye := yamlEntry{
			Seq:    e.Seq,
			Type:   e.EffectType,
			Effect: fmt.Sprintf("%+v", e.Effect),
			Err:    e.Err,
		}
		if e.Err == "" {
			ye.Result = fmt.Sprintf("%+v", e.Result)
		}
		doc.Entries = append(doc.Entries, ye)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal journal: %w", err)
	}
	return out, nil
}

// Replay returns a handler that answers effects with the recorded results, in order.
// It fails with ErrReplayMismatch when an effect's type differs from the
// recorded one or when the recording runs out. Recorded handler errors are
// replayed as errors.
func Replay(entries []Entry) effects.Handler {
	var (
		mu   sync.Mutex
		next int
	)
	return func(_ context.Context, eff effects.Effect) (any, error) {
		mu.Lock()
		defer mu.Unlock()

		effType := typeName(eff)
		if next >= len(entries) {
			return nil, fmt.Errorf("%w: unexpected effect %s after %d recorded entries", ErrReplayMismatch, effType, len(entries))
		}
		e := entries[next]
		next++
		if e.EffectType != effType {
			return nil, fmt.Errorf("%w: entry #%d recorded %s, got %s", ErrReplayMismatch, e.Seq, e.EffectType, effType)
		}
		if e.Err != "" {
			return nil, errors.New(e.Err)
		}
		return e.Result, nil
	}
}

// Text renders entries the way WriteText does.
func Text(entries []Entry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
