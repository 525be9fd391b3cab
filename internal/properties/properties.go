// Package properties parses the line-oriented key/value format used by
// Tomcat's catalina.properties.
//
// The format supports '#' comments, '\' line continuations, a single '='
// assignment per line, ',' separated multi-values and ${name} substitution.
// Parsing runs as a fixed pipeline:
//
//  1. trim every physical line
//  2. drop blank lines and comments
//  3. join continuation lines
//  4. split each logical line at the first assignment character
//  5. trim key and value
//  6. split the value into segments
//  7. substitute ${name} tokens inside each segment
//
// Substitution runs last, so a substituted value can never introduce a
// comment, an assignment or a segment delimiter.
package properties

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	eerrors "github.com/eardeploy/cli/internal/errors"
)

// Continuation is the escape character that joins a line with the next one.
const Continuation = '\\'

// maxLineSize bounds a single physical line read by Parse.
const maxLineSize = 1 << 20

// Value is a parsed property value: either a single string or an ordered list.
type Value struct {
	items []string
	list  bool
}

// Single returns a single-string Value.
func Single(s string) Value {
	return Value{items: []string{s}}
}

// List returns a multi-valued Value. The segments are copied.
func List(items ...string) Value {
	return Value{items: append([]string(nil), items...), list: true}
}

// IsList reports whether the value was split into more than one segment.
func (v Value) IsList() bool {
	return v.list
}

// String returns the single value, or the segments re-joined with ','.
func (v Value) String() string {
	return strings.Join(v.items, ",")
}

// List returns the segments of the value. A single value yields a
// one-element slice, so callers can treat both shapes uniformly.
func (v Value) List() []string {
	return append([]string(nil), v.items...)
}

// MarshalYAML renders single values as scalars and lists as sequences.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.list {
		return v.List(), nil
	}
	return v.String(), nil
}

// MarshalJSON mirrors MarshalYAML.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.list {
		return json.Marshal(v.items)
	}
	return json.Marshal(v.String())
}

// Document maps property keys to their values.
type Document map[string]Value

// Get returns the value for key and whether it was present.
func (d Document) Get(key string) (Value, bool) {
	v, ok := d[key]
	return v, ok
}

// Strings returns every segment stored under key, or nil when absent.
func (d Document) Strings(key string) []string {
	v, ok := d[key]
	if !ok {
		return nil
	}
	return v.List()
}

// Option configures the parser syntax.
type Option func(*syntax)

type syntax struct {
	assign  rune
	comment rune
	split   rune
}

// WithAssign sets the key/value separator (default '=').
func WithAssign(r rune) Option {
	return func(s *syntax) { s.assign = r }
}

// WithComment sets the comment character (default '#').
func WithComment(r rune) Option {
	return func(s *syntax) { s.comment = r }
}

// WithSplit sets the multi-value delimiter (default ',').
func WithSplit(r rune) Option {
	return func(s *syntax) { s.split = r }
}

// Parse reads r line by line and parses it with ParseLines.
func Parse(r io.Reader, subs map[string]string, opts ...Option) (Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading properties: %w", err)
	}
	return ParseLines(lines, subs, opts...)
}

// ParseLines parses physical lines into a Document. subs supplies values for
// ${name} tokens; unknown names are left untouched. When a key repeats, the
// last occurrence wins.
func ParseLines(lines []string, subs map[string]string, opts ...Option) (Document, error) {
	syn := syntax{assign: '=', comment: '#', split: ','}
	for _, opt := range opts {
		opt(&syn)
	}

	logical, err := joinContinuations(significant(lines, syn.comment))
	if err != nil {
		return nil, err
	}

	replacer := newReplacer(subs)
	doc := make(Document, len(logical))
	for _, line := range logical {
		key, value, ok := strings.Cut(line, string(syn.assign))
		if !ok {
			return nil, eerrors.NewMalformedLineError(line, syn.assign)
		}

		segments := strings.Split(strings.TrimSpace(value), string(syn.split))
		for i, seg := range segments {
			segments[i] = replacer.Replace(seg)
		}

		if len(segments) == 1 {
			doc[strings.TrimSpace(key)] = Single(segments[0])
		} else {
			doc[strings.TrimSpace(key)] = Value{items: segments, list: true}
		}
	}
	return doc, nil
}

// significant trims each line and drops blanks and comments.
func significant(lines []string, comment rune) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, string(comment)) {
			continue
		}
		out = append(out, line)
	}
	return out
}

// joinContinuations concatenates every line ending in Continuation with the
// lines that follow it until a line without one closes the chain.
func joinContinuations(lines []string) ([]string, error) {
	out := make([]string, 0, len(lines))
	var pending strings.Builder
	// A line holding only the continuation char leaves pending empty.
	dangling := false
	for _, line := range lines {
		if strings.HasSuffix(line, string(Continuation)) {
			pending.WriteString(strings.TrimRight(line, " \t\\"))
			dangling = true
			continue
		}
		if dangling {
			pending.WriteString(line)
			line = pending.String()
			pending.Reset()
			dangling = false
		}
		out = append(out, line)
	}
	if dangling {
		return nil, eerrors.NewEndOfInputError(pending.String())
	}
	return out, nil
}

func newReplacer(subs map[string]string) *strings.Replacer {
	pairs := make([]string, 0, 2*len(subs))
	for name, value := range subs {
		pairs = append(pairs, "${"+name+"}", value)
	}
	return strings.NewReplacer(pairs...)
}
