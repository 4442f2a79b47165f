// Package script replays a YAML scenario of list operations against a
// slist.List[string].
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"go-slist/config"
	"go-slist/datastruct/slist"
	"go-slist/enum"
	"go-slist/lib/logger"
)

const (
	OpPushFront   = "push_front"
	OpPopFront    = "pop_front"
	OpInsertAfter = "insert_after"
	OpEraseAfter  = "erase_after"
	OpEraseIf     = "erase_if"
	OpClear       = "clear"
)

// BeforeBegin is the pos value that names the position before the first element.
const BeforeBegin = -1

// Step is one operation of a script. Pos counts elements from 0; BeforeBegin
// (the default) is the position in front of the first element.
type Step struct {
	Op    string `yaml:"op"`
	Pos   *int   `yaml:"pos,omitempty"`
	Value string `yaml:"value,omitempty"`
}

func (s Step) position() int {
	if s.Pos == nil {
		return BeforeBegin
	}
	return *s.Pos
}

type Script struct {
	Initial []string `yaml:"initial"`
	Steps   []Step   `yaml:"steps"`
}

// Result is the state of the list after the last step.
type Result struct {
	Final []string
	Size  int
	Steps int
}

// Parse decodes a script. Unknown fields are rejected.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	s := &Script{}
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, enum.EMPTY_SCRIPT
		}
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if len(s.Initial) == 0 && len(s.Steps) == 0 {
		return nil, enum.EMPTY_SCRIPT
	}
	return s, nil
}

// Load reads and parses the script file at path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Run builds the initial list and applies every step in order. ctx is
// checked between steps.
func (s *Script) Run(ctx context.Context) (*Result, error) {
	l := slist.Of(s.Initial...)
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := apply(l, step); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
		trace("step", i, step.Op, "->", l)
	}
	return &Result{Final: l.Values(), Size: l.GetSize(), Steps: len(s.Steps)}, nil
}

func trace(v ...any) {
	if config.Props.Trace {
		logger.Info(v...)
		return
	}
	logger.Debug(v...)
}

func apply(l *slist.List[string], step Step) error {
	switch step.Op {
	case OpPushFront:
		l.PushFront(step.Value)
	case OpPopFront:
		if l.IsEmpty() {
			return enum.LIST_IS_EMPTY
		}
		l.PopFront()
	case OpInsertAfter:
		pos, err := seek(l, step.position())
		if err != nil {
			return err
		}
		l.InsertAfter(pos, step.Value)
	case OpEraseAfter:
		pos, err := seek(l, step.position())
		if err != nil {
			return err
		}
		if step.position() == l.GetSize()-1 {
			return fmt.Errorf("%w: %d has no successor", enum.BAD_POSITION, step.position())
		}
		l.EraseAfter(pos)
	case OpEraseIf:
		n := eraseIf(l, func(v string) bool { return v == step.Value })
		trace("erased", n, "of", step.Value)
	case OpClear:
		l.Clear()
	default:
		return fmt.Errorf("%w: %q", enum.UNKNOWN_OP, step.Op)
	}
	return nil
}

// seek walks from before-begin to the element at pos.
func seek(l *slist.List[string], pos int) (slist.Iterator[string], error) {
	if pos < BeforeBegin || pos >= l.GetSize() {
		return slist.Iterator[string]{}, fmt.Errorf("%w: %d not in [%d, %d)", enum.BAD_POSITION, pos, BeforeBegin, l.GetSize())
	}
	it := l.BeforeBegin()
	for i := BeforeBegin; i < pos; i++ {
		it.Next()
	}
	return it, nil
}

// eraseIf 用EraseAfter删除所有满足pred的元素, 返回删除的数量
func eraseIf(l *slist.List[string], pred func(string) bool) int {
	removed := 0
	prev := l.BeforeBegin()
	for cur := l.Begin(); cur.Valid(); {
		if pred(cur.Value()) {
			cur = l.EraseAfter(prev)
			removed++
			continue
		}
		prev = cur
		cur.Next()
	}
	return removed
}
