// Package script runs tengo level-authoring scripts against a level.
//
// A script sees the level bounds as cols and rows and edits through:
//
//	place(tag, x, y)  // tag is a symbol ("O") or name ("block"); returns the outcome name
//	remove(x, y)      // returns true when an entity was removed
//	at(x, y)          // tag name at the cell, or "" when empty
//	clear()           // removes every entity
//
// Placement follows the level's rules: singletons move, occupied cells
// reject. Cells outside the bounds are ignored.
package script

import (
	"context"
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/gridedit/level"
)

var ErrUnknownTag = errors.New("script: unknown tag")

// Run compiles and executes src. The level keeps every edit made before an
// error or cancellation.
func Run(ctx context.Context, src []byte, l *level.Level) error {
	if l == nil {
		return fmt.Errorf("script: nil level")
	}
	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	for name, v := range globals(l) {
		if err := s.Add(name, v); err != nil {
			return fmt.Errorf("script: add %s: %w", name, err)
		}
	}

	compiled, err := s.Compile()
	if err != nil {
		return fmt.Errorf("script: compile: %w", err)
	}
	if err := compiled.RunContext(ctx); err != nil {
		return fmt.Errorf("script: run: %w", err)
	}
	return nil
}

func globals(l *level.Level) map[string]any {
	return map[string]any{
		"cols": l.Cols,
		"rows": l.Rows,
		"place": &tengo.UserFunction{Name: "place", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 3 {
				return nil, tengo.ErrWrongNumArguments
			}
			tag, err := tagArg(args[0])
			if err != nil {
				return nil, err
			}
			c, err := cellArgs(args[1], args[2])
			if err != nil {
				return nil, err
			}
			if !l.InBounds(c) {
				return &tengo.String{Value: level.OutcomeIgnored.String()}, nil
			}
			return &tengo.String{Value: l.Place(tag, c).String()}, nil
		}},
		"remove": &tengo.UserFunction{Name: "remove", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			c, err := cellArgs(args[0], args[1])
			if err != nil {
				return nil, err
			}
			if l.InBounds(c) && l.RemoveAt(c) {
				return tengo.TrueValue, nil
			}
			return tengo.FalseValue, nil
		}},
		"at": &tengo.UserFunction{Name: "at", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			c, err := cellArgs(args[0], args[1])
			if err != nil {
				return nil, err
			}
			if e, ok := l.FindAt(c); ok {
				return &tengo.String{Value: e.Tag.String()}, nil
			}
			return &tengo.String{Value: ""}, nil
		}},
		"clear": &tengo.UserFunction{Name: "clear", Value: func(args ...tengo.Object) (tengo.Object, error) {
			l.Reset()
			return tengo.UndefinedValue, nil
		}},
	}
}

func tagArg(obj tengo.Object) (level.Tag, error) {
	s, ok := tengo.ToString(obj)
	if !ok {
		return level.TagNone, tengo.ErrInvalidArgumentType{Name: "tag", Expected: "string", Found: obj.TypeName()}
	}
	tag, ok := level.ParseTag(s)
	if !ok {
		return level.TagNone, fmt.Errorf("%w %q", ErrUnknownTag, s)
	}
	return tag, nil
}

func cellArgs(xo, yo tengo.Object) (level.Cell, error) {
	x, ok := tengo.ToInt(xo)
	if !ok {
		return level.Cell{}, tengo.ErrInvalidArgumentType{Name: "x", Expected: "int", Found: xo.TypeName()}
	}
	y, ok := tengo.ToInt(yo)
	if !ok {
		return level.Cell{}, tengo.ErrInvalidArgumentType{Name: "y", Expected: "int", Found: yo.TypeName()}
	}
	return level.Cell{X: x, Y: y}, nil
}
