package audit

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/joshuapare/auditkit/pkg/types"
)

// SettingEnv defines the variables available during filter expression
// evaluation. One instance is built per parsed setting.
type SettingEnv struct {
	Scope   string `expr:"scope"`    // "Computer" or "User"
	Hive    string `expr:"hive"`     // "HKLM" or "HKCU"
	KeyPath string `expr:"key_path"` // path below the hive root
	Item    string `expr:"item"`     // registry value name
	Type    string `expr:"type"`     // raw type token
	Value   string `expr:"value"`    // raw value text
}

// RuleFilter decides which parsed settings become audit rules. The zero
// value is unusable; build filters with CompileFilter. A nil *RuleFilter
// matches everything, so callers can thread an optional filter without
// branching.
type RuleFilter struct {
	program *vm.Program
	source  string
}

// CompileFilter compiles a boolean filter expression once, up front. An
// empty expression yields a nil filter.
func CompileFilter(src string) (*RuleFilter, error) {
	if src == "" {
		return nil, nil
	}
	program, err := expr.Compile(src,
		expr.Env(SettingEnv{}),
		expr.AsBool())
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindFilter, Msg: fmt.Sprintf("invalid filter expression %q", src), Err: err}
	}
	return &RuleFilter{program: program, source: src}, nil
}

// Match reports whether the setting passes the filter.
func (f *RuleFilter) Match(s types.Setting) (bool, error) {
	if f == nil || f.program == nil {
		return true, nil
	}

	env := SettingEnv{
		Scope:   s.Scope.String(),
		Hive:    s.Scope.Hive(),
		KeyPath: s.KeyPath,
		Item:    s.Item,
		Type:    s.Type,
		Value:   s.Value,
	}
	output, err := expr.Run(f.program, env)
	if err != nil {
		return false, &types.Error{Kind: types.ErrKindFilter, Msg: fmt.Sprintf("evaluate filter expression %q", f.source), Err: err}
	}
	result, ok := output.(bool)
	if !ok {
		return false, &types.Error{Kind: types.ErrKindFilter, Msg: fmt.Sprintf("filter expression %q did not return a boolean", f.source)}
	}
	return result, nil
}

// Source returns the original expression text, empty for a nil filter.
func (f *RuleFilter) Source() string {
	if f == nil {
		return ""
	}
	return f.source
}
