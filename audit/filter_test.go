package audit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/auditkit/pkg/types"
)

func testSetting() types.Setting {
	return types.Setting{
		Scope:   types.ScopeComputer,
		KeyPath: `Software\Policies\Microsoft\Windows\System`,
		Item:    "EnableSmartScreen",
		Type:    "DWORD",
		Value:   "1",
		Line:    4,
	}
}

func TestCompileFilter_EmptyYieldsNil(t *testing.T) {
	f, err := CompileFilter("")
	require.NoError(t, err)
	require.Nil(t, f)
}

func TestCompileFilter_InvalidExpression(t *testing.T) {
	_, err := CompileFilter(`scope ==`)
	require.Error(t, err)

	var perr *types.Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, types.ErrKindFilter, perr.Kind)
}

func TestCompileFilter_NonBooleanRejected(t *testing.T) {
	// expr.AsBool turns a non-boolean result type into a compile error.
	_, err := CompileFilter(`item`)
	require.Error(t, err)

	var perr *types.Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, types.ErrKindFilter, perr.Kind)
}

func TestRuleFilter_NilMatchesEverything(t *testing.T) {
	var f *RuleFilter
	ok, err := f.Match(testSetting())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "", f.Source())
}

func TestRuleFilter_Match(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want bool
	}{
		{"scope equality", `scope == "Computer"`, true},
		{"scope mismatch", `scope == "User"`, false},
		{"hive shorthand", `hive == "HKLM"`, true},
		{"key path contains", `key_path contains "SmartScreen" or key_path contains "System"`, true},
		{"item prefix", `item startsWith "Enable"`, true},
		{"type and value", `type == "DWORD" and value == "1"`, true},
		{"negation", `not (item == "EnableSmartScreen")`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := CompileFilter(tt.expr)
			require.NoError(t, err)
			require.NotNil(t, f)
			require.Equal(t, tt.expr, f.Source())

			ok, err := f.Match(testSetting())
			require.NoError(t, err)
			require.Equal(t, tt.want, ok)
		})
	}
}
