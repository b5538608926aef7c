// Package format renders invocations and argument mismatches for failure
// messages and debug logs.
package format

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/mimiclib/mimic/pkg/invocation"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Invocation renders one recorded call as Type.Method(arg, arg).
func Invocation(inv *invocation.Invocation) string {
	args := inv.Args()
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = dumper.Sprintf("%#v", a)
	}
	return fmt.Sprintf("%s(%s)", inv.Method(), strings.Join(parts, ", "))
}

// Wanted renders a call pattern with its per-argument matchers.
func Wanted(m *invocation.Matcher) string {
	matchers := m.Matchers()
	parts := make([]string, len(matchers))
	for i, am := range matchers {
		parts[i] = am.String()
	}
	return fmt.Sprintf("%s(%s)", m.Invocation().Method(), strings.Join(parts, ", "))
}

// ArgumentDiff renders a unified diff between the wanted arguments and the
// arguments of a same-method call that did not match. Returns "" when the
// diff cannot be produced.
func ArgumentDiff(wanted *invocation.Matcher, actual *invocation.Invocation) string {
	want := dumpLines(argLines(wanted.Invocation()))
	got := dumpLines(argLines(actual))
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "wanted",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		return ""
	}
	return diff
}

func argLines(inv *invocation.Invocation) []string {
	args := inv.Args()
	lines := make([]string, len(args))
	for i, a := range args {
		lines[i] = dumper.Sprintf("%#v", a)
	}
	return lines
}

func dumpLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
