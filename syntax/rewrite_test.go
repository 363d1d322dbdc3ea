package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/dynslice/syntax"
)

func TestRewriter_DropsUnkeptSimpleStatement(t *testing.T) {
	src := "def slice_me():\n" +
		"    a = 1\n" +
		"    b = 2\n" +
		"    c = a  # slicing criterion\n"
	f := parse(t, src)
	target, ok := syntax.FindFunction(f, "slice_me")
	require.True(t, ok)

	keep := map[int]bool{2: true, 4: true}
	out := syntax.NewRewriter(f).Rewrite(target, func(line int) bool { return keep[line] })

	assert.Equal(t, "def slice_me():\n    a = 1\n    c = a  # slicing criterion\n", string(out))
}

func TestRewriter_DropsWholeIfWhenHeaderUnkept(t *testing.T) {
	src := "def slice_me():\n" +
		"    a = 1\n" +
		"    if a > 0:\n" +
		"        b = 2\n" +
		"    c = a  # slicing criterion\n"
	f := parse(t, src)
	target, ok := syntax.FindFunction(f, "slice_me")
	require.True(t, ok)

	keep := map[int]bool{2: true, 5: true}
	out := syntax.NewRewriter(f).Rewrite(target, func(line int) bool { return keep[line] })

	assert.Equal(t, "def slice_me():\n    a = 1\n    c = a  # slicing criterion\n", string(out))
}

func TestRewriter_KeepsIfDropsElseBranch(t *testing.T) {
	src := "def slice_me():\n" +
		"    a = 1\n" +
		"    if a > 0:\n" +
		"        b = 2\n" +
		"    else:\n" +
		"        b = 3\n" +
		"    c = b  # slicing criterion\n"
	f := parse(t, src)
	target, ok := syntax.FindFunction(f, "slice_me")
	require.True(t, ok)

	keep := map[int]bool{2: true, 3: true, 4: true, 7: true}
	out := syntax.NewRewriter(f).Rewrite(target, func(line int) bool { return keep[line] })

	expected := "def slice_me():\n" +
		"    a = 1\n" +
		"    if a > 0:\n" +
		"        b = 2\n" +
		"    c = b  # slicing criterion\n"
	assert.Equal(t, expected, string(out))
}

func TestRewriter_OutsideTargetBodyUntouched(t *testing.T) {
	src := "x = 1\n" +
		"def slice_me():\n" +
		"    a = 1\n" +
		"    b = a  # slicing criterion\n" +
		"y = 2\n"
	f := parse(t, src)
	target, ok := syntax.FindFunction(f, "slice_me")
	require.True(t, ok)

	keep := map[int]bool{3: true, 4: true}
	out := syntax.NewRewriter(f).Rewrite(target, func(line int) bool { return keep[line] })

	assert.Contains(t, string(out), "x = 1")
	assert.Contains(t, string(out), "y = 2")
}
