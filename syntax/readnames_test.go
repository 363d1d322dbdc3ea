package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/dynslice/syntax"
)

func TestExtractReadNames_Nil(t *testing.T) {
	assert.Nil(t, syntax.ExtractReadNames(nil, nil))
}

func TestExtractReadNames_SimpleIdentifier(t *testing.T) {
	f := parse(t, "a\n")
	names := syntax.ExtractReadNames(f, f.Root())
	assert.Contains(t, names, "a")
}

func TestExtractReadNames_BinaryExpressionDedups(t *testing.T) {
	f := parse(t, "a + a\n")
	names := syntax.ExtractReadNames(f, f.Root())
	assert.Equal(t, []string{"a"}, names)
}

func TestExtractReadNames_AttributeOnlyCollectsObject(t *testing.T) {
	f := parse(t, "obj.value\n")
	names := syntax.ExtractReadNames(f, f.Root())
	assert.Equal(t, []string{"obj"}, names)
}

func TestExtractReadNames_SubscriptCollectsValueAndIndex(t *testing.T) {
	f := parse(t, "xs[i]\n")
	names := syntax.ExtractReadNames(f, f.Root())
	assert.ElementsMatch(t, []string{"xs", "i"}, names)
}

func TestExtractReadNames_NestedCallArguments(t *testing.T) {
	f := parse(t, "f(a, b.c, xs[i])\n")
	names := syntax.ExtractReadNames(f, f.Root())
	assert.ElementsMatch(t, []string{"f", "a", "b", "xs", "i"}, names)
}
