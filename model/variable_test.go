package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariableRecord_Assign_KeepsElementsAndAliases(t *testing.T) {
	v := newVariableRecord("xs", 2, "list")
	v.Element("0", 3)
	v.AddAlias("ys")

	v.Assign(7)

	assert.Equal(t, 7, v.ActiveDef)
	assert.Equal(t, 2, v.PreviousDef)
	assert.NotNil(t, v.Elements)
	assert.Equal(t, []string{"ys"}, v.Aliases)
}

func TestVariableRecord_Reassign_ClearsEverything(t *testing.T) {
	v := newVariableRecord("xs", 2, "list")
	v.Element("0", 3)
	v.Attribute("size", 4)
	v.AddAlias("ys")

	v.Reassign(9, "dict")

	assert.Equal(t, 9, v.ActiveDef)
	assert.Equal(t, 2, v.PreviousDef)
	assert.Equal(t, "dict", v.TypeTag)
	assert.Nil(t, v.Elements)
	assert.Nil(t, v.Attributes)
	assert.Nil(t, v.Aliases)
}

func TestVariableRecord_Element_CreatesThenAdvances(t *testing.T) {
	v := newVariableRecord("xs", 2, "list")

	e := v.Element("0", 3)
	assert.Equal(t, 3, e.ActiveDef)
	assert.False(t, e.HasPrevious())

	e2 := v.Element("0", 6)
	assert.Same(t, e, e2)
	assert.Equal(t, 6, e2.ActiveDef)
	assert.Equal(t, 3, e2.PreviousDef)
}

func TestVariableRecord_Attribute_CreatesThenAdvances(t *testing.T) {
	v := newVariableRecord("obj", 2, "object")

	a := v.Attribute("value", 3)
	assert.Equal(t, 3, a.ActiveDef)

	a2 := v.Attribute("value", 6)
	assert.Same(t, a, a2)
	assert.Equal(t, 6, a2.ActiveDef)
	assert.Equal(t, 3, a2.PreviousDef)
}

func TestVariableRecord_AddAlias_Dedups(t *testing.T) {
	v := newVariableRecord("p", 2, "list")
	v.AddAlias("q")
	v.AddAlias("q")
	assert.Equal(t, []string{"q"}, v.Aliases)
}

func TestIsImmutableType(t *testing.T) {
	assert.True(t, IsImmutableType("int"))
	assert.True(t, IsImmutableType("string"))
	assert.False(t, IsImmutableType("list"))
	assert.False(t, IsImmutableType("object"))
}
