package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidFormatVersion(t *testing.T) {
	assert.True(t, ValidFormatVersion("v1"))
	assert.True(t, ValidFormatVersion("v1.2.3"))
	assert.False(t, ValidFormatVersion("1.2.3"))
	assert.False(t, ValidFormatVersion(""))
	assert.False(t, ValidFormatVersion("latest"))
}

func TestSchemaMarshalsUnlinkedInherits(t *testing.T) {
	s := &Schema{
		Version: FormatVersion,
		Source:  "src/ast.astdl",
		Definitions: Definitions{
			Types: []TypeDef{
				{
					Kind:     "enum",
					Name:     "Expression",
					Generics: []string{"'a"},
					Variants: []VariantDef{{Name: "BooleanLiteral", Types: []string{"Box<'a, BooleanLiteral>"}}},
					Inherits: []Inherit{Unlinked("MemberExpression")},
				},
			},
		},
	}

	buf, err := json.Marshal(s)
	require.NoError(t, err)

	out := string(buf)
	assert.Contains(t, out, `"version":"v1"`)
	assert.Contains(t, out, `"source":"src/ast.astdl"`)
	assert.Contains(t, out, `"super":"MemberExpression"`)
	// An unlinked reference carries no variants.
	assert.NotContains(t, out, `"variants":null`)
}

func TestLinkedInherit(t *testing.T) {
	unlinked := Unlinked("Bar")
	assert.False(t, unlinked.IsLinked())

	linked := Linked("Bar", []VariantDef{{Name: "A"}})
	assert.True(t, linked.IsLinked())
	assert.Equal(t, "Bar", linked.Super)

	// Linking an empty supertype still counts as resolved.
	assert.True(t, Linked("Empty", nil).IsLinked())
}
