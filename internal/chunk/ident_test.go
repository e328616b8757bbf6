package chunk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentWithModifierDoesNotMutateReceiver(t *testing.T) {
	base := NewIdent("/out/main.js")
	decorated := base.WithModifier("chunk list lists/main.json")

	assert.Empty(t, base.Modifiers)
	assert.Equal(t, []string{"chunk list lists/main.json"}, decorated.Modifiers)
	assert.Equal(t, base.Path, decorated.Path)
}

func TestIdentString(t *testing.T) {
	ident := NewIdent("/out/main.js").WithModifier("a").WithModifier("b")
	assert.Equal(t, "/out/main.js [a, b]", ident.String())
	assert.Equal(t, "/out/main.js", NewIdent("/out/main.js").String())
}

func TestIdentHashDistinguishesModifiers(t *testing.T) {
	plain := NewIdent("/out/main.js")
	decorated := plain.WithModifier("chunk list lists/main.json")

	assert.Len(t, plain.Hash(), 16)
	assert.Equal(t, plain.Hash(), NewIdent("/out/main.js").Hash())
	assert.NotEqual(t, plain.Hash(), decorated.Hash())
}

func TestModuleIDWirePreservesKind(t *testing.T) {
	str, err := json.Marshal(StringID("mod:1"))
	require.NoError(t, err)
	assert.Equal(t, `"mod:1"`, string(str))

	num, err := json.Marshal(NumberID(42))
	require.NoError(t, err)
	assert.Equal(t, `42`, string(num))

	var decoded ModuleID
	require.NoError(t, json.Unmarshal([]byte(`42`), &decoded))
	assert.Equal(t, NumberID(42), decoded)
	require.NoError(t, json.Unmarshal([]byte(`"mod:1"`), &decoded))
	assert.Equal(t, StringID("mod:1"), decoded)
}
