package algorithm

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxslion/algod/pkg/types"
)

type fakeAlgo struct {
	meta Meta
}

func (f *fakeAlgo) Meta() Meta { return f.meta }

func (f *fakeAlgo) Execute(ctx *Context) (map[string]any, error) {
	return map[string]any{"ok": true}, nil
}

func newFake(code string) *fakeAlgo {
	return &fakeAlgo{meta: Meta{
		Code:         code,
		Name:         "Fake " + code,
		ResourceType: types.ResourceCPU,
	}}
}

func TestRegisterAndGet(t *testing.T) {
	reset()

	algo := newFake("TST-01")
	Register(algo)

	got := Get("TST-01")
	require.NotNil(t, got)
	assert.Equal(t, "TST-01", got.Meta().Code)
	assert.Nil(t, Get("NOPE"))
}

func TestDuplicateRegistrationLastWins(t *testing.T) {
	reset()

	first := newFake("TST-DUP")
	second := newFake("TST-DUP")
	second.meta.Name = "Replacement"

	Register(first)
	Register(second)

	got := Get("TST-DUP")
	require.NotNil(t, got)
	assert.Equal(t, "Replacement", got.Meta().Name)
	assert.Len(t, Schemes(), 1)
}

func TestRegisterRejectsInvalidMeta(t *testing.T) {
	reset()

	Register(&fakeAlgo{meta: Meta{Code: "BAD", Name: "no resource"}})
	assert.Nil(t, Get("BAD"))

	Register(&fakeAlgo{meta: Meta{Name: "no code", ResourceType: types.ResourceCPU}})
	assert.Empty(t, Schemes())
}

func TestSchemesSortedAndComplete(t *testing.T) {
	reset()

	Register(newFake("TST-B"))
	Register(newFake("TST-A"))

	schemes := Schemes()
	require.Len(t, schemes, 2)
	assert.Equal(t, "TST-A", schemes[0].Code)
	assert.Equal(t, "TST-B", schemes[1].Code)
	for _, meta := range schemes {
		assert.NotEmpty(t, meta.Name)
		assert.Equal(t, types.ResourceCPU, meta.ResourceType)
		assert.Equal(t, "fakeAlgo", meta.ClassName)
	}
}

func TestRestrict(t *testing.T) {
	reset()

	Register(newFake("TST-A"))
	Register(newFake("TST-B"))

	Restrict([]string{"TST-A"})
	assert.NotNil(t, Get("TST-A"))
	assert.Nil(t, Get("TST-B"))
	assert.Len(t, Schemes(), 1)

	Restrict(nil)
	assert.NotNil(t, Get("TST-B"))
}

func TestContextParams(t *testing.T) {
	ctx := NewContext("t1", map[string]any{"limit": 0.9, "mode": "fast"}, nil, nil, zerolog.Nop())
	assert.Equal(t, 0.9, ctx.ParamFloat("limit", 0.5))
	assert.Equal(t, 0.5, ctx.ParamFloat("missing", 0.5))
	assert.Equal(t, "fast", ctx.ParamString("mode", "slow"))
	assert.Equal(t, "slow", ctx.ParamString("missing", "slow"))
}
