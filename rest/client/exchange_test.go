package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betbot/exrest/rest/types"
)

func testExchange() *Exchange {
	return NewExchange("test", types.DefaultApiParams(),
		map[PublicOp]Route{
			"b": {Endpoint: "B"},
			"a": {Endpoint: "A", Nullary: true},
		},
		map[PrivateOp]Route{
			"z": {Endpoint: "Z"},
		},
	)
}

func TestNewExchange_CopiesTables(t *testing.T) {
	public := map[PublicOp]Route{"a": {Endpoint: "A"}}
	e := NewExchange("test", types.DefaultApiParams(), public, nil)

	public["b"] = Route{Endpoint: "B"}
	_, ok := e.PublicRoute("b")
	assert.False(t, ok)
	assert.Empty(t, e.PrivateOps())
}

func TestExchange_SortedOps(t *testing.T) {
	e := testExchange()
	assert.Equal(t, []PublicOp{"a", "b"}, e.PublicOps())
	assert.Equal(t, []PrivateOp{"z"}, e.PrivateOps())
}

func TestResolve(t *testing.T) {
	e := testExchange()

	r, err := resolve(e, e.public, PublicOp("a"), "")
	require.NoError(t, err)
	assert.Equal(t, "A", r.Endpoint)

	_, err = resolve(e, e.public, PublicOp("a"), "x=1")
	assert.ErrorIs(t, err, ErrUnexpectedParams)

	r, err = resolve(e, e.public, PublicOp("b"), "x=1")
	require.NoError(t, err)
	assert.Equal(t, "B", r.Endpoint)

	_, err = resolve(e, e.private, PrivateOp("missing"), "")
	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.Contains(t, err.Error(), "test/missing")
}

func TestBuildOptions_Defaults(t *testing.T) {
	e := testExchange()
	o := buildOptions(e, nil)
	assert.Equal(t, e.Defaults, *o.params)
	assert.NotNil(t, o.logger)
	assert.Nil(t, o.nonces)

	custom := types.ApiParams{BaseURL: "http://localhost:1", Version: "9"}
	o = buildOptions(e, []Option{WithApiParams(custom)})
	assert.Equal(t, custom, *o.params)
}
