package schema_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/schema"
)

func TestUnion(t *testing.T) {
	t.Parallel()

	t.Run("literal alternative wins for its value", func(t *testing.T) {
		v := schema.Union(schema.Literal("x"), schema.String())
		res := v.Validate("x")
		require.True(t, res.Success)
		assert.Equal(t, "x", res.Data)

		res = v.Validate("y")
		require.True(t, res.Success)
		assert.Equal(t, "y", res.Data)
	})

	t.Run("first matching alternative's data is returned", func(t *testing.T) {
		utc := schema.Date()
		plus3 := schema.Date().In(time.FixedZone("UTC+3", 3*60*60))
		input := "2024-01-01 00:00:00"

		res := schema.Union(utc, plus3).Validate(input)
		require.True(t, res.Success)
		assert.True(t, res.Data.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

		res = schema.Union(plus3, utc).Validate(input)
		require.True(t, res.Success)
		assert.True(t, res.Data.Equal(time.Date(2023, 12, 31, 21, 0, 0, 0, time.UTC)))
	})

	t.Run("generic failure discards alternative errors", func(t *testing.T) {
		v := schema.Union(schema.Literal("a"), schema.Literal("b"))
		res := v.Validate("c")
		require.False(t, res.Success)
		assert.Equal(t, []string{"Value does not match any of the allowed types"}, res.Errors())
	})

	t.Run("mixed kinds through Erase", func(t *testing.T) {
		v := schema.Union(schema.Erase(schema.String()), schema.Erase(schema.Number()))
		res := v.Validate("x")
		require.True(t, res.Success)
		assert.Equal(t, "x", res.Data)

		res = v.Validate(3)
		require.True(t, res.Success)
		assert.Equal(t, 3.0, res.Data)

		assert.False(t, v.Validate(true).Success)
	})

	t.Run("json number picks the number alternative", func(t *testing.T) {
		v := schema.Union(schema.Erase(schema.String()), schema.Erase(schema.Number()))
		res := v.Validate(json.Number("42"))
		require.True(t, res.Success)
		assert.Equal(t, 42.0, res.Data)
	})

	t.Run("presence", func(t *testing.T) {
		v := schema.Union(schema.String().Optional())
		assert.Equal(t, []string{"Value is required"}, v.Validate(nil).Errors(),
			"the union's own presence check runs before alternatives")

		res := v.Optional().Validate(nil)
		require.True(t, res.Success)
		assert.False(t, res.Present)
	})

	t.Run("custom message", func(t *testing.T) {
		v := schema.Union(schema.Literal("a"), schema.Literal("b")).WithMessage("Pick a or b")
		assert.Equal(t, []string{"Pick a or b"}, v.Validate("c").Errors())
	})

	t.Run("empty union rejects everything", func(t *testing.T) {
		v := schema.Union[string]()
		assert.False(t, v.Validate("x").Success)
	})

	t.Run("inside objects", func(t *testing.T) {
		v := schema.Object(schema.Fields{
			"role": schema.Union(schema.Literal("admin"), schema.Literal("member")),
		})
		assert.True(t, v.Validate(map[string]any{"role": "admin"}).Success)
		assert.Equal(t,
			[]string{"Field 'role': Value does not match any of the allowed types"},
			v.Validate(map[string]any{"role": "guest"}).Errors(),
		)
	})
}
