package schema_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/schema"
)

func invalidOrder() schema.Result[map[string]any] {
	v := schema.Object(schema.Fields{
		"id":    schema.String().UUID(),
		"items": schema.Array(schema.Number().Positive()),
	})
	return v.Validate(map[string]any{"id": "nope", "items": []any{1, -1, 0}})
}

func TestIssues(t *testing.T) {
	t.Parallel()
	res := invalidOrder()
	require.False(t, res.Success)

	t.Run("messages", func(t *testing.T) {
		assert.Equal(t, []string{
			"Field 'id': Value must be a valid UUID",
			"Field 'items': Item at index 1: Value must be positive",
			"Field 'items': Item at index 2: Value must be positive",
		}, res.Issues.Messages())
		assert.Equal(t, res.Issues.Messages(), res.Errors())
	})

	t.Run("paths", func(t *testing.T) {
		assert.Equal(t, []string{"id", "items.1", "items.2"}, res.Issues.Paths())
		assert.True(t, res.Issues.Has("items.1"))
		assert.False(t, res.Issues.Has("items.0"))
		assert.Equal(t, []string{"Value must be positive"}, res.Issues.Get("items.2"))
		assert.Nil(t, res.Issues.Get("missing"))
	})

	t.Run("codes", func(t *testing.T) {
		assert.Equal(t, schema.CodePattern, res.Issues[0].Code)
		assert.True(t, res.Issues[0].Custom)
		assert.Equal(t, schema.CodePositive, res.Issues[1].Code)
		assert.False(t, res.Issues[1].Custom)
	})

	t.Run("error string", func(t *testing.T) {
		assert.Equal(t,
			"validation failed: Field 'id': Value must be a valid UUID; "+
				"Field 'items': Item at index 1: Value must be positive; "+
				"Field 'items': Item at index 2: Value must be positive",
			res.Issues.Error(),
		)
		assert.Equal(t, "validation failed", schema.Issues{}.Error())
	})
}

func TestResult_Err(t *testing.T) {
	t.Parallel()

	t.Run("nil on success", func(t *testing.T) {
		res := schema.String().Validate("x")
		assert.NoError(t, res.Err())
		assert.Nil(t, res.Errors())
		data, err := res.Unwrap()
		require.NoError(t, err)
		assert.Equal(t, "x", data)
	})

	t.Run("issues on failure", func(t *testing.T) {
		err := invalidOrder().Err()
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrValidationFailed)
		assert.True(t, schema.IsValidationError(err))

		wrapped := fmt.Errorf("create order: %w", err)
		assert.ErrorIs(t, wrapped, schema.ErrValidationFailed)
		issues := schema.ExtractIssues(wrapped)
		require.Len(t, issues, 3)
		assert.True(t, issues.Has("id"))
	})

	t.Run("extract from unrelated errors", func(t *testing.T) {
		assert.Nil(t, schema.ExtractIssues(nil))
		assert.Nil(t, schema.ExtractIssues(errors.New("boom")))
		assert.False(t, schema.IsValidationError(nil))
		assert.False(t, schema.IsValidationError(errors.New("boom")))
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	n, err := schema.Parse(schema.Number().Integer(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42.0, n)

	_, err = schema.Parse(schema.Number().Integer(), 4.2)
	require.Error(t, err)
	assert.Equal(t, []string{"Value must be an integer"}, schema.ExtractIssues(err).Messages())

	assert.Equal(t, "ok", schema.MustParse(schema.String(), "ok"))
	assert.Panics(t, func() { schema.MustParse(schema.String(), 1) })
}

func TestIssue_PathString(t *testing.T) {
	t.Parallel()
	issue := schema.Issue{
		Path:    []schema.Segment{{Field: "users"}, {Index: 3, IsIndex: true}, {Field: "email"}},
		Message: "Value is required",
	}
	assert.Equal(t, "users.3.email", issue.PathString())
	assert.Equal(t, "Field 'users': Item at index 3: Field 'email': Value is required", issue.String())
}
