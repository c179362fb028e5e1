package interactions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swallowtail/data"
)

func TestNewIntChoice(t *testing.T) {
	c := NewIntChoice("Level", 5)

	assert.Equal(t, "Level", c.Name())
	assert.Equal(t, int64(5), c.AsInt())
	assert.Equal(t, "5", c.AsString())

	neg := NewIntChoice("Below", -12)
	assert.Equal(t, int64(-12), neg.AsInt())
	assert.Equal(t, "-12", neg.AsString())
}

func TestNewStringChoice(t *testing.T) {
	c := NewStringChoice("Color", "red")

	assert.Equal(t, "Color", c.Name())
	assert.Equal(t, int64(0), c.AsInt())
	assert.Equal(t, "red", c.AsString())
}

func TestParseChoice(t *testing.T) {
	t.Run("numeric value", func(t *testing.T) {
		obj, err := data.Decode([]byte(`{"name":"N","value":5}`))
		require.NoError(t, err)

		c, err := ParseChoice(obj)
		require.NoError(t, err)

		assert.Equal(t, "N", c.Name())
		assert.Equal(t, int64(5), c.AsInt())
		assert.Equal(t, "5", c.AsString())
	})

	t.Run("textual value", func(t *testing.T) {
		obj, err := data.Decode([]byte(`{"name":"N","value":"five"}`))
		require.NoError(t, err)

		c, err := ParseChoice(obj)
		require.NoError(t, err)

		assert.Equal(t, "N", c.Name())
		assert.Equal(t, int64(0), c.AsInt())
		assert.Equal(t, "five", c.AsString())
	})

	t.Run("invalid shapes", func(t *testing.T) {
		for _, raw := range []string{
			`{"value":5}`,
			`{"name":"N"}`,
			`{"name":"N","value":true}`,
			`{"name":"N","value":[1]}`,
			`{"name":"N","value":1.5}`,
		} {
			obj, err := data.Decode([]byte(raw))
			require.NoError(t, err)

			_, err = ParseChoice(obj)
			require.Error(t, err, "payload %s should fail", raw)

			var parseErr *data.ParsingError
			assert.True(t, errors.As(err, &parseErr))
		}
	})
}
