package data

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	obj, err := Decode([]byte(`{"name":"ban","type":4}`))
	require.NoError(t, err)

	name, err := obj.GetString("name")
	require.NoError(t, err)
	assert.Equal(t, "ban", name)

	typ, err := obj.GetInt("type")
	require.NoError(t, err)
	assert.Equal(t, 4, typ)
}

func TestDecodeRejectsNonObjects(t *testing.T) {
	for _, raw := range []string{`[]`, `"str"`, `12`, `{"broken":`} {
		_, err := Decode([]byte(raw))

		var parseErr *ParsingError
		assert.True(t, errors.As(err, &parseErr), "payload %s should fail with a ParsingError", raw)
	}
}

func TestDecodeArray(t *testing.T) {
	arr, err := DecodeArray([]byte(`[{"a":1},{"a":2}]`))
	require.NoError(t, err)
	require.Len(t, arr, 2)

	obj, err := ToObject(arr[1])
	require.NoError(t, err)

	v, err := obj.GetInt("a")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestGetStringErrors(t *testing.T) {
	obj, err := Decode([]byte(`{"num":5}`))
	require.NoError(t, err)

	_, err = obj.GetString("missing")
	assert.Error(t, err)

	_, err = obj.GetString("num")
	assert.Error(t, err)
}

func TestGetIntErrors(t *testing.T) {
	obj, err := Decode([]byte(`{"str":"x","frac":1.5}`))
	require.NoError(t, err)

	_, err = obj.GetInt("missing")
	assert.Error(t, err)

	_, err = obj.GetInt("str")
	assert.Error(t, err)

	_, err = obj.GetInt("frac")
	assert.Error(t, err)
}

func TestGetBool(t *testing.T) {
	obj, err := Decode([]byte(`{"flag":true,"str":"x"}`))
	require.NoError(t, err)

	v, ok, err := obj.GetBool("flag")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, v)

	_, ok, err = obj.GetBool("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = obj.GetBool("str")
	assert.Error(t, err)
}

func TestGetUnsignedLong(t *testing.T) {
	obj, err := Decode([]byte(`{"id":"18446744073709551615","num":42,"neg":"-1","word":"abc"}`))
	require.NoError(t, err)

	id, err := obj.GetUnsignedLong("id")
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), id)

	num, err := obj.GetUnsignedLong("num")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), num)

	_, err = obj.GetUnsignedLong("neg")
	assert.Error(t, err)

	_, err = obj.GetUnsignedLong("word")
	assert.Error(t, err)

	_, err = obj.GetUnsignedLong("missing")
	assert.Error(t, err)
}

func TestOptArray(t *testing.T) {
	obj, err := Decode([]byte(`{"options":[{"a":1}],"bad":"x"}`))
	require.NoError(t, err)

	arr, err := obj.OptArray("options")
	require.NoError(t, err)
	assert.Len(t, arr, 1)

	arr, err = obj.OptArray("missing")
	require.NoError(t, err)
	assert.Nil(t, arr)

	_, err = obj.OptArray("bad")
	assert.Error(t, err)
}

func TestNumbersDecodeAsJSONNumber(t *testing.T) {
	obj, err := Decode([]byte(`{"value":5}`))
	require.NoError(t, err)

	v, ok := obj.Get("value")
	require.True(t, ok)
	assert.IsType(t, json.Number(""), v)
}
