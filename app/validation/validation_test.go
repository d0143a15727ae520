package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payloadFrom(t *testing.T, raw string) Payload {
	t.Helper()
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func TestRequire(t *testing.T) {
	p := payloadFrom(t, `{"name": "Ann", "empty": "", "blank": "   ", "null": null, "zero": 0}`)

	assert.NoError(t, p.Require("name"))
	assert.NoError(t, p.Require("zero"))

	for _, field := range []string{"empty", "blank", "null", "missing"} {
		err := p.Require(field)
		require.Error(t, err, field)
		fieldErr, ok := err.(*FieldError)
		require.True(t, ok)
		assert.Equal(t, field, fieldErr.Field)
	}
}

func TestRequireAllReportsFirstMissing(t *testing.T) {
	p := payloadFrom(t, `{"name": "Ann"}`)

	err := p.RequireAll("name", "type", "salary")
	require.Error(t, err)
	assert.Equal(t, "type", err.(*FieldError).Field)
}

func TestFloatCoercion(t *testing.T) {
	p := payloadFrom(t, `{"n": 12.5, "s": "99.25", "pad": " 7 ", "bad": "abc", "obj": {}}`)

	v, err := p.Float("n")
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)

	v, err = p.Float("s")
	require.NoError(t, err)
	assert.Equal(t, 99.25, v)

	v, err = p.Float("pad")
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	for _, field := range []string{"bad", "obj"} {
		_, err = p.Float(field)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not numeric")
	}
}

func TestFloatOr(t *testing.T) {
	p := payloadFrom(t, `{"bonus": 100, "null": null}`)

	v, err := p.FloatOr("bonus", 0)
	require.NoError(t, err)
	assert.Equal(t, 100.0, v)

	v, err = p.FloatOr("missing", 42)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	v, err = p.FloatOr("null", 9)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
}

func TestInt(t *testing.T) {
	p := payloadFrom(t, `{"id": 5, "s": "17", "frac": 2.5}`)

	n, err := p.Int("id")
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	n, err = p.Int("s")
	require.NoError(t, err)
	assert.Equal(t, int64(17), n)

	_, err = p.Int("frac")
	require.Error(t, err)
}

func TestIntPtr(t *testing.T) {
	p := payloadFrom(t, `{"project_id": 3, "null": null}`)

	ptr, err := p.IntPtr("project_id")
	require.NoError(t, err)
	require.NotNil(t, ptr)
	assert.Equal(t, int64(3), *ptr)

	ptr, err = p.IntPtr("null")
	require.NoError(t, err)
	assert.Nil(t, ptr)

	ptr, err = p.IntPtr("missing")
	require.NoError(t, err)
	assert.Nil(t, ptr)
}

func TestStringPtr(t *testing.T) {
	p := payloadFrom(t, `{"notes": "hi", "null": null, "num": 4}`)

	ptr, err := p.StringPtr("notes")
	require.NoError(t, err)
	require.NotNil(t, ptr)
	assert.Equal(t, "hi", *ptr)

	ptr, err = p.StringPtr("null")
	require.NoError(t, err)
	assert.Nil(t, ptr)

	_, err = p.StringPtr("num")
	require.Error(t, err)
}

func TestOneOf(t *testing.T) {
	p := payloadFrom(t, `{"status": "paid", "bad": "shipped"}`)
	allowed := []string{"pending", "approved", "paid", "cancelled"}

	s, err := p.OneOf("status", allowed)
	require.NoError(t, err)
	assert.Equal(t, "paid", s)

	_, err = p.OneOf("bad", allowed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestHasDistinguishesNullFromMissing(t *testing.T) {
	p := payloadFrom(t, `{"null": null}`)

	assert.True(t, p.Has("null"))
	assert.False(t, p.Has("missing"))
}
