package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordPresent(t *testing.T) {
	rec := Record{
		"name":      "Jane Doe",
		"empty":     "",
		"nilval":    nil,
		"zero_str":  "0",
		"zero_num":  float64(0),
		"reading":   float64(42.5),
		"flag_on":   true,
		"flag_off":  false,
		"int_value": int64(7),
	}

	assert.True(t, rec.Present("name"))
	assert.False(t, rec.Present("empty"), "empty string is absent")
	assert.False(t, rec.Present("nilval"))
	assert.False(t, rec.Present("missing"))
	assert.True(t, rec.Present("zero_str"), `"0" is a meaningful reading`)
	assert.True(t, rec.Present("zero_num"), "numeric zero is a meaningful reading")
	assert.True(t, rec.Present("reading"))
	assert.True(t, rec.Present("flag_on"))
	assert.False(t, rec.Present("flag_off"), "unchecked toggle is absent")
	assert.True(t, rec.Present("int_value"))
}

func TestRecordAnyPresent(t *testing.T) {
	rec := Record{"a": "", "b": nil, "c": "x"}
	assert.True(t, rec.AnyPresent("a", "b", "c"))
	assert.False(t, rec.AnyPresent("a", "b"))
	assert.False(t, rec.AnyPresent())
}

func TestRecordStr(t *testing.T) {
	rec := Record{
		"text":    "hello",
		"num":     float64(230),
		"decimal": float64(0.5),
		"zero":    "0",
		"empty":   "",
		"big":     int64(12345),
	}

	assert.Equal(t, "hello", rec.Str("text"))
	assert.Equal(t, "230", rec.Str("num"), "whole floats render without decimals")
	assert.Equal(t, "0.5", rec.Str("decimal"))
	assert.Equal(t, "0", rec.Str("zero"))
	assert.Equal(t, "", rec.Str("empty"))
	assert.Equal(t, "", rec.Str("missing"))
	assert.Equal(t, "12345", rec.Str("big"))
}

func TestRecordTruthy(t *testing.T) {
	rec := Record{
		"b_true":  true,
		"b_false": false,
		"n_one":   float64(1),
		"n_zero":  float64(0),
		"s_one":   "1",
		"s_zero":  "0",
		"s_empty": "",
		"i_one":   int64(1),
	}

	assert.True(t, rec.Truthy("b_true"))
	assert.False(t, rec.Truthy("b_false"))
	assert.True(t, rec.Truthy("n_one"))
	assert.False(t, rec.Truthy("n_zero"))
	assert.True(t, rec.Truthy("s_one"))
	assert.False(t, rec.Truthy("s_zero"))
	assert.False(t, rec.Truthy("s_empty"))
	assert.True(t, rec.Truthy("i_one"))
	assert.False(t, rec.Truthy("missing"))
}

func TestRecordAdditionalPhotos(t *testing.T) {
	rec := Record{"photo_additional": `["a.jpg","b.jpg","c.png"]`}
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.png"}, rec.AdditionalPhotos())

	assert.Nil(t, Record{}.AdditionalPhotos())
	assert.Nil(t, Record{"photo_additional": "not json"}.AdditionalPhotos())
	assert.Nil(t, Record{"photo_additional": ""}.AdditionalPhotos())
}
