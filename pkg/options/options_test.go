package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputfilter/pkg/options"
)

func TestOptions_Int(t *testing.T) {
	t.Run("returns default when absent", func(t *testing.T) {
		v, err := options.Options{}.Int("min", 7)
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("accepts native int", func(t *testing.T) {
		v, err := options.Options{"min": 3}.Int("min", 0)
		require.NoError(t, err)
		assert.Equal(t, 3, v)
	})

	t.Run("accepts integral float from json", func(t *testing.T) {
		v, err := options.Options{"min": 6.0}.Int("min", 0)
		require.NoError(t, err)
		assert.Equal(t, 6, v)
	})

	t.Run("rejects fractional float", func(t *testing.T) {
		_, err := options.Options{"min": 6.5}.Int("min", 0)
		assert.ErrorIs(t, err, options.ErrInvalidOption)
	})

	t.Run("casts numeric string", func(t *testing.T) {
		v, err := options.Options{"min": " 12 "}.Int("min", 0)
		require.NoError(t, err)
		assert.Equal(t, 12, v)
	})

	t.Run("rejects non numeric string", func(t *testing.T) {
		_, err := options.Options{"min": "abc"}.Int("min", 0)
		assert.ErrorIs(t, err, options.ErrInvalidOption)
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		_, err := options.Options{"min": []int{1}}.Int("min", 0)
		assert.ErrorIs(t, err, options.ErrInvalidOption)
	})
}

func TestOptions_Bool(t *testing.T) {
	v, err := options.Options{"strict": "true"}.Bool("strict", false)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = options.Options{}.Bool("strict", true)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestOptions_Float(t *testing.T) {
	v, err := options.Options{"max": 10}.Float("max", 0)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, v, 0.0001)
}

func TestOptions_String(t *testing.T) {
	v, err := options.Options{"pattern": "^a$"}.String("pattern", "")
	require.NoError(t, err)
	assert.Equal(t, "^a$", v)

	v, err = options.Options{"layout": 2006}.String("layout", "")
	require.NoError(t, err)
	assert.Equal(t, "2006", v)

	_, err = options.Options{"pattern": map[string]any{}}.String("pattern", "")
	assert.ErrorIs(t, err, options.ErrInvalidOption)
}

func TestOptions_Strings(t *testing.T) {
	t.Run("single string", func(t *testing.T) {
		v, err := options.Options{"ext": "png"}.Strings("ext")
		require.NoError(t, err)
		assert.Equal(t, []string{"png"}, v)
	})

	t.Run("decoded list", func(t *testing.T) {
		v, err := options.Options{"ext": []any{"png", "jpg"}}.Strings("ext")
		require.NoError(t, err)
		assert.Equal(t, []string{"png", "jpg"}, v)
	})

	t.Run("nil element", func(t *testing.T) {
		_, err := options.Options{"ext": []any{"png", nil}}.Strings("ext")
		assert.ErrorIs(t, err, options.ErrInvalidOption)
	})
}

func TestOptions_Values(t *testing.T) {
	v, err := options.Options{"haystack": []int{1, 2}}.Values("haystack")
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, v)

	_, err = options.Options{"haystack": 1}.Values("haystack")
	assert.ErrorIs(t, err, options.ErrInvalidOption)
}

func TestOptions_Clone(t *testing.T) {
	orig := options.Options{"a": 1}
	cp := orig.Clone()
	cp["a"] = 2
	assert.Equal(t, 1, orig["a"])
	assert.True(t, cp.Has("a"))
	assert.False(t, options.Options(nil).Has("a"))
}
