package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputfilter/pkg/filter"
	"github.com/dmitrymomot/inputfilter/pkg/options"
)

func TestRegistry(t *testing.T) {
	r := filter.NewRegistry()

	t.Run("every builtin resolves with defaults", func(t *testing.T) {
		for _, name := range r.Names() {
			_, err := r.Resolve(name, nil)
			assert.NoError(t, err, name)
		}
	})

	t.Run("options are applied", func(t *testing.T) {
		f, err := r.Resolve("string_trim", options.Options{"charlist": "#"})
		require.NoError(t, err)
		assert.Equal(t, "tag", f.Filter("##tag#"))

		f, err = r.Resolve("alpha", options.Options{"allow_white_space": "true"})
		require.NoError(t, err)
		assert.Equal(t, "a b", f.Filter("a1 b"))
	})

	t.Run("bad options", func(t *testing.T) {
		_, err := r.Resolve("normalize_unicode", options.Options{"form": "bogus"})
		assert.ErrorIs(t, err, filter.ErrInvalidConfig)

		_, err = r.Resolve("alnum", options.Options{"allow_white_space": "maybe"})
		assert.ErrorIs(t, err, options.ErrInvalidOption)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := r.Resolve("nope", nil)
		assert.ErrorIs(t, err, filter.ErrUnknownFilter)
	})

	t.Run("custom registration", func(t *testing.T) {
		custom := &filter.Registry{}
		custom.Register("Reverse", func(options.Options) (filter.Filter, error) {
			return filter.String(func(s string) string {
				r := []rune(s)
				for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
					r[i], r[j] = r[j], r[i]
				}
				return string(r)
			}), nil
		})
		assert.True(t, custom.Has("reverse"))
		f, err := custom.Resolve("reverse", nil)
		require.NoError(t, err)
		assert.Equal(t, "cba", f.Filter("abc"))
	})
}
