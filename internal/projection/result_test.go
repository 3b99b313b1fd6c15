package projection

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	t.Run("keeps insertion order", func(t *testing.T) {
		r := NewResult()
		r.Set("b", 1)
		r.Set("a", 2)
		r.Set("c", nil)
		r.Set("b", 3)

		assert.Equal(t, []string{"b", "a", "c"}, r.Keys())
		v, ok := r.Get("b")
		assert.True(t, ok)
		assert.Equal(t, 3, v)
		assert.True(t, r.Has("c"))
	})

	t.Run("marshals in order", func(t *testing.T) {
		r := NewResult()
		r.Set("z", "last?")
		r.Set("a", []string{"x"})
		r.Set("m", nil)

		data, err := json.Marshal(r)
		require.NoError(t, err)
		assert.Equal(t, `{"z":"last?","a":["x"],"m":null}`, string(data))
	})

	t.Run("nested results", func(t *testing.T) {
		inner := NewResult()
		inner.Set("k", true)
		outer := NewResult()
		outer.Set("inner", inner)
		outer.Set("list", []*Result{inner})

		data, err := json.Marshal(outer)
		require.NoError(t, err)
		assert.Equal(t, `{"inner":{"k":true},"list":[{"k":true}]}`, string(data))
	})

	t.Run("empty", func(t *testing.T) {
		data, err := json.Marshal(NewResult())
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
	})
}
