package jsondot_test

import (
	"testing"

	"github.com/jsondot/jsondot"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, d *jsondot.Document, shape jsondot.Shape, path ...string) ([]string, []any) {
	t.Helper()
	seq, err := d.Iterate(shape, path...)
	require.NoError(t, err)
	var keys []string
	var values []any
	for k, v := range seq {
		keys = append(keys, k)
		values = append(values, v)
	}
	return keys, values
}

func TestIterate(t *testing.T) {
	d := mustNew(t, `{"apps":{"browsers":{"chrome":1,"firefox":2}}}`)

	t.Run("yields pairs in insertion order", func(t *testing.T) {
		keys, values := collect(t, d, jsondot.ShapeValue, "apps.browsers")
		require.Equal(t, []string{"chrome", "firefox"}, keys)
		require.Equal(t, []any{int64(1), int64(2)}, values)
	})

	t.Run("root iteration", func(t *testing.T) {
		keys, _ := collect(t, d, jsondot.ShapeValue)
		require.Equal(t, []string{"apps"}, keys)
	})

	t.Run("non-container target fails before yielding", func(t *testing.T) {
		_, err := d.Iterate(jsondot.ShapeValue, "apps.browsers.chrome")
		require.ErrorIs(t, err, jsondot.ErrNotContainer)

		_, err = d.Iterate(jsondot.ShapeValue, "missing")
		require.ErrorIs(t, err, jsondot.ErrNotContainer)
	})

	t.Run("unknown shape fails", func(t *testing.T) {
		_, err := d.Iterate(jsondot.Shape(42), "apps")
		require.ErrorIs(t, err, jsondot.ErrInvalidInput)
	})

	t.Run("early break stops the sequence", func(t *testing.T) {
		seq, err := d.Iterate(jsondot.ShapeValue, "apps.browsers")
		require.NoError(t, err)
		var seen int
		for range seq {
			seen++
			break
		}
		require.Equal(t, 1, seen)
	})

	t.Run("a fresh sequence reflects current state", func(t *testing.T) {
		e := mustNew(t, `{"a":1}`)
		seq, err := e.Iterate(jsondot.ShapeValue)
		require.NoError(t, err)
		for range seq {
		}

		require.NoError(t, e.Set("b", 2))
		keys, _ := collect(t, e, jsondot.ShapeValue)
		require.Equal(t, []string{"a", "b"}, keys)
	})
}

func TestIterate_Shapes(t *testing.T) {
	d := mustNew(t, `{"obj":{"k":1},"arr":[1,2],"n":5}`)

	t.Run("scalars pass through in every shape", func(t *testing.T) {
		for _, shape := range []jsondot.Shape{jsondot.ShapeJSON, jsondot.ShapeValue, jsondot.ShapeMap, jsondot.ShapeFullMap} {
			seq, err := d.Iterate(shape)
			require.NoError(t, err)
			for k, v := range seq {
				if k == "n" {
					require.Equal(t, int64(5), v)
				}
			}
		}
	})

	t.Run("ShapeJSON renders containers as JSON text", func(t *testing.T) {
		keys, values := collect(t, d, jsondot.ShapeJSON)
		require.Equal(t, []string{"obj", "arr", "n"}, keys)
		require.Equal(t, `{"k":1}`, values[0])
		require.Equal(t, `[1,2]`, values[1])
	})

	t.Run("ShapeValue renders dense containers as slices", func(t *testing.T) {
		_, values := collect(t, d, jsondot.ShapeValue)
		require.Equal(t, map[string]any{"k": int64(1)}, values[0])
		require.Equal(t, []any{int64(1), int64(2)}, values[1])
	})

	t.Run("ShapeMap forces the child's top level to a map", func(t *testing.T) {
		_, values := collect(t, d, jsondot.ShapeMap)
		require.Equal(t, map[string]any{"0": int64(1), "1": int64(2)}, values[1])
	})

	t.Run("ShapeFullMap forces every container to a map", func(t *testing.T) {
		e := mustNew(t, `{"outer":{"inner":[1]}}`)
		_, values := collect(t, e, jsondot.ShapeFullMap)
		require.Equal(t, map[string]any{"inner": map[string]any{"0": int64(1)}}, values[0])
	})
}
