package node_test

import (
	"testing"

	"github.com/jsondot/jsondot/internal/node"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("object preserves key order", func(t *testing.T) {
		n, err := node.Parse([]byte(`{"zebra":1,"apple":2,"mango":3}`))
		require.NoError(t, err)
		require.Equal(t, []string{"zebra", "apple", "mango"}, n.Keys())
	})

	t.Run("array is dense", func(t *testing.T) {
		n, err := node.Parse([]byte(`[10,20,30]`))
		require.NoError(t, err)
		require.True(t, n.IsDense())
		require.Equal(t, 3, n.Len())
	})

	t.Run("integral numbers stay integral", func(t *testing.T) {
		n, err := node.Parse([]byte(`{"i":7,"f":7.5,"big":9007199254740993}`))
		require.NoError(t, err)

		i, _ := n.Child("i")
		require.Equal(t, node.Int, i.Kind())
		require.Equal(t, int64(7), i.ScalarValue())

		f, _ := n.Child("f")
		require.Equal(t, node.Float, f.Kind())

		big, _ := n.Child("big")
		require.Equal(t, int64(9007199254740993), big.ScalarValue())
	})

	t.Run("scalar literals", func(t *testing.T) {
		for _, tt := range []struct {
			src  string
			kind node.Kind
		}{
			{`"text"`, node.String},
			{`true`, node.Bool},
			{`3.25`, node.Float},
			{`null`, node.Null},
		} {
			n, err := node.Parse([]byte(tt.src))
			require.NoError(t, err, tt.src)
			require.Equal(t, tt.kind, n.Kind(), tt.src)
		}
	})

	t.Run("null parses without error", func(t *testing.T) {
		// A failed parse must stay distinguishable from the valid
		// literal null.
		n, err := node.Parse([]byte(`null`))
		require.NoError(t, err)
		require.Equal(t, node.Null, n.Kind())
		require.Nil(t, n.ScalarValue())
	})

	t.Run("malformed input", func(t *testing.T) {
		for _, src := range []string{``, `{`, `{"a":}`, `[1,]`, `tru`, `"unterminated`} {
			_, err := node.Parse([]byte(src))
			require.ErrorIs(t, err, node.ErrMalformedDocument, "source: %q", src)
		}
	})

	t.Run("trailing data is malformed", func(t *testing.T) {
		_, err := node.Parse([]byte(`{} {}`))
		require.ErrorIs(t, err, node.ErrMalformedDocument)
	})

	t.Run("later duplicate keys win", func(t *testing.T) {
		n, err := node.Parse([]byte(`{"a":1,"a":2}`))
		require.NoError(t, err)
		require.Equal(t, 1, n.Len())
		a, _ := n.Child("a")
		require.Equal(t, int64(2), a.ScalarValue())
	})
}
