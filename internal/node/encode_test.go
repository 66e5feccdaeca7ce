package node_test

import (
	"math"
	"testing"

	"github.com/jsondot/jsondot/internal/node"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *node.Node {
	t.Helper()
	n, err := node.Parse([]byte(src))
	require.NoError(t, err)
	return n
}

func TestEncode(t *testing.T) {
	t.Run("round-trips preserve key order", func(t *testing.T) {
		src := `{"zebra":1,"apple":[true,null,"x"],"mango":{"inner":2.5}}`
		out, err := node.Encode(mustParse(t, src), node.EncodeOptions{})
		require.NoError(t, err)
		require.Equal(t, src, string(out))
	})

	t.Run("empty object and empty array keep their shapes", func(t *testing.T) {
		src := `{"obj":{},"arr":[]}`
		out, err := node.Encode(mustParse(t, src), node.EncodeOptions{})
		require.NoError(t, err)
		require.Equal(t, src, string(out))
	})

	t.Run("objects with dense integer keys stay objects", func(t *testing.T) {
		src := `{"0":"a","1":"b"}`
		out, err := node.Encode(mustParse(t, src), node.EncodeOptions{})
		require.NoError(t, err)
		require.Equal(t, src, string(out))
	})

	t.Run("dense containers emit as arrays", func(t *testing.T) {
		n := node.NewContainer()
		n.Append(mustParse(t, `1`))
		n.Append(mustParse(t, `2`))
		out, err := node.Encode(n, node.EncodeOptions{})
		require.NoError(t, err)
		require.Equal(t, `[1,2]`, string(out))
	})

	t.Run("sparse integer keys emit as objects", func(t *testing.T) {
		n := node.NewContainer()
		n.Set("0", mustParse(t, `1`))
		n.Set("2", mustParse(t, `2`))
		out, err := node.Encode(n, node.EncodeOptions{})
		require.NoError(t, err)
		require.Equal(t, `{"0":1,"2":2}`, string(out))
	})

	t.Run("pretty printing", func(t *testing.T) {
		out, err := node.Encode(mustParse(t, `{"a":1}`), node.EncodeOptions{Indent: "  "})
		require.NoError(t, err)
		require.Equal(t, "{\n  \"a\": 1\n}", string(out))
	})

	t.Run("html escaping on", func(t *testing.T) {
		out, err := node.Encode(mustParse(t, `{"a":"<b>"}`), node.EncodeOptions{EscapeHTML: true})
		require.NoError(t, err)
		require.Equal(t, `{"a":"\u003cb\u003e"}`, string(out))
	})

	t.Run("html escaping off", func(t *testing.T) {
		out, err := node.Encode(mustParse(t, `{"a":"<b>"}`), node.EncodeOptions{})
		require.NoError(t, err)
		require.Equal(t, `{"a":"<b>"}`, string(out))
	})

	t.Run("unrepresentable numbers fail", func(t *testing.T) {
		n, err := node.FromGo(math.NaN())
		require.NoError(t, err)
		_, err = node.Encode(n, node.EncodeOptions{})
		require.ErrorIs(t, err, node.ErrInvalidInput)
	})

	t.Run("empty containers", func(t *testing.T) {
		out, err := node.Encode(node.NewContainer(), node.EncodeOptions{})
		require.NoError(t, err)
		// An empty container is trivially dense.
		require.Equal(t, `[]`, string(out))
	})
}
