package jsondot_test

import (
	"encoding/json"
	"testing"

	"github.com/jsondot/jsondot"
	"github.com/stretchr/testify/require"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte(`{}`))
	f.Add([]byte(`[]`))
	f.Add([]byte(`null`))
	f.Add([]byte(`"a simple string"`))
	f.Add([]byte(`12345`))
	f.Add([]byte(`true`))
	f.Add([]byte(`{"apps":{"browsers":{"chrome":1}}}`))
	f.Add([]byte(`[1,2.5,"x",{"k":[null]}]`))
	f.Add([]byte(`{"a.b":1,"":2}`))

	f.Fuzz(func(t *testing.T, data []byte) {
		d, err := jsondot.New(data)
		if err != nil {
			// Not well-formed JSON; nothing to round-trip.
			return
		}

		out, err := d.JSON()
		require.NoError(t, err)
		require.True(t, json.Valid(out), "re-serialized document is not valid JSON: %q", out)

		// Serialization must be a fixed point of the canonical form.
		d2, err := jsondot.New(out)
		require.NoError(t, err)
		out2, err := d2.JSON()
		require.NoError(t, err)
		require.Equal(t, string(out), string(out2))
	})
}

func FuzzSetGet(f *testing.F) {
	f.Add("a.b.c", "value")
	f.Add(`a\.b`, "escaped")
	f.Add("", "empty key")
	f.Add("x..y", "empty middle key")

	f.Fuzz(func(t *testing.T, path, value string) {
		d, err := jsondot.New(`{}`)
		require.NoError(t, err)

		if err := d.Set(path, value); err != nil {
			return
		}
		got, ok := d.Lookup(path)
		require.True(t, ok, "set succeeded but path %q not present", path)
		require.Equal(t, value, got)
	})
}
