package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRoundTrip(t *testing.T) {
	before := Pending()

	h1, k1 := put("first")
	h2, k2 := put("second")
	require.NotEqual(t, k1, k2)
	assert.Equal(t, before+2, Pending())

	v, ok := get(h1)
	require.True(t, ok)
	assert.Equal(t, "first", v)

	del(h1)
	_, ok = get(h1)
	assert.False(t, ok)

	v, ok = get(handle(k2))
	require.True(t, ok)
	assert.Equal(t, "second", v)

	del(h2)
	assert.Equal(t, before, Pending())
}

func TestRegistryZeroHandle(t *testing.T) {
	_, ok := get(0)
	assert.False(t, ok)
}

func TestReverse(t *testing.T) {
	cases := []struct {
		in   []byte
		want []byte
	}{
		{nil, nil},
		{[]byte{}, []byte{}},
		{[]byte{7}, []byte{7}},
		{[]byte{1, 2}, []byte{2, 1}},
		{[]byte{1, 2, 3}, []byte{3, 2, 1}},
		{[]byte("abcdef"), []byte("fedcba")},
	}
	for _, tc := range cases {
		buf := append([]byte(nil), tc.in...)
		Reverse(buf)
		assert.Equal(t, len(tc.want), len(buf))
		if len(tc.want) > 0 {
			assert.Equal(t, tc.want, buf)
		}
	}
}
