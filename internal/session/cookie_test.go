package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieCodec_RoundTrip(t *testing.T) {
	codec := NewCookieCodec("0123456789abcdef0123456789abcdef")

	value, err := codec.Sign("s_abc", time.Hour)
	require.NoError(t, err)

	id, err := codec.Parse(value)
	require.NoError(t, err)
	assert.Equal(t, "s_abc", id)
}

func TestCookieCodec_RejectsWrongSecret(t *testing.T) {
	signer := NewCookieCodec("0123456789abcdef0123456789abcdef")
	verifier := NewCookieCodec("another-secret-another-secret-xx")

	value, err := signer.Sign("s_abc", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Parse(value)
	assert.Error(t, err)
}

func TestCookieCodec_RejectsExpired(t *testing.T) {
	codec := NewCookieCodec("0123456789abcdef0123456789abcdef")

	value, err := codec.Sign("s_abc", -time.Minute)
	require.NoError(t, err)

	_, err = codec.Parse(value)
	assert.Error(t, err)
}

func TestCookieCodec_RejectsGarbage(t *testing.T) {
	codec := NewCookieCodec("0123456789abcdef0123456789abcdef")

	for _, v := range []string{"", "garbage", "a.b.c"} {
		_, err := codec.Parse(v)
		assert.Error(t, err, "value=%q", v)
	}
}
