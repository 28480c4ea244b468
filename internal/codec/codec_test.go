package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	e := NewEncoder(DiscRaffle)
	e.PutU8(7)
	e.PutU64(1_000_000)
	e.PutI64(-42)
	e.PutFixed([]byte("0123456789abcdef0123456789abcdef"))
	e.PutString("https://example.com/raffle.json")
	ticketCap := uint64(500)
	e.PutOptionU64(&ticketCap)
	e.PutOptionU64(nil)
	e.PutOptionFixed([]byte("thirty-two-byte-value-padded!!!!"))
	e.PutOptionFixed(nil)

	d, err := NewDecoder(e.Bytes(), DiscRaffle)
	require.NoError(t, err)
	require.Equal(t, uint8(7), d.U8())
	require.Equal(t, uint64(1_000_000), d.U64())
	require.Equal(t, int64(-42), d.I64())
	require.Equal(t, []byte("0123456789abcdef0123456789abcdef"), d.Fixed(32))
	require.Equal(t, "https://example.com/raffle.json", d.String())
	require.Equal(t, &ticketCap, d.OptionU64())
	require.Nil(t, d.OptionU64())
	require.Equal(t, []byte("thirty-two-byte-value-padded!!!!"), d.OptionFixed(32))
	require.Nil(t, d.OptionFixed(32))
	require.NoError(t, d.Finish())
}

func TestDecoderDiscriminatorMismatch(t *testing.T) {
	e := NewEncoder(DiscConfig)
	e.PutU64(1)

	_, err := NewDecoder(e.Bytes(), DiscRaffle)
	require.Error(t, err)
	var mismatch *DiscriminatorMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, DiscRaffle, mismatch.Want)
	require.Equal(t, DiscConfig, mismatch.Got)
}

func TestDecoderShortBufferAndTrailingBytes(t *testing.T) {
	_, err := NewDecoder([]byte{1, 2, 3}, 0)
	require.ErrorIs(t, err, ErrShortBuffer)

	e := NewEncoder(DiscConfig)
	e.PutU64(1)
	e.PutU64(2)

	d, err := NewDecoder(e.Bytes(), DiscConfig)
	require.NoError(t, err)
	d.U64()
	require.ErrorIs(t, d.Finish(), ErrTrailingBytes)
}

func TestRawDecoderSkipsDiscriminatorCheck(t *testing.T) {
	d := NewRawDecoder([]byte{0xAB})
	require.Equal(t, uint8(0xAB), d.U8())
	require.NoError(t, d.Finish())
}
