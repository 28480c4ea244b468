// Package codec implements the length-prefixed little-endian binary layout
// used to persist every raffle account record: an 8-byte discriminator
// followed by fields in declaration order, with u32-length-prefixed
// variable-width fields and a one-byte tag for optional fields.
//
// Every persisted kind has one field order, fixed at compile time, so
// there is no field-code indirection to get wrong.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Discriminator identifies the kind of record encoded in an account's bytes.
// It is always the first 8 bytes on the wire.
type Discriminator uint64

const (
	DiscConfig        Discriminator = 1
	DiscRaffle        Discriminator = 2
	DiscTreasury      Discriminator = 3
	DiscTicketBalance Discriminator = 4
	DiscEntry         Discriminator = 5
	DiscWinnerData    Discriminator = 6
)

var ErrShortBuffer = errors.New("codec: buffer too short")
var ErrTrailingBytes = errors.New("codec: trailing bytes after decode")

// DiscriminatorMismatchError is returned when decoded bytes carry a
// discriminator other than the one the caller expected.
type DiscriminatorMismatchError struct {
	Want Discriminator
	Got  Discriminator
}

func (e *DiscriminatorMismatchError) Error() string {
	return fmt.Sprintf("codec: discriminator mismatch: want %d, got %d", e.Want, e.Got)
}

// Encoder appends fields to an in-progress byte buffer in declaration order.
type Encoder struct {
	buf []byte
}

// NewEncoder starts a new encoder, writing the record's discriminator first.
func NewEncoder(disc Discriminator) *Encoder {
	e := &Encoder{buf: make([]byte, 0, 64)}
	var d [8]byte
	binary.LittleEndian.PutUint64(d[:], uint64(disc))
	e.buf = append(e.buf, d[:]...)
	return e
}

func (e *Encoder) PutU8(v uint8) *Encoder {
	e.buf = append(e.buf, v)
	return e
}

func (e *Encoder) PutU64(v uint64) *Encoder {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.buf = append(e.buf, b[:]...)
	return e
}

func (e *Encoder) PutI64(v int64) *Encoder {
	return e.PutU64(uint64(v))
}

// PutFixed appends a fixed-width byte array as-is (e.g. a 32-byte key).
func (e *Encoder) PutFixed(v []byte) *Encoder {
	e.buf = append(e.buf, v...)
	return e
}

// PutBytes appends a u32-length-prefixed byte slice.
func (e *Encoder) PutBytes(v []byte) *Encoder {
	var l [4]byte
	binary.LittleEndian.PutUint32(l[:], uint32(len(v)))
	e.buf = append(e.buf, l[:]...)
	e.buf = append(e.buf, v...)
	return e
}

// PutString appends a u32-length-prefixed UTF-8 string.
func (e *Encoder) PutString(v string) *Encoder {
	return e.PutBytes([]byte(v))
}

// PutOptionU64 appends a one-byte presence tag followed by the value if present.
func (e *Encoder) PutOptionU64(v *uint64) *Encoder {
	if v == nil {
		e.buf = append(e.buf, 0)
		return e
	}
	e.buf = append(e.buf, 1)
	return e.PutU64(*v)
}

// PutOptionFixed appends a one-byte presence tag followed by the fixed-width
// value if present.
func (e *Encoder) PutOptionFixed(v []byte) *Encoder {
	if v == nil {
		e.buf = append(e.buf, 0)
		return e
	}
	e.buf = append(e.buf, 1)
	return e.PutFixed(v)
}

// Bytes returns the encoded record.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Decoder reads fields off an encoded record in declaration order.
type Decoder struct {
	buf []byte
	off int
	err error
}

// NewDecoder validates the leading discriminator and prepares a decoder for
// the remaining fields. Returns a *DiscriminatorMismatchError if want != 0
// and the record's discriminator does not match.
func NewDecoder(data []byte, want Discriminator) (*Decoder, error) {
	if len(data) < 8 {
		return nil, ErrShortBuffer
	}
	got := Discriminator(binary.LittleEndian.Uint64(data[:8]))
	if want != 0 && got != want {
		return nil, &DiscriminatorMismatchError{Want: want, Got: got}
	}
	return &Decoder{buf: data, off: 8}, nil
}

// NewRawDecoder starts a decoder at offset 0, with no discriminator
// check. Used for instruction argument payloads, which carry their own
// 8-byte instruction-kind discriminator stripped off by the dispatcher
// before the remaining bytes ever reach this decoder.
func NewRawDecoder(data []byte) *Decoder {
	return &Decoder{buf: data, off: 0}
}

func (d *Decoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *Decoder) need(n int) bool {
	if d.err != nil {
		return false
	}
	if len(d.buf)-d.off < n {
		d.fail(ErrShortBuffer)
		return false
	}
	return true
}

func (d *Decoder) U8() uint8 {
	if !d.need(1) {
		return 0
	}
	v := d.buf[d.off]
	d.off++
	return v
}

func (d *Decoder) U64() uint64 {
	if !d.need(8) {
		return 0
	}
	v := binary.LittleEndian.Uint64(d.buf[d.off : d.off+8])
	d.off += 8
	return v
}

func (d *Decoder) I64() int64 {
	return int64(d.U64())
}

// Fixed reads n raw bytes.
func (d *Decoder) Fixed(n int) []byte {
	if !d.need(n) {
		return make([]byte, n)
	}
	v := make([]byte, n)
	copy(v, d.buf[d.off:d.off+n])
	d.off += n
	return v
}

func (d *Decoder) Bytes() []byte {
	if !d.need(4) {
		return nil
	}
	l := binary.LittleEndian.Uint32(d.buf[d.off : d.off+4])
	d.off += 4
	if !d.need(int(l)) {
		return nil
	}
	v := make([]byte, l)
	copy(v, d.buf[d.off:d.off+int(l)])
	d.off += int(l)
	return v
}

func (d *Decoder) String() string {
	return string(d.Bytes())
}

func (d *Decoder) OptionU64() *uint64 {
	tag := d.U8()
	if d.err != nil || tag == 0 {
		return nil
	}
	v := d.U64()
	return &v
}

func (d *Decoder) OptionFixed(n int) []byte {
	tag := d.U8()
	if d.err != nil || tag == 0 {
		return nil
	}
	return d.Fixed(n)
}

// Finish returns the accumulated decode error, or ErrTrailingBytes if bytes
// remain unconsumed and no earlier error occurred.
func (d *Decoder) Finish() error {
	if d.err != nil {
		return d.err
	}
	if d.off != len(d.buf) {
		return ErrTrailingBytes
	}
	return nil
}
