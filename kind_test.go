package anynum

import (
	"testing"

	"github.com/shabbyrobe/go-num"
	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	want := []Kind{
		Int8, Int16, Int32, Int64, Int128,
		Uint8, Uint16, Uint32, Uint64, Uint128,
		Float32, Float64,
	}
	assert.Equal(t, want, Kinds())
	assert.Equal(t, Int8, Kind(0))
}

func TestKindProperties(t *testing.T) {
	tests := []struct {
		kind    Kind
		name    string
		bits    int
		integer bool
		signed  bool
	}{
		{kind: Int8, name: "int8", bits: 8, integer: true, signed: true},
		{kind: Int16, name: "int16", bits: 16, integer: true, signed: true},
		{kind: Int32, name: "int32", bits: 32, integer: true, signed: true},
		{kind: Int64, name: "int64", bits: 64, integer: true, signed: true},
		{kind: Int128, name: "int128", bits: 128, integer: true, signed: true},
		{kind: Uint8, name: "uint8", bits: 8, integer: true},
		{kind: Uint16, name: "uint16", bits: 16, integer: true},
		{kind: Uint32, name: "uint32", bits: 32, integer: true},
		{kind: Uint64, name: "uint64", bits: 64, integer: true},
		{kind: Uint128, name: "uint128", bits: 128, integer: true},
		{kind: Float32, name: "float32", bits: 32, signed: true},
		{kind: Float64, name: "float64", bits: 64, signed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.kind.Valid())
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.bits, tt.kind.Bits())
			assert.Equal(t, tt.integer, tt.kind.Integer())
			assert.Equal(t, !tt.integer, tt.kind.Float())
			assert.Equal(t, tt.signed, tt.kind.Signed())
		})
	}
}

func TestInvalidKind(t *testing.T) {
	k := Kind(12)

	assert.False(t, k.Valid())
	assert.Equal(t, "Kind(12)", k.String())
	assert.Zero(t, k.Bits())
	assert.False(t, k.Integer())
	assert.False(t, k.Float())
}

func TestKindOf(t *testing.T) {
	got := []Kind{
		KindOf[int8](),
		KindOf[int16](),
		KindOf[int32](),
		KindOf[int64](),
		KindOf[num.I128](),
		KindOf[uint8](),
		KindOf[uint16](),
		KindOf[uint32](),
		KindOf[uint64](),
		KindOf[num.U128](),
		KindOf[float32](),
		KindOf[float64](),
	}
	assert.Equal(t, Kinds(), got)
}
