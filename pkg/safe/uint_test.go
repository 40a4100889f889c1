package safe

import (
	"math"
	"testing"
)

func TestUint32(t *testing.T) {
	tests := []struct {
		name    string
		got     func() (uint32, error)
		want    uint32
		wantErr bool
	}{
		{name: "int within range", got: func() (uint32, error) { return Uint32(42) }, want: 42},
		{name: "int negative", got: func() (uint32, error) { return Uint32(-1) }, wantErr: true},
		{name: "int64 overflow", got: func() (uint32, error) { return Uint32(int64(math.MaxUint32) + 1) }, wantErr: true},
		{name: "int64 boundary ok", got: func() (uint32, error) { return Uint32(int64(math.MaxUint32)) }, want: math.MaxUint32},
		{name: "uint64 overflow", got: func() (uint32, error) { return Uint32(uint64(math.MaxUint32) + 1) }, wantErr: true},
		{name: "uint32 max", got: func() (uint32, error) { return Uint32(uint32(math.MaxUint32)) }, want: math.MaxUint32},
		{name: "int8 negative", got: func() (uint32, error) { return Uint32(int8(-5)) }, wantErr: true},
		{name: "zero", got: func() (uint32, error) { return Uint32(int64(0)) }, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if (err != nil) != tt.wantErr {
				t.Errorf("Uint32() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Uint32() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUint64(t *testing.T) {
	tests := []struct {
		name    string
		got     func() (uint64, error)
		want    uint64
		wantErr bool
	}{
		{name: "int positive", got: func() (uint64, error) { return Uint64(10) }, want: 10},
		{name: "int negative", got: func() (uint64, error) { return Uint64(-10) }, wantErr: true},
		{name: "int64 max", got: func() (uint64, error) { return Uint64(int64(math.MaxInt64)) }, want: math.MaxInt64},
		{name: "uint64 max", got: func() (uint64, error) { return Uint64(uint64(math.MaxUint64)) }, want: math.MaxUint64},
		{name: "int32 negative", got: func() (uint64, error) { return Uint64(int32(-1)) }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if (err != nil) != tt.wantErr {
				t.Errorf("Uint64() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Uint64() got = %v, want %v", got, tt.want)
			}
		})
	}
}
