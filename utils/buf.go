package utils

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"
)

type OutputBuf struct {
	buf []byte
}

type SimpleField interface {
	SerializedLen() int
	ToBigInt(c constraint.Element) *big.Int
	FromInterface(i interface{}) constraint.Element
}

func (o *OutputBuf) AppendBigInt(n int, x *big.Int) {
	zbuf := make([]byte, n)
	b := x.Bytes()
	for i := 0; i < len(b); i++ {
		zbuf[i] = b[len(b)-i-1]
	}
	o.buf = append(o.buf, zbuf...)
}

func (o *OutputBuf) AppendFieldElement(field SimpleField, x constraint.Element) {
	o.AppendBigInt(field.SerializedLen(), field.ToBigInt(x))
}

func (o *OutputBuf) AppendUint32(x uint32) {
	o.buf = binary.LittleEndian.AppendUint32(o.buf, x)
}

func (o *OutputBuf) AppendUint64(x uint64) {
	o.buf = binary.LittleEndian.AppendUint64(o.buf, x)
}

func (o *OutputBuf) AppendUint8(x uint8) {
	o.buf = append(o.buf, x)
}

func (o *OutputBuf) AppendBool(x bool) {
	if x {
		o.AppendUint8(1)
	} else {
		o.AppendUint8(0)
	}
}

func (o *OutputBuf) AppendIntSlice(x []int) {
	o.AppendUint64(uint64(len(x)))
	for _, v := range x {
		o.AppendUint64(uint64(v))
	}
}

func (o *OutputBuf) AppendString(s string) {
	o.AppendUint64(uint64(len(s)))
	o.buf = append(o.buf, s...)
}

func (o *OutputBuf) Bytes() []byte {
	return o.buf
}

// InputBuf panics with an *UnexpectedEOF when the buffer is exhausted
type InputBuf struct {
	buf []byte
}

type UnexpectedEOF struct {
	Want int
	Have int
}

func (e *UnexpectedEOF) Error() string {
	return fmt.Sprintf("unexpected end of buffer: want %d bytes, have %d", e.Want, e.Have)
}

func NewInputBuf(buf []byte) *InputBuf {
	return &InputBuf{buf: buf}
}

func (i *InputBuf) take(n int) []byte {
	if n < 0 || len(i.buf) < n {
		panic(&UnexpectedEOF{Want: n, Have: len(i.buf)})
	}
	x := i.buf[:n]
	i.buf = i.buf[n:]
	return x
}

func (i *InputBuf) ReadUint32() uint32 {
	return binary.LittleEndian.Uint32(i.take(4))
}

func (i *InputBuf) ReadUint64() uint64 {
	return binary.LittleEndian.Uint64(i.take(8))
}

func (i *InputBuf) ReadUint8() uint8 {
	return i.take(1)[0]
}

func (i *InputBuf) ReadBool() bool {
	return i.ReadUint8() != 0
}

// ReadLen reads a length prefix, rejecting lengths that can't possibly fit in the remaining
// buffer given elemSize bytes per element
func (i *InputBuf) ReadLen(elemSize int) int {
	n := i.ReadUint64()
	if elemSize > 0 && n > uint64(len(i.buf)/elemSize) {
		panic(&UnexpectedEOF{Want: int(min(n, uint64(len(i.buf)+1))) * elemSize, Have: len(i.buf)})
	}
	return int(n)
}

func (i *InputBuf) ReadIntSlice() []int {
	n := i.ReadLen(8)
	x := make([]int, n)
	for j := 0; j < n; j++ {
		x[j] = int(i.ReadUint64())
	}
	return x
}

func (i *InputBuf) ReadString() string {
	n := i.ReadLen(1)
	return string(i.take(n))
}

func (i *InputBuf) ReadBigInt(n int) *big.Int {
	b := i.take(n)
	zbuf := make([]byte, n)
	for j := 0; j < n; j++ {
		zbuf[j] = b[n-1-j]
	}
	return new(big.Int).SetBytes(zbuf)
}

func (i *InputBuf) ReadFieldElement(field SimpleField) constraint.Element {
	return field.FromInterface(i.ReadBigInt(field.SerializedLen()))
}

func (i *InputBuf) IsEnd() bool {
	return len(i.buf) == 0
}
