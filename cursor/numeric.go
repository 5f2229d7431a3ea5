package cursor

import (
	"encoding/binary"
	"math"
)

// ReadUint8 reads an unsigned 8-bit integer.
func (c *Cursor) ReadUint8() uint8 {
	if b := c.next(1); b != nil {
		return b[0]
	}
	return 0
}

// WriteUint8 writes an unsigned 8-bit integer.
func (c *Cursor) WriteUint8(v uint8) {
	if b := c.next(1); b != nil {
		b[0] = v
	}
}

// ReadInt8 reads a signed 8-bit integer.
func (c *Cursor) ReadInt8() int8 {
	return int8(c.ReadUint8()) //nolint:gosec // reinterpreted as signed
}

// WriteInt8 writes a signed 8-bit integer.
func (c *Cursor) WriteInt8(v int8) {
	c.WriteUint8(uint8(v)) //nolint:gosec // reinterpreted as unsigned
}

// ReadUint16 reads an unsigned 16-bit integer in the cursor's byte order.
func (c *Cursor) ReadUint16() uint16 {
	return c.ReadUint16Order(c.byteOrder())
}

// ReadUint16Order reads an unsigned 16-bit integer in byte order o.
func (c *Cursor) ReadUint16Order(o binary.ByteOrder) uint16 {
	if b := c.next(2); b != nil {
		return o.Uint16(b)
	}
	return 0
}

// WriteUint16 writes an unsigned 16-bit integer in the cursor's byte order.
func (c *Cursor) WriteUint16(v uint16) {
	c.WriteUint16Order(v, c.byteOrder())
}

// WriteUint16Order writes an unsigned 16-bit integer in byte order o.
func (c *Cursor) WriteUint16Order(v uint16, o binary.ByteOrder) {
	if b := c.next(2); b != nil {
		o.PutUint16(b, v)
	}
}

// ReadInt16 reads a signed 16-bit integer in the cursor's byte order.
func (c *Cursor) ReadInt16() int16 {
	return int16(c.ReadUint16()) //nolint:gosec // reinterpreted as signed
}

// ReadInt16Order reads a signed 16-bit integer in byte order o.
func (c *Cursor) ReadInt16Order(o binary.ByteOrder) int16 {
	return int16(c.ReadUint16Order(o)) //nolint:gosec // reinterpreted as signed
}

// WriteInt16 writes a signed 16-bit integer in the cursor's byte order.
func (c *Cursor) WriteInt16(v int16) {
	c.WriteUint16(uint16(v)) //nolint:gosec // reinterpreted as unsigned
}

// WriteInt16Order writes a signed 16-bit integer in byte order o.
func (c *Cursor) WriteInt16Order(v int16, o binary.ByteOrder) {
	c.WriteUint16Order(uint16(v), o) //nolint:gosec // reinterpreted as unsigned
}

// ReadUint32 reads an unsigned 32-bit integer in the cursor's byte order.
func (c *Cursor) ReadUint32() uint32 {
	return c.ReadUint32Order(c.byteOrder())
}

// ReadUint32Order reads an unsigned 32-bit integer in byte order o.
func (c *Cursor) ReadUint32Order(o binary.ByteOrder) uint32 {
	if b := c.next(4); b != nil {
		return o.Uint32(b)
	}
	return 0
}

// WriteUint32 writes an unsigned 32-bit integer in the cursor's byte order.
func (c *Cursor) WriteUint32(v uint32) {
	c.WriteUint32Order(v, c.byteOrder())
}

// WriteUint32Order writes an unsigned 32-bit integer in byte order o.
func (c *Cursor) WriteUint32Order(v uint32, o binary.ByteOrder) {
	if b := c.next(4); b != nil {
		o.PutUint32(b, v)
	}
}

// ReadInt32 reads a signed 32-bit integer in the cursor's byte order.
func (c *Cursor) ReadInt32() int32 {
	return int32(c.ReadUint32()) //nolint:gosec // reinterpreted as signed
}

// ReadInt32Order reads a signed 32-bit integer in byte order o.
func (c *Cursor) ReadInt32Order(o binary.ByteOrder) int32 {
	return int32(c.ReadUint32Order(o)) //nolint:gosec // reinterpreted as signed
}

// WriteInt32 writes a signed 32-bit integer in the cursor's byte order.
func (c *Cursor) WriteInt32(v int32) {
	c.WriteUint32(uint32(v)) //nolint:gosec // reinterpreted as unsigned
}

// WriteInt32Order writes a signed 32-bit integer in byte order o.
func (c *Cursor) WriteInt32Order(v int32, o binary.ByteOrder) {
	c.WriteUint32Order(uint32(v), o) //nolint:gosec // reinterpreted as unsigned
}

// ReadUint64 reads an unsigned 64-bit integer in the cursor's byte order.
func (c *Cursor) ReadUint64() uint64 {
	return c.ReadUint64Order(c.byteOrder())
}

// ReadUint64Order reads an unsigned 64-bit integer in byte order o.
func (c *Cursor) ReadUint64Order(o binary.ByteOrder) uint64 {
	if b := c.next(8); b != nil {
		return o.Uint64(b)
	}
	return 0
}

// WriteUint64 writes an unsigned 64-bit integer in the cursor's byte order.
func (c *Cursor) WriteUint64(v uint64) {
	c.WriteUint64Order(v, c.byteOrder())
}

// WriteUint64Order writes an unsigned 64-bit integer in byte order o.
func (c *Cursor) WriteUint64Order(v uint64, o binary.ByteOrder) {
	if b := c.next(8); b != nil {
		o.PutUint64(b, v)
	}
}

// ReadInt64 reads a signed 64-bit integer in the cursor's byte order.
func (c *Cursor) ReadInt64() int64 {
	return int64(c.ReadUint64()) //nolint:gosec // reinterpreted as signed
}

// ReadInt64Order reads a signed 64-bit integer in byte order o.
func (c *Cursor) ReadInt64Order(o binary.ByteOrder) int64 {
	return int64(c.ReadUint64Order(o)) //nolint:gosec // reinterpreted as signed
}

// WriteInt64 writes a signed 64-bit integer in the cursor's byte order.
func (c *Cursor) WriteInt64(v int64) {
	c.WriteUint64(uint64(v)) //nolint:gosec // reinterpreted as unsigned
}

// WriteInt64Order writes a signed 64-bit integer in byte order o.
func (c *Cursor) WriteInt64Order(v int64, o binary.ByteOrder) {
	c.WriteUint64Order(uint64(v), o) //nolint:gosec // reinterpreted as unsigned
}

// ReadFloat32 reads an IEEE 754 32-bit float in the cursor's byte order.
func (c *Cursor) ReadFloat32() float32 {
	return math.Float32frombits(c.ReadUint32())
}

// ReadFloat32Order reads an IEEE 754 32-bit float in byte order o.
func (c *Cursor) ReadFloat32Order(o binary.ByteOrder) float32 {
	return math.Float32frombits(c.ReadUint32Order(o))
}

// WriteFloat32 writes an IEEE 754 32-bit float in the cursor's byte order.
func (c *Cursor) WriteFloat32(v float32) {
	c.WriteUint32(math.Float32bits(v))
}

// WriteFloat32Order writes an IEEE 754 32-bit float in byte order o.
func (c *Cursor) WriteFloat32Order(v float32, o binary.ByteOrder) {
	c.WriteUint32Order(math.Float32bits(v), o)
}

// ReadFloat64 reads an IEEE 754 64-bit float in the cursor's byte order.
func (c *Cursor) ReadFloat64() float64 {
	return math.Float64frombits(c.ReadUint64())
}

// ReadFloat64Order reads an IEEE 754 64-bit float in byte order o.
func (c *Cursor) ReadFloat64Order(o binary.ByteOrder) float64 {
	return math.Float64frombits(c.ReadUint64Order(o))
}

// WriteFloat64 writes an IEEE 754 64-bit float in the cursor's byte order.
func (c *Cursor) WriteFloat64(v float64) {
	c.WriteUint64(math.Float64bits(v))
}

// WriteFloat64Order writes an IEEE 754 64-bit float in byte order o.
func (c *Cursor) WriteFloat64Order(v float64, o binary.ByteOrder) {
	c.WriteUint64Order(math.Float64bits(v), o)
}
