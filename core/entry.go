package utf

import (
	"time"

	"github.com/meigma/utf/cursor"
	"github.com/meigma/utf/internal/filetime"
)

// Attribute is a Win32-style file attribute bitmask.
type Attribute uint32

// Attributes understood by the codec. Entries carrying neither are skipped.
const (
	AttributeDirectory Attribute = 0x10
	AttributeNormal    Attribute = 0x80
)

// Entry is one node of the flattened tree.
//
// For directories ChildOffset points at the first child relative to the
// tree region; for files it is the data offset relative to the data region.
type Entry struct {
	NextOffset           uint32
	NameOffset           uint32
	FileAttributes       Attribute
	SharingAttributes    uint32
	ChildOffset          uint32
	DataSizeAllocated    uint32
	DataSizeUsed         uint32
	DataSizeUncompressed uint32

	// DOS date/time words.
	CreateTime uint32
	AccessTime uint32
	ModifyTime uint32
}

// ByteLength implements cursor.Readable and cursor.Writable.
func (e *Entry) ByteLength() int { return EntrySize }

// IsFile reports whether e describes a file. The file bit wins when both
// are set.
func (e *Entry) IsFile() bool { return e.FileAttributes&AttributeNormal != 0 }

// IsDirectory reports whether e describes a directory.
func (e *Entry) IsDirectory() bool {
	return !e.IsFile() && e.FileAttributes&AttributeDirectory != 0
}

// SetTime stamps all three timestamps with t.
func (e *Entry) SetTime(t time.Time) {
	v := filetime.ToDOS(t)
	e.CreateTime, e.AccessTime, e.ModifyTime = v, v, v
}

// Modified returns the decoded modification time.
func (e *Entry) Modified() time.Time { return filetime.FromDOS(e.ModifyTime) }

// Decode implements cursor.Readable.
func (e *Entry) Decode(c *cursor.Cursor) error {
	e.NextOffset = c.ReadUint32()
	e.NameOffset = c.ReadUint32()
	e.FileAttributes = Attribute(c.ReadUint32())
	e.SharingAttributes = c.ReadUint32()
	e.ChildOffset = c.ReadUint32()
	e.DataSizeAllocated = c.ReadUint32()
	e.DataSizeUsed = c.ReadUint32()
	e.DataSizeUncompressed = c.ReadUint32()
	e.CreateTime = c.ReadUint32()
	e.AccessTime = c.ReadUint32()
	e.ModifyTime = c.ReadUint32()
	return c.Err()
}

// Encode implements cursor.Writable.
func (e *Entry) Encode(c *cursor.Cursor) error {
	c.WriteUint32(e.NextOffset)
	c.WriteUint32(e.NameOffset)
	c.WriteUint32(uint32(e.FileAttributes))
	c.WriteUint32(e.SharingAttributes)
	c.WriteUint32(e.ChildOffset)
	c.WriteUint32(e.DataSizeAllocated)
	c.WriteUint32(e.DataSizeUsed)
	c.WriteUint32(e.DataSizeUncompressed)
	c.WriteUint32(e.CreateTime)
	c.WriteUint32(e.AccessTime)
	c.WriteUint32(e.ModifyTime)
	return c.Err()
}
