package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceID(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		caseSensitive bool
		want          int32
	}{
		{"case sensitive", "*Test", true, 0x1f79497b},
		{"case insensitive", "*Test", false, -8939899},
		{"lower input", "*test", false, -8939899},
		{"map key", "MyThing1", false, 124903838},
		{"directory name", "test", false, 0x061ba27e},
		{"empty", "", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResourceID(tt.key, tt.caseSensitive))
		})
	}
}

func TestResourceIDNumbers(t *testing.T) {
	assert.Equal(t, int32(124903838), ResourceID(124903838, false))
	assert.Equal(t, int32(-1), ResourceID(uint32(0xffffffff), false))
	assert.Equal(t, int32(1), ResourceID(int64(1<<32+1), false))
}

func TestResourceIDBytes(t *testing.T) {
	// Byte slices are hashed as-is; case folding only applies to strings.
	assert.Equal(t, int32(124903838), ResourceID([]byte("mything1"), false))
	assert.NotEqual(t, ResourceID("MyThing1", true), ResourceID([]byte("mything1"), false))
	assert.Equal(t, ResourceID("MyThing1", true), ResourceID([]byte("MyThing1"), false))
}

func TestCRC32Table(t *testing.T) {
	assert.Equal(t, uint32(0x00000000), crc32Table[0])
	assert.Equal(t, uint32(0x09073096), crc32Table[1])
	assert.Equal(t, uint32(0x120e612c), crc32Table[2])
	assert.Equal(t, uint32(0xff6dc419), crc32Table[4])
	assert.Equal(t, uint32(0xedb88320), crc32Table[128])
}

func TestObjectID(t *testing.T) {
	assert.Equal(t, int32(-1952295158), ObjectID("*Test", false))
	assert.Equal(t, int32(-1952295158), ObjectID("*test", true))
	assert.Equal(t, int32(-1952295158), ObjectID(uint32(0x8ba2570a), false))
	assert.Less(t, ObjectID("li01_01_base", false), int32(0), "object ids always carry the top bit")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, uint16(0x29b1), CRC16([]byte("123456789")))
	assert.Equal(t, uint16(0x2345), ShortID(0x12345, false))
	assert.Equal(t, ShortID("li_n_grp", false), ShortID("Li_N_Grp", false))
	assert.NotEqual(t, ShortID("li_n_grp", true), ShortID("Li_N_Grp", true))
}

func TestMatch(t *testing.T) {
	assert.True(t, Match(Resource, "Hardpoints", "HARDPOINTS"))
	assert.False(t, Match(Resource, "Hardpoints", "Hardpoint"))
	assert.True(t, Match(Object, "Li01", "li01"))
}
