package utf_test

import (
	"fmt"

	"github.com/meigma/utf"
	"github.com/meigma/utf/cursor"
)

type position struct {
	utf.FileKind
	X, Y, Z float32
}

func (*position) Filename() string { return "Position" }
func (*position) ByteLength() int  { return 12 }

func (p *position) Decode(c *cursor.Cursor) error {
	p.X, p.Y, p.Z = c.ReadFloat32(), c.ReadFloat32(), c.ReadFloat32()
	return nil
}

func (p *position) Encode(c *cursor.Cursor) error {
	c.WriteFloat32(p.X)
	c.WriteFloat32(p.Y)
	c.WriteFloat32(p.Z)
	return nil
}

func Example() {
	root := utf.NewDirectory(nil)
	mount := root.SetDirectory("Hardpoints").SetDirectory("Fixed").SetDirectory("HpMount")
	if err := mount.Write(&position{X: 1, Y: 2, Z: 3}, ""); err != nil {
		panic(err)
	}

	buf, err := root.ToBuffer()
	if err != nil {
		panic(err)
	}

	decoded, err := utf.From(buf)
	if err != nil {
		panic(err)
	}
	hp, _ := decoded.GetDirectory("HARDPOINTS")
	fixed, _ := hp.GetDirectory("fixed")
	mount, _ = fixed.GetDirectory("HpMount")

	var p position
	if err := mount.Read(&p, ""); err != nil {
		panic(err)
	}
	fmt.Println(p.X, p.Y, p.Z)
	// Output: 1 2 3
}

func ExampleDirectory_Adopt() {
	root := utf.NewDirectory(nil)
	root.SetDirectory("Cons").SetFile("Fix")

	patch := utf.NewDirectory(nil)
	patch.SetFile("Rev")
	root.Adopt(utf.Named("Cons", patch))

	cons, _ := root.GetDirectory("Cons")
	for name := range cons.Labels() {
		fmt.Println(name)
	}
	// Output:
	// Fix
	// Rev
}
