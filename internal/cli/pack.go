package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	utf "github.com/meigma/utf/core"
)

func newPackCmd(a *app) *cobra.Command {
	var (
		stamp    bool
		wordSize int
	)

	cmd := &cobra.Command{
		Use:   "pack DIR OUTPUT",
		Short: "Pack a filesystem tree into a container",
		Long: `Pack every regular file under DIR into a new container written to OUTPUT.

Subdirectories become container directories. Symlinks and other special
files are skipped. The output is written atomically.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := packDir(a, args[0])
			if err != nil {
				return err
			}
			opts := []utf.Option{utf.WithLogger(a.log()), utf.WithWordSize(wordSize)}
			if stamp {
				opts = append(opts, utf.WithTime(time.Now()))
			}
			if err := root.Save(args[1], opts...); err != nil {
				return fmt.Errorf("write %s: %w", args[1], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "packed %d bytes from %s into %s\n", root.ByteLength(), args[0], args[1])
			return nil
		},
	}

	cmd.Flags().BoolVar(&stamp, "timestamp", false, "Stamp the current time into the header and entries")
	cmd.Flags().IntVar(&wordSize, "word-size", 0, "Maximum name length plus terminator (0 = 255)")

	return cmd
}

// packDir builds a directory tree from the filesystem tree at dir.
func packDir(a *app, dir string) (*utf.Directory, error) {
	root := utf.NewDirectory(nil)
	fsys, err := os.OpenRoot(dir)
	if err != nil {
		return nil, err
	}
	defer fsys.Close()

	err = fs.WalkDir(fsys.FS(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." {
			return nil
		}

		parent := root
		parts := strings.Split(path, "/")
		for _, part := range parts[:len(parts)-1] {
			parent = parent.SetDirectory(part)
		}
		name := parts[len(parts)-1]

		switch {
		case d.IsDir():
			parent.SetDirectory(name)
		case d.Type().IsRegular():
			data, err := fs.ReadFile(fsys.FS(), path)
			if err != nil {
				return err
			}
			parent.SetFile(name).SetBytes(data)
		default:
			a.log().Debug("skipped special file", "path", filepath.FromSlash(path))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return root, nil
}
