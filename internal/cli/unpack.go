package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"

	utf "github.com/meigma/utf/core"
)

// errUnsafeName is returned for entry names that cannot become a single
// path element.
var errUnsafeName = errors.New("unsafe entry name")

func newUnpackCmd(a *app) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "unpack FILE DIR",
		Short: "Extract a container into a filesystem tree",
		Long: `Extract every file of the container FILE under DIR, creating DIR and
any subdirectories as needed.

Entry names containing path separators or naming "." or ".." are rejected.
Existing files are left alone unless --overwrite is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := utf.Open(args[0], utf.WithLogger(a.log()))
			if err != nil {
				return err
			}
			if err := os.MkdirAll(args[1], 0o750); err != nil {
				return err
			}
			dest, err := os.OpenRoot(args[1])
			if err != nil {
				return err
			}
			defer dest.Close()

			count, err := unpackDir(dest, ".", root, overwrite)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "unpacked %d files into %s\n", count, args[1])
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace existing files")

	return cmd
}

// unpackDir writes the members of d under dir within dest. Directories are
// walked with an explicit stack so depth is not bounded by the call stack.
func unpackDir(dest *os.Root, dir string, d *utf.Directory, overwrite bool) (int, error) {
	type frame struct {
		dir string
		d   *utf.Directory
	}

	count := 0
	stack := []frame{{dir, d}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for name, n := range top.d.Objects() {
			if err := checkName(name); err != nil {
				return count, err
			}
			target := path.Join(top.dir, name)

			switch n := n.(type) {
			case *utf.Directory:
				if err := dest.Mkdir(target, 0o750); err != nil && !errors.Is(err, fs.ErrExist) {
					return count, err
				}
				stack = append(stack, frame{target, n})
			case *utf.File:
				flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
				if !overwrite {
					flags |= os.O_EXCL
				}
				f, err := dest.OpenFile(target, flags, 0o640)
				if err != nil {
					return count, err
				}
				_, werr := f.Write(n.Bytes())
				if cerr := f.Close(); werr == nil {
					werr = cerr
				}
				if werr != nil {
					return count, fmt.Errorf("write %s: %w", target, werr)
				}
				count++
			}
		}
	}
	return count, nil
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", errUnsafeName, name)
	}
	return nil
}
