package cli

import (
	"fmt"
	"io"
	"path"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	utf "github.com/meigma/utf/core"
	"github.com/meigma/utf/resource"
)

func newLsCmd(a *app) *cobra.Command {
	var (
		long      bool
		ids       bool
		recursive bool
	)

	cmd := &cobra.Command{
		Use:   "ls FILE [PATH]",
		Short: "List the members of a container directory",
		Long: `List the members of the root directory of FILE, or of the directory at
PATH within it. PATH components are separated by "/".

Directories are printed with a trailing "/".`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := utf.Open(args[0], utf.WithLogger(a.log()))
			if err != nil {
				return err
			}
			dir := root
			prefix := ""
			if len(args) == 2 {
				if dir, err = lookupDir(root, args[1]); err != nil {
					return err
				}
				prefix = strings.Trim(args[1], "/")
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			listDir(tw, dir, prefix, listOptions{long: long, ids: ids, recursive: recursive})
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "Show payload sizes")
	cmd.Flags().BoolVar(&ids, "ids", false, "Show resource ids")
	cmd.Flags().BoolVarP(&recursive, "recursive", "R", false, "List subdirectories recursively")

	return cmd
}

type listOptions struct {
	long      bool
	ids       bool
	recursive bool
}

func listDir(w io.Writer, d *utf.Directory, prefix string, opts listOptions) {
	for c := range d.Children() {
		name := c.Name
		if name == "" {
			name = resource.Hex(c.ID)
		}
		name = path.Join(prefix, name)
		sub, isDir := c.Node.(*utf.Directory)
		if isDir {
			name += "/"
		}

		var cols []string
		if opts.ids {
			cols = append(cols, resource.Hex(c.ID))
		}
		if opts.long {
			cols = append(cols, fmt.Sprint(c.Node.ByteLength()))
		}
		cols = append(cols, name)
		fmt.Fprintln(w, strings.Join(cols, "\t"))

		if isDir && opts.recursive {
			listDir(w, sub, strings.TrimSuffix(name, "/"), opts)
		}
	}
}

// lookupDir walks a slash-separated path from root.
func lookupDir(root *utf.Directory, p string) (*utf.Directory, error) {
	d := root
	for part := range strings.SplitSeq(strings.Trim(p, "/"), "/") {
		if part == "" {
			continue
		}
		sub, ok := d.GetDirectory(part)
		if !ok {
			return nil, fmt.Errorf("%w: %s", utf.ErrMissingResource, p)
		}
		d = sub
	}
	return d, nil
}
