package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/opencontainers/go-digest"
	"github.com/spf13/cobra"

	utf "github.com/meigma/utf/core"
)

func newInfoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info FILE",
		Short: "Show the header and totals of a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			h, err := utf.ReadHeader(buf)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			root, err := utf.From(buf, utf.WithLogger(a.log()))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			dirs, files := countTree(root)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "digest\t%s\n", digest.FromBytes(buf))
			fmt.Fprintf(tw, "size\t%d\n", len(buf))
			fmt.Fprintf(tw, "tree\t%d+%d\n", h.TreeOffset, h.TreeSize)
			fmt.Fprintf(tw, "root entry\t%d\n", h.EntryOffset)
			fmt.Fprintf(tw, "names\t%d+%d (%d used)\n", h.NamesOffset, h.NamesSizeAllocated, h.NamesSizeUsed)
			fmt.Fprintf(tw, "data\t%d\n", h.DataOffset)
			if !h.Time().IsZero() {
				fmt.Fprintf(tw, "time\t%s\n", h.Time().UTC().Format("2006-01-02 15:04:05"))
			}
			fmt.Fprintf(tw, "directories\t%d\n", dirs)
			fmt.Fprintf(tw, "files\t%d\n", files)
			fmt.Fprintf(tw, "payload\t%d\n", root.ByteLength())
			return tw.Flush()
		},
	}
	return cmd
}

// countTree counts the directories below d and the files anywhere in it.
func countTree(d *utf.Directory) (dirs, files int) {
	for _, sub := range d.Directories() {
		subDirs, subFiles := countTree(sub)
		dirs += 1 + subDirs
		files += subFiles
	}
	for range d.Files() {
		files++
	}
	return dirs, files
}
