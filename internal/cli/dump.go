package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	utf "github.com/meigma/utf/core"
	"github.com/meigma/utf/internal/store"
)

func newDumpCmd(a *app) *cobra.Command {
	var (
		dataPath  string
		compress  bool
		storeDir  string
		storeSize int64
	)

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print a JSON manifest of a container",
		Long: `Print a JSON manifest describing every directory and file of FILE.

With --data, every file payload is also written to a sidecar file in
manifest order and each file entry records its byteOffset there. With
--zstd the sidecar is zstd-compressed; offsets refer to the uncompressed
stream.

With --store, every file payload is also written to a content-addressed
store under DIR/<algorithm>/, named by the digest the manifest records.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := utf.Open(args[0], utf.WithLogger(a.log()))
			if err != nil {
				return err
			}
			if storeDir != "" {
				s, err := store.New(storeDir, store.WithMaxBytes(storeSize))
				if err != nil {
					return err
				}
				if err := storePayloads(cmd.Context(), a, s, root); err != nil {
					return err
				}
			}
			if dataPath == "" {
				return root.WriteJSON(cmd.OutOrStdout())
			}

			var m utf.Manifest
			err = utf.WriteFileAtomic(dataPath, func(w io.Writer) (werr error) {
				if !compress {
					m, werr = root.Export(w)
					return werr
				}
				zw, werr := zstd.NewWriter(w)
				if werr != nil {
					return werr
				}
				if m, werr = root.Export(zw); werr != nil {
					zw.Close()
					return werr
				}
				return zw.Close()
			})
			if err != nil {
				return fmt.Errorf("write %s: %w", dataPath, err)
			}
			a.log().Info("wrote payload sidecar", "path", dataPath, "bytes", m.ByteLength, "zstd", compress)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "Write file payloads to this sidecar file")
	cmd.Flags().BoolVar(&compress, "zstd", false, "Compress the sidecar with zstd")
	cmd.Flags().StringVar(&storeDir, "store", "", "Write file payloads to a content-addressed store in this directory")
	cmd.Flags().Int64Var(&storeSize, "store-max-bytes", 0, "Prune the store to this size, oldest first (0 = unlimited)")

	return cmd
}

// storePayloads puts every file of root into s concurrently.
func storePayloads(ctx context.Context, a *app, s *store.Store, root *utf.Directory) error {
	var kept, skipped atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	stack := []*utf.Directory{root}
	for len(stack) > 0 {
		d := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, sub := range d.Directories() {
			stack = append(stack, sub)
		}
		for _, f := range d.Files() {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				_, ok, err := s.Put(f.Bytes())
				if ok {
					kept.Add(1)
				} else {
					skipped.Add(1)
				}
				return err
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}
	a.log().Info("stored payloads", "kept", kept.Load(), "skipped", skipped.Load(), "bytes", s.SizeBytes())
	return nil
}
