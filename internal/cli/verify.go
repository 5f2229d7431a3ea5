package cli

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	utf "github.com/meigma/utf/core"
)

// errVerify reports that at least one container failed verification.
var errVerify = errors.New("verification failed")

func newVerifyCmd(a *app) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "verify FILE...",
		Short: "Check that containers decode and re-encode cleanly",
		Long: `Decode each FILE, encode the result again, decode that, and compare the
two trees. A container passes when both trees hold the same members with
the same payloads.

Files are checked concurrently; results are printed in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				jobs = 1
			}
			results := make([]error, len(args))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(jobs)
			for i, path := range args {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					results[i] = verifyFile(a, path)
					return nil
				})
			}
			if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			failed := 0
			for i, path := range args {
				if results[i] != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", path, results[i])
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", path)
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errVerify, failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "Number of files checked in parallel")

	return cmd
}

func verifyFile(a *app, path string) error {
	logger := a.log().With("path", path)
	first, err := utf.Open(path, utf.WithLogger(logger))
	if err != nil {
		return err
	}
	buf, err := first.ToBuffer(utf.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("re-encode: %w", err)
	}
	second, err := utf.From(buf, utf.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("decode re-encoded: %w", err)
	}
	if !reflect.DeepEqual(first.Manifest(), second.Manifest()) {
		return errors.New("re-encoded tree differs")
	}
	return nil
}
