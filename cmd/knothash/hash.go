package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Blackdeer1524/KnotHash/src/knothash"
)

func newHashCmd(c *cli) *cobra.Command {
	var (
		files []string
		size  int
	)

	cmd := &cobra.Command{
		Use:   "hash [text...]",
		Short: "Print the knot hash of each argument",
		Long: `Hash prints one lowercase hex digest per input, in the order given.
Literal arguments are hashed first, then the contents of every --file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			texts := append([]string{}, args...)
			for _, f := range files {
				text, err := c.readInput(f)
				if err != nil {
					return err
				}
				texts = append(texts, text)
			}
			if len(texts) == 0 {
				return errors.New("nothing to hash")
			}

			digests := make([]string, len(texts))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(c.entry.Env.Workers)
			for i, text := range texts {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}

					d, err := knothash.Digest(text, size)
					if err != nil {
						return fmt.Errorf("input %d: %w", i, err)
					}
					digests[i] = d

					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			c.entry.Log().Debugw("hashed inputs", "count", len(texts), "list_size", size)

			out := cmd.OutOrStdout()
			for _, d := range digests {
				fmt.Fprintln(out, d)
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "hash the contents of a file (repeatable)")
	cmd.Flags().IntVar(&size, "size", knothash.ListSize, "list size, a multiple of 16 up to 256")

	return cmd
}
