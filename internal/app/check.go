package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gobeaver/pathkit"
	"github.com/gobeaver/pathkit/internal/output"
)

func newCheckCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check PATH...",
		Short: "Check that paths are absolute",
		Long: `Build each path and report whether it is absolute on this platform.

Failing paths are logged and listed, but the command still succeeds unless
--strict is given.

Examples:
  pathkit check /srv/data ./relative
  pathkit check --strict /srv/data /var/log`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := make([]pathkit.AbsolutePath, 0, len(args))
			tbl := output.NewTable("STATUS", "PATH")
			for _, arg := range args {
				p := a.absolutePath(arg)
				paths = append(paths, p)
				if p.Validate() == nil {
					tbl.AddRow(output.StyleOK.Render("ok"), p.String())
				} else {
					tbl.AddRow(output.StyleInvalid.Render("invalid"), p.String())
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), tbl.Render())

			if strict {
				return pathkit.ValidateAll(paths...)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail if any path is not absolute")
	return cmd
}

func newDirCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dir PATH...",
		Short: "Print paths as directories with a trailing separator",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				d := pathkit.NewDirectory(a.absolutePath(arg))
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}
}

func newSumCmd(a *app) *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "sum PATH...",
		Short: "Print a checksum of each path text",
		Long: `Print a checksum of each path text, in the format of sha256sum.

Only the text is hashed; the filesystem is never read.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg := pathkit.ChecksumAlgorithm(a.settings.Checksum)
			if algorithm != "" {
				alg = pathkit.ChecksumAlgorithm(algorithm)
			}
			for _, arg := range args {
				p := a.absolutePath(arg)
				sum, err := p.Checksum(alg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", sum, p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&algorithm, "algorithm", "", "Checksum algorithm (md5, sha1, sha256, sha512, crc32, xxhash)")
	return cmd
}
