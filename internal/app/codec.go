package app

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gobeaver/pathkit"
)

// codecFor returns the codec selected with --codec, or the one guessed from
// fileName and data when --codec was not given and a file is involved.
func (a *app) codecFor(cmd *cobra.Command, fileName string, data []byte) (pathkit.Codec, error) {
	name := a.settings.Codec
	if fileName != "" && !cmd.Flags().Changed("codec") {
		name = pathkit.GuessCodec(fileName, data)
		a.logger.Debug("guessed codec", "file", fileName, "codec", name)
	}
	return pathkit.LookupCodec(name)
}

func newEncodeCmd(a *app) *cobra.Command {
	var (
		asDir   bool
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "encode PATH...",
		Short: "Serialize paths",
		Long: `Serialize paths to stdout, or to the file given with --output.

The codec is taken from --codec. When writing to a file without --codec, it
is chosen from the file extension.

Examples:
  pathkit encode /srv/data /var/log
  pathkit encode --codec yaml --dir /srv/data
  pathkit encode --output paths.msgpack /srv/data`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.codecFor(cmd, outFile, nil)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			w := c.NewWriter(&buf)
			for _, arg := range args {
				p := a.absolutePath(arg)
				if asDir {
					err = pathkit.NewDirectory(p).Write(w)
				} else {
					err = p.Write(w)
				}
				if err != nil {
					return fmt.Errorf("encoding %s: %w", arg, err)
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if outFile != "" {
				return os.WriteFile(outFile, buf.Bytes(), 0o644)
			}
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		},
	}

	cmd.Flags().BoolVar(&asDir, "dir", false, "Encode the paths as directories")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

func newDecodeCmd(a *app) *cobra.Command {
	var (
		asDir  bool
		inFile string
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Read serialized paths and print one per line",
		Long: `Read serialized paths from stdin, or from the file given with --input,
and print one per line.

When reading a file without --codec, the codec is guessed from the file
extension or, failing that, from its first bytes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				data []byte
				err  error
			)
			if inFile != "" {
				data, err = os.ReadFile(inFile)
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			c, err := a.codecFor(cmd, inFile, data)
			if err != nil {
				return err
			}
			r, err := c.NewReader(bytes.NewReader(data))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asDir {
				dirs, err := pathkit.ReadDirectories(r)
				for _, d := range dirs {
					fmt.Fprintln(out, d)
				}
				return err
			}

			paths, err := pathkit.ReadPaths(r)
			for _, p := range paths {
				fmt.Fprintln(out, p)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&asDir, "dir", false, "Decode the values as directories")
	cmd.Flags().StringVarP(&inFile, "input", "i", "", "Read from a file instead of stdin")
	return cmd
}

func newCodecsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codecs",
		Short: "List the available codecs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range pathkit.Codecs() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", name, pathkit.ExtensionForCodec(name))
			}
			return nil
		},
	}
}
