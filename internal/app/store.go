package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gobeaver/pathkit"
	"github.com/gobeaver/pathkit/internal/output"
	"github.com/gobeaver/pathkit/pathstore"
)

func (a *app) openStore() (*pathstore.DB, error) {
	db, err := pathstore.Open(a.settings.StorePath, pathstore.Config{
		ChecksumAlgorithm: pathkit.ChecksumAlgorithm(a.settings.Checksum),
	})
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", a.settings.StorePath, err)
	}
	return db, nil
}

// withStore opens the store for the duration of fn.
func (a *app) withStore(fn func(db *pathstore.DB) error) error {
	db, err := a.openStore()
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

func newStoreCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage named path bindings",
		Long: `Manage named path bindings kept in a SQLite database.

Examples:
  pathkit store put data /srv/data
  pathkit store put-dir logs /var/log
  pathkit store get logs
  pathkit store find '/srv/**'
  pathkit store rm data`,
	}

	cmd.AddCommand(
		newStorePutCmd(a),
		newStorePutDirCmd(a),
		newStoreGetCmd(a),
		newStoreListCmd(a),
		newStoreFindCmd(a),
		newStoreRmCmd(a),
	)
	return cmd
}

func newStorePutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "put NAME PATH",
		Short: "Bind a path to a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(db *pathstore.DB) error {
				return db.PutPath(cmd.Context(), args[0], a.absolutePath(args[1]))
			})
		},
	}
}

func newStorePutDirCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "put-dir NAME PATH",
		Short: "Bind a directory to a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(db *pathstore.DB) error {
				return db.PutDirectory(cmd.Context(), args[0], pathkit.NewDirectory(a.absolutePath(args[1])))
			})
		},
	}
}

func newStoreGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Print the path bound to a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(db *pathstore.DB) error {
				b, err := db.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), b.Path)
				return nil
			})
		},
	}
}

func newStoreListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every binding",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(func(db *pathstore.DB) error {
				bindings, err := db.List(cmd.Context())
				if err != nil {
					return err
				}
				return printBindings(cmd, bindings, asJSON)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newStoreFindCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "find PATTERN",
		Short: "List bindings whose path matches a glob pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(db *pathstore.DB) error {
				bindings, err := db.Find(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printBindings(cmd, bindings, asJSON)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newStoreRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm NAME...",
		Short: "Remove bindings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(db *pathstore.DB) error {
				for _, name := range args {
					if err := db.Delete(cmd.Context(), name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func printBindings(cmd *cobra.Command, bindings []pathstore.Binding, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		if bindings == nil {
			bindings = []pathstore.Binding{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(bindings)
	}

	if len(bindings) == 0 {
		fmt.Fprintln(out, output.StyleMuted.Render("no bindings"))
		return nil
	}

	tbl := output.NewTable("NAME", "KIND", "PATH")
	for _, b := range bindings {
		tbl.AddRow(b.Name, string(b.Kind), b.Path.String())
	}
	fmt.Fprint(out, tbl.Render())
	return nil
}
