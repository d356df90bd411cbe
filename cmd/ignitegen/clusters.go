package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssidorov-gg/apache-ignite/internal/cli"
)

var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "Manage the cluster store",
	Long: `Manage the cluster store: a directory of documents (store.dir) or the
ignitegen_clusters table when a database is configured.`,
}

var clustersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored clusters",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		ids, err := s.List(ctx)
		if err != nil {
			return cli.GeneralError("listing clusters", err)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

var clustersImportID string

var clustersImportCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import cluster documents into the store",
	Example: `  # Copy local documents into the database store
  ignitegen clusters import clusters/*.yaml --db postgres://localhost/ignite

  # Import under an explicit id
  ignitegen clusters import export.json --id prod`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if clustersImportID != "" && len(args) > 1 {
			return cli.ConfigError("--id requires a single file", nil)
		}

		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		for _, path := range args {
			src, err := loadFile(path)
			if err != nil {
				return err
			}
			id := resolveString(clustersImportID, src.name)
			if err := s.Put(ctx, id, src.cluster); err != nil {
				return cli.GeneralError(fmt.Sprintf("storing %s", id), err)
			}
			logger.Info("imported", "cluster", id, "file", path)
		}
		return nil
	},
}

func init() {
	clustersImportCmd.Flags().StringVar(&clustersImportID, "id", "", "store id (default: file name)")
	clustersCmd.AddCommand(clustersListCmd)
	clustersCmd.AddCommand(clustersImportCmd)
}
