package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssidorov-gg/apache-ignite/internal/cli"
	"github.com/ssidorov-gg/apache-ignite/internal/codegen"
	"github.com/ssidorov-gg/apache-ignite/internal/doctor"
	"github.com/ssidorov-gg/apache-ignite/pkg/generator"
)

var (
	doctorVerbose bool
	doctorClient  bool
)

var doctorCmd = &cobra.Command{
	Use:   "doctor [cluster file or id]...",
	Short: "Check cluster documents",
	Long: `Check cluster documents for input that would be silently dropped, unsupported
data source dialects and stale generated files.`,
	Example: `  # Check a cluster file
  ignitegen doctor clusters/prod.yaml

  # Check every stored cluster against the generation ledger
  ignitegen doctor --db postgres://localhost/ignite --all --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		verboseFlag := resolveBool(doctorVerbose, cfg.Doctor.Verbose)

		all, _ := cmd.Flags().GetBool("all")
		sources, err := loadSources(ctx, args, all)
		if err != nil {
			return err
		}

		ledger, closeLedger, err := openLedger(ctx)
		if err != nil {
			return err
		}
		defer closeLedger()

		d := doctor.New(doctor.Options{
			Generator: generator.Options{
				Dialect: resolveString(cfg.Generate.Dialect, generator.DefaultDialect),
				Config: &codegen.Config{
					Package: cfg.Generate.Package,
					Class:   cfg.Generate.Class,
					Client:  resolveBool(doctorClient, cfg.Generate.Client),
					Options: map[string]any{},
				},
				Logger: logger,
			},
			Ledger: ledger,
		})

		failed := false
		for _, src := range sources {
			if !quiet {
				fmt.Printf("ignitegen doctor - %s\n", src.name)
			}

			report, err := d.Run(ctx, src.name, src.cluster)
			if err != nil {
				return cli.GeneralError("running doctor", err)
			}
			report.Print(os.Stdout, verboseFlag)
			fmt.Println()

			failed = failed || report.HasErrors()
		}

		if failed {
			return cli.GeneralError("checks failed", nil)
		}
		return nil
	},
}

func init() {
	f := doctorCmd.Flags()
	f.BoolVar(&doctorVerbose, "details", false, "show detailed output")
	f.BoolVar(&doctorClient, "client", false, "check the client node configuration")
	f.Bool("all", false, "check every cluster in the store")
}
