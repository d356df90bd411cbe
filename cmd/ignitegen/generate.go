package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ssidorov-gg/apache-ignite/internal/assemble"
	"github.com/ssidorov-gg/apache-ignite/internal/cli"
	"github.com/ssidorov-gg/apache-ignite/internal/codegen"
	"github.com/ssidorov-gg/apache-ignite/internal/defaults"
	"github.com/ssidorov-gg/apache-ignite/internal/store"
	"github.com/ssidorov-gg/apache-ignite/pkg/generator"
)

// stdoutOutput selects writing generated files to stdout.
const stdoutOutput = "-"

var (
	genDialect   string
	genOutput    string
	genPackage   string
	genClass     string
	genClient    bool
	genForce     bool
	genWorkers   int
	genAll       bool
	genWatch     bool
	genDumpBeans bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [cluster file or id]...",
	Short: "Generate configuration code",
	Long: `Generate configuration code from cluster documents.

Arguments naming an existing file are parsed as YAML or JSON documents; other
arguments are looked up in the cluster store.

Supported dialects: ` + strings.Join(generator.Dialects(), ", "),
	Example: `  # Generate a server configuration class into src/main/java
  ignitegen generate clusters/prod.yaml --output src/main/java

  # Generate the client node variant with near caches
  ignitegen generate clusters/prod.yaml --client --class ProdClientConfig

  # Regenerate every stored cluster, skipping unchanged ones
  ignitegen generate --all --db postgres://localhost/ignite

  # Print to stdout
  ignitegen generate clusters/prod.yaml --output -

  # Regenerate on every save
  ignitegen generate clusters/prod.yaml --watch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		opts := generator.Options{
			Dialect: resolveString(genDialect, cfg.Generate.Dialect, generator.DefaultDialect),
			Config: &codegen.Config{
				Package: resolveString(genPackage, cfg.Generate.Package),
				Class:   resolveString(genClass, cfg.Generate.Class),
				Client:  resolveBool(genClient, cfg.Generate.Client),
				Options: map[string]any{},
			},
			Workers: resolveInt(genWorkers, cfg.Generate.Workers),
			Logger:  logger,
		}
		output := resolveString(genOutput, cfg.Generate.Output, ".")
		force := resolveBool(genForce, cfg.Generate.Force)

		if !codegen.Registered(opts.Dialect) {
			return cli.ConfigError(
				fmt.Sprintf("unknown dialect %q", opts.Dialect),
				fmt.Errorf("supported dialects: %s", strings.Join(generator.Dialects(), ", ")),
			)
		}
		if output == stdoutOutput {
			opts.Config.Options["flat"] = true
		}

		sources, err := loadSources(ctx, args, genAll)
		if err != nil {
			return err
		}

		if genDumpBeans {
			return dumpBeans(sources, opts.Config.Client)
		}

		ledger, closeLedger, err := openLedger(ctx)
		if err != nil {
			return err
		}
		defer closeLedger()

		g := &generation{opts: opts, output: output, force: force, ledger: ledger}
		if err := g.run(ctx, sources); err != nil {
			return err
		}

		if genWatch {
			return g.watch(ctx, sources)
		}
		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genDialect, "dialect", "", "output dialect: "+strings.Join(generator.Dialects(), ", "))
	f.StringVar(&genOutput, "output", "", `output directory, or "-" for stdout (default: .)`)
	f.StringVar(&genPackage, "package", "", "package of the generated class")
	f.StringVar(&genClass, "class", "", "generated class name (default: by node role)")
	f.BoolVar(&genClient, "client", false, "generate a client node configuration")
	f.BoolVar(&genForce, "force", false, "generate even if the ledger shows no change")
	f.IntVar(&genWorkers, "workers", 0, "clusters generated in parallel (default: GOMAXPROCS)")
	f.BoolVar(&genAll, "all", false, "generate every cluster in the store")
	f.BoolVar(&genWatch, "watch", false, "regenerate when input files change")
	f.BoolVar(&genDumpBeans, "dump-beans", false, "print the assembled bean tree instead of generating")
}

// generation holds the resolved settings of one generate invocation.
type generation struct {
	opts   generator.Options
	output string
	force  bool
	ledger *store.Ledger
}

// run generates sources, skipping those the ledger shows as unchanged, and
// records the written files.
func (g *generation) run(ctx context.Context, sources []source) error {
	if g.ledger != nil {
		if err := g.ledger.EnsureSchema(ctx); err != nil {
			return cli.GeneralError("preparing generation ledger", err)
		}
	}

	inputs := make([]generator.Input, 0, len(sources))
	for _, src := range sources {
		skip, err := g.unchanged(ctx, src)
		if err != nil {
			return err
		}
		if skip {
			logger.Info("cluster unchanged, skipped (use --force to regenerate)", "cluster", src.name)
			continue
		}
		inputs = append(inputs, generator.Input{Name: src.name, Cluster: src.cluster})
	}
	if len(inputs) == 0 {
		return nil
	}

	results, err := generator.GenerateAll(ctx, inputs, g.opts)
	if err != nil {
		if errors.Is(err, codegen.ErrNotImplemented) {
			return cli.ConfigError(fmt.Sprintf("dialect %q", g.opts.Dialect), err)
		}
		return cli.GeneralError("generation failed", err)
	}

	for _, r := range results {
		if err := g.write(r); err != nil {
			return err
		}
		if g.ledger != nil && g.output != stdoutOutput {
			err := g.ledger.Record(ctx, store.Record{
				Cluster:        r.Name,
				Checksum:       r.Checksum,
				CodegenVersion: generator.CodegenVersion,
				FileNames:      r.FileNames(),
			})
			if err != nil {
				return cli.GeneralError("recording generation", err)
			}
		}
	}
	return nil
}

func (g *generation) unchanged(ctx context.Context, src source) (bool, error) {
	if g.ledger == nil || g.force || g.output == stdoutOutput {
		return false, nil
	}
	last, err := g.ledger.Last(ctx, src.name)
	if err != nil {
		return false, cli.GeneralError("checking generation ledger", err)
	}
	return store.ShouldSkip(last, generator.Checksum(src.cluster, g.opts), generator.CodegenVersion), nil
}

func (g *generation) write(r generator.Result) error {
	for _, name := range r.FileNames() {
		content := r.Files[name]

		if g.output == stdoutOutput {
			if _, err := os.Stdout.Write(content); err != nil {
				return cli.GeneralError("writing to stdout", err)
			}
			continue
		}

		outPath := filepath.Join(g.output, name)
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return cli.GeneralError("creating output directory", err)
		}
		if err := os.WriteFile(outPath, content, 0o644); err != nil {
			return cli.GeneralError(fmt.Sprintf("writing %s", outPath), err)
		}
		logger.Info("generated", "cluster", r.Name, "file", outPath)
	}
	return nil
}

// watch regenerates file sources when they change, until ctx is canceled.
// Store sources are not watched.
func (g *generation) watch(ctx context.Context, sources []source) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return cli.GeneralError("starting file watcher", err)
	}
	defer func() { _ = watcher.Close() }()

	byPath := make(map[string]source)
	for _, src := range sources {
		if src.path == "" {
			continue
		}
		abs, err := filepath.Abs(src.path)
		if err != nil {
			return cli.GeneralError("resolving input path", err)
		}
		byPath[abs] = src
		// Watch the directory: editors often replace files on save.
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return cli.GeneralError("watching "+src.path, err)
		}
	}
	if len(byPath) == 0 {
		return cli.ConfigError("--watch requires at least one cluster file", nil)
	}

	logger.Info("watching for changes", "files", len(byPath))
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			src, watched := byPath[filepath.Clean(ev.Name)]
			if !watched {
				continue
			}

			next, err := loadFile(src.path)
			if err != nil {
				logger.Error("reloading cluster", "cluster", src.name, "error", err)
				continue
			}
			if err := g.run(ctx, []source{next}); err != nil {
				logger.Error("regenerating cluster", "cluster", src.name, "error", err)
			}
		}
	}
}

// dumpBeans prints the assembled bean tree of every source.
func dumpBeans(sources []source, client bool) error {
	a := assemble.New(defaults.Standard())
	dump := spew.ConfigState{
		Indent:                  "  ",
		SortKeys:                true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		DisableMethods:          true,
	}
	for _, src := range sources {
		fmt.Printf("# %s\n", src.name)
		dump.Fdump(os.Stdout, a.IgniteConfiguration(src.cluster, client))
	}
	return nil
}
