// Package doctor reports problems in cluster documents before generation.
//
// The doctor walks a cluster document the way the assembler does and flags
// input that would silently produce less configuration than expected:
// unrecognized variant kinds, unknown event groups, store factories whose
// JDBC dialect has no data source, and duplicate cache or file system names.
// It then runs the generator and, when a ledger is available, compares the
// document against the last recorded generation.
//
// Example usage:
//
//	d := doctor.New(doctor.Options{Ledger: ledger})
//	report, err := d.Run(ctx, "prod", cluster)
//	if err != nil {
//		log.Fatal(err)
//	}
//	report.Print(os.Stdout, true) // verbose=true
package doctor

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/ssidorov-gg/apache-ignite/internal/assemble"
	"github.com/ssidorov-gg/apache-ignite/internal/defaults"
	"github.com/ssidorov-gg/apache-ignite/internal/javagen"
	"github.com/ssidorov-gg/apache-ignite/internal/store"
	"github.com/ssidorov-gg/apache-ignite/pkg/generator"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

const (
	categoryDocument   = "Cluster Document"
	categoryKinds      = "Variant Kinds"
	categoryEvents     = "Event Types"
	categorySources    = "Data Sources"
	categoryGeneration = "Generation"
	categoryLedger     = "Generation State"
)

// Options configures a Doctor.
type Options struct {
	// Generator selects the dialect and options the cluster is checked with.
	Generator generator.Options

	// Ledger enables the generation state checks when non-nil.
	Ledger *store.Ledger

	// Defaults are the tables the document is assembled against. Nil
	// selects the built-in tables.
	Defaults *defaults.Set
}

// Doctor checks cluster documents.
type Doctor struct {
	opts Options
	dflt *defaults.Set
}

// New creates a new Doctor instance.
func New(opts Options) *Doctor {
	dflt := opts.Defaults
	if dflt == nil {
		dflt = defaults.Standard()
	}
	return &Doctor{opts: opts, dflt: dflt}
}

// Run executes all checks against cluster and returns a report. id names the
// cluster in the ledger. Errors are returned only for ledger failures.
func (d *Doctor) Run(ctx context.Context, id string, cluster model.Object) (*Report, error) {
	report := &Report{}

	d.checkDocument(cluster, report)
	d.checkKinds(cluster, report)
	d.checkEvents(cluster, report)
	d.checkDataSources(cluster, report)
	d.checkGeneration(cluster, report)

	if d.opts.Ledger != nil {
		if err := d.checkLedger(ctx, id, cluster, report); err != nil {
			return nil, fmt.Errorf("checking generation state: %w", err)
		}
	}

	return report, nil
}

// checkDocument reports the document shape and duplicate names.
func (d *Doctor) checkDocument(cluster model.Object, report *Report) {
	if cluster.String("name") == "" {
		report.AddCheck(CheckResult{
			Category: categoryDocument,
			Name:     "name",
			Status:   StatusWarn,
			Message:  "Cluster has no name",
			FixHint:  "Set 'name' so generated files and logs can be attributed",
		})
	} else {
		report.AddCheck(CheckResult{
			Category: categoryDocument,
			Name:     "name",
			Status:   StatusPass,
			Message:  fmt.Sprintf("Cluster %q", cluster.String("name")),
		})
	}

	caches := cluster.Caches()
	igfss := cluster.Igfss()
	domains := 0
	for _, c := range caches {
		domains += len(c.Domains())
	}
	report.AddCheck(CheckResult{
		Category: categoryDocument,
		Name:     "contents",
		Status:   StatusPass,
		Message:  fmt.Sprintf("%d caches, %d domain models, %d file systems", len(caches), domains, len(igfss)),
	})

	d.checkUnique(report, "cache_names", "cache", caches)
	d.checkUnique(report, "igfs_names", "file system", igfss)
}

func (d *Doctor) checkUnique(report *Report, name, what string, items []model.Object) {
	seen := make(map[string]int)
	var dups []string
	for _, item := range items {
		n := item.String("name")
		seen[n]++
		if seen[n] == 2 {
			dups = append(dups, n)
		}
	}
	if len(dups) == 0 {
		return
	}
	report.AddCheck(CheckResult{
		Category: categoryDocument,
		Name:     name,
		Status:   StatusWarn,
		Message:  fmt.Sprintf("Duplicate %s names: %s", what, strings.Join(dups, ", ")),
		Details:  "Objects with the same name share a generated variable or factory method name",
		FixHint:  fmt.Sprintf("Give every %s a unique name", what),
	})
}

// checkKinds reports kind tags that select no variant. Such sections are
// skipped by the assembler without error.
func (d *Doctor) checkKinds(cluster model.Object, report *Report) {
	var problems []string
	checked := 0

	for _, f := range assemble.Families() {
		var scopes []scopedObject
		switch f.Scope {
		case assemble.ScopeCluster:
			scopes = []scopedObject{{"cluster", cluster}}
		case assemble.ScopeCache:
			for _, c := range cluster.Caches() {
				scopes = append(scopes, scopedObject{"cache " + c.String("name"), c})
			}
		}

		for _, s := range scopes {
			for _, tagged := range kindTagged(s.obj, f) {
				kind := tagged.String("kind")
				if kind == "" {
					continue
				}
				checked++
				if !slices.Contains(f.Kinds, kind) {
					problems = append(problems, fmt.Sprintf("%s: %s kind %q (known: %s)",
						s.where, f.Name, kind, strings.Join(f.Kinds, ", ")))
				}
			}
		}
	}

	if len(problems) > 0 {
		report.AddCheck(CheckResult{
			Category: categoryKinds,
			Name:     "known",
			Status:   StatusWarn,
			Message:  fmt.Sprintf("%d unrecognized kind tags; those sections will not be generated", len(problems)),
			Details:  strings.Join(problems, "\n"),
			FixHint:  "Use one of the known kinds or remove the section",
		})
		return
	}

	report.AddCheck(CheckResult{
		Category: categoryKinds,
		Name:     "known",
		Status:   StatusPass,
		Message:  fmt.Sprintf("All %d kind tags recognized", checked),
	})
}

type scopedObject struct {
	where string
	obj   model.Object
}

func kindTagged(obj model.Object, f assemble.Family) []model.Object {
	if f.List {
		return obj.Objects(f.Path)
	}
	if o := obj.Object(f.Path); o != nil {
		return []model.Object{o}
	}
	return nil
}

// checkEvents reports event groups without a known constant.
func (d *Doctor) checkEvents(cluster model.Object, report *Report) {
	groups := cluster.Strings("includeEventTypes")
	if len(groups) == 0 {
		return
	}

	var unknown []string
	for _, g := range groups {
		if _, ok := d.dflt.EventGroup(g); !ok {
			unknown = append(unknown, g)
		}
	}

	if len(unknown) > 0 {
		known := make([]string, 0, len(d.dflt.EventGroups))
		for _, g := range d.dflt.EventGroups {
			known = append(known, g.Value)
		}
		report.AddCheck(CheckResult{
			Category: categoryEvents,
			Name:     "groups",
			Status:   StatusWarn,
			Message:  fmt.Sprintf("Unknown event groups are ignored: %s", strings.Join(unknown, ", ")),
			Details:  "Known groups: " + strings.Join(known, ", "),
		})
		return
	}

	report.AddCheck(CheckResult{
		Category: categoryEvents,
		Name:     "groups",
		Status:   StatusPass,
		Message:  fmt.Sprintf("%d event groups recorded", len(groups)),
	})
}

// checkDataSources reports store factories whose data source cannot be
// built and lists the secrets the generated code will read.
func (d *Doctor) checkDataSources(cluster model.Object, report *Report) {
	dialects := assemble.Dialects()

	var problems []string
	for _, c := range cluster.Caches() {
		factory := c.Object("cacheStoreFactory")
		kind := factory.String("kind")
		if kind == "" {
			continue
		}
		src := factory.Object(kind)
		if src.String("dataSourceBean") == "" {
			continue
		}
		if dialect := src.String("dialect"); !slices.Contains(dialects, dialect) {
			problems = append(problems, fmt.Sprintf("cache %s: dialect %q", c.String("name"), dialect))
		}
	}

	if len(problems) > 0 {
		report.AddCheck(CheckResult{
			Category: categorySources,
			Name:     "dialects",
			Status:   StatusFail,
			Message:  "Store factories reference data sources with unsupported dialects",
			Details:  strings.Join(problems, "\n"),
			FixHint:  "Use one of: " + strings.Join(dialects, ", "),
		})
	}

	cfg := assemble.New(d.dflt).IgniteConfiguration(cluster, d.client())
	sources := javagen.CollectDataSources(cfg)
	if len(sources) == 0 && len(problems) == 0 {
		return
	}

	ids := make([]string, 0, len(sources))
	for _, ds := range sources {
		ids = append(ids, ds.ID)
	}
	report.AddCheck(CheckResult{
		Category: categorySources,
		Name:     "singletons",
		Status:   StatusPass,
		Message:  fmt.Sprintf("%d data sources", len(sources)),
		Details:  strings.Join(ids, "\n"),
	})

	if javagen.HasSecrets(cfg) {
		report.AddCheck(CheckResult{
			Category: categorySources,
			Name:     "secrets",
			Status:   StatusWarn,
			Message:  fmt.Sprintf("Generated code reads credentials from %s", javagen.SecretsFile),
			FixHint:  fmt.Sprintf("Ship %s on the node classpath", javagen.SecretsFile),
		})
	}
}

// checkGeneration runs the selected dialect.
func (d *Doctor) checkGeneration(cluster model.Object, report *Report) {
	files, err := generator.Generate(cluster, d.opts.Generator)
	if err != nil {
		report.AddCheck(CheckResult{
			Category: categoryGeneration,
			Name:     "generate",
			Status:   StatusFail,
			Message:  "Generation failed",
			Details:  err.Error(),
		})
		return
	}

	names := generator.Result{Files: files}.FileNames()
	report.AddCheck(CheckResult{
		Category: categoryGeneration,
		Name:     "generate",
		Status:   StatusPass,
		Message:  fmt.Sprintf("Generated %d files", len(files)),
		Details:  strings.Join(names, "\n"),
	})
}

// checkLedger compares cluster with its last recorded generation.
func (d *Doctor) checkLedger(ctx context.Context, id string, cluster model.Object, report *Report) error {
	last, err := d.opts.Ledger.Last(ctx, id)
	if err != nil {
		return err
	}

	if last == nil {
		report.AddCheck(CheckResult{
			Category: categoryLedger,
			Name:     "recorded",
			Status:   StatusWarn,
			Message:  fmt.Sprintf("No generation recorded for %s", id),
			FixHint:  fmt.Sprintf("Run 'ignitegen generate %s'", id),
		})
		return nil
	}

	checksum := generator.Checksum(cluster, d.opts.Generator)
	switch {
	case last.Checksum != checksum:
		report.AddCheck(CheckResult{
			Category: categoryLedger,
			Name:     "in_sync",
			Status:   StatusWarn,
			Message:  "Cluster has changed since last generation",
			Details:  fmt.Sprintf("Current checksum: %s...\nLedger checksum:  %s...", short(checksum), short(last.Checksum)),
			FixHint:  fmt.Sprintf("Run 'ignitegen generate %s'", id),
		})
	case last.CodegenVersion != generator.CodegenVersion:
		report.AddCheck(CheckResult{
			Category: categoryLedger,
			Name:     "in_sync",
			Status:   StatusWarn,
			Message:  "Codegen version has changed",
			Details:  fmt.Sprintf("Current: %s, ledger: %s", generator.CodegenVersion, last.CodegenVersion),
			FixHint:  fmt.Sprintf("Run 'ignitegen generate %s' to regenerate", id),
		})
	default:
		report.AddCheck(CheckResult{
			Category: categoryLedger,
			Name:     "in_sync",
			Status:   StatusPass,
			Message:  fmt.Sprintf("Generated files are up to date (%s)", last.GeneratedAt.Format("2006-01-02 15:04")),
		})
	}
	return nil
}

func (d *Doctor) client() bool {
	return d.opts.Generator.Config != nil && d.opts.Generator.Config.Client
}

func short(checksum string) string {
	if len(checksum) > 16 {
		return checksum[:16]
	}
	return checksum
}
