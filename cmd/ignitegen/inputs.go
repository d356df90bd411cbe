package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ssidorov-gg/apache-ignite/internal/cli"
	"github.com/ssidorov-gg/apache-ignite/internal/store"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
	"github.com/ssidorov-gg/apache-ignite/pkg/parser"
)

// source is one cluster document to process.
type source struct {
	// name is the store id or the file name without extension.
	name string
	// path is set for documents read from a file.
	path    string
	cluster model.Object
}

// loadSources resolves arguments to cluster documents. An argument naming
// an existing file is parsed directly; anything else is a store id. With
// all set, every stored cluster is loaded.
func loadSources(ctx context.Context, args []string, all bool) ([]source, error) {
	if len(args) == 0 && !all {
		if in := cfg.ResolvedInput(""); in != "" {
			args = []string{in}
		}
	}
	if len(args) == 0 && !all {
		return nil, cli.ConfigError("no input: pass a cluster file or store id, or use --all", nil)
	}

	var (
		st      store.Store
		sources []source
	)
	defer func() {
		if st != nil {
			_ = st.Close()
		}
	}()
	openOnce := func() (store.Store, error) {
		if st != nil {
			return st, nil
		}
		var err error
		st, err = openStore(ctx)
		return st, err
	}

	if all {
		s, err := openOnce()
		if err != nil {
			return nil, err
		}
		ids, err := s.List(ctx)
		if err != nil {
			return nil, cli.GeneralError("listing clusters", err)
		}
		args = append(args, ids...)
	}

	for _, arg := range args {
		if info, err := os.Stat(arg); err == nil && !info.IsDir() {
			src, err := loadFile(arg)
			if err != nil {
				return nil, err
			}
			sources = append(sources, src)
			continue
		}

		s, err := openOnce()
		if err != nil {
			return nil, err
		}
		doc, err := s.Get(ctx, arg)
		switch {
		case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrInvalidID):
			return nil, cli.InputParseError(fmt.Sprintf("no cluster file or stored cluster named %q", arg), nil)
		case err != nil:
			return nil, cli.InputParseError(fmt.Sprintf("loading cluster %s", arg), err)
		}
		sources = append(sources, source{name: arg, cluster: doc})
	}

	return sources, nil
}

func loadFile(path string) (source, error) {
	doc, err := parser.ParseCluster(path)
	if err != nil {
		return source{}, cli.InputParseError(fmt.Sprintf("parsing %s", path), err)
	}
	base := filepath.Base(path)
	return source{
		name:    strings.TrimSuffix(base, filepath.Ext(base)),
		path:    path,
		cluster: doc,
	}, nil
}

// openLedger connects the generation ledger when a database is configured.
// It returns a nil ledger otherwise. The returned close function is never nil.
func openLedger(ctx context.Context) (*store.Ledger, func(), error) {
	noop := func() {}

	dsn, err := resolveDSN()
	if err != nil || dsn == "" {
		return nil, noop, err
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, noop, cli.DBConnectError("connecting to database", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, noop, cli.DBConnectError("connecting to database", err)
	}

	return store.NewLedger(db), func() { _ = db.Close() }, nil
}
