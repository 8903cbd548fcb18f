package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"temple-booking/cmd/bootstrap"
	"temple-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/cockroachdb/errors"
)

const (
	cmdApply  = "apply"
	cmdStatus = "status"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the versioned migration files")
	bin := flag.String("atlas", "atlas", "atlas binary name or path")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: migrate [flags] %s|%s\n", cmdApply, cmdStatus)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := bootstrap.NewLogger(cfg)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, flag.Arg(0), *bin, *dir, cfg.DB.BuildDSN(), *dryRun); err != nil {
		slog.Error("Migration failed", "error", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, command, bin, dir, dbURL string, dryRun bool) error {
	wd, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return errors.Wrap(err, "prepare migration directory")
	}
	defer wd.Close()

	client, err := atlasexec.NewClient(wd.Path(), bin)
	if err != nil {
		return errors.Wrap(err, "init atlas client")
	}

	switch command {
	case cmdApply, "":
		res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
			URL:    dbURL,
			DryRun: dryRun,
		})
		if err != nil {
			return errors.Wrap(err, "apply migrations")
		}
		for _, f := range res.Applied {
			slog.Info("Migration applied", "version", f.Version, "name", f.Name)
		}
		slog.Info("Schema is up to date", "current", res.Current, "target", res.Target, "dry_run", dryRun)
		return nil
	case cmdStatus:
		st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: dbURL})
		if err != nil {
			return errors.Wrap(err, "read migration status")
		}
		slog.Info("Migration status",
			"status", st.Status,
			"current", st.Current,
			"next", st.Next,
			"pending", len(st.Pending))
		return nil
	default:
		flag.Usage()
		return errors.Newf("unknown command %q", command)
	}
}
