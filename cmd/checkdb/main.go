// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Command checkdb connects to the configured database and prints every
// public table with its row count. With one of the -flush flags it first
// drops cached page contexts from Valkey, e.g. after editing content
// directly in the database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"annecy/internal/cache"
	"annecy/internal/config"
	"annecy/internal/database"
)

// options selects the cached page contexts to drop before the check.
type options struct {
	flushAll    bool
	flushPrefix string
	flushPath   string
}

func (o options) flushing() bool {
	return o.flushAll || o.flushPrefix != "" || o.flushPath != ""
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		slog.Error("invalid arguments", "error", err)
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		slog.Error("checkdb failed", "error", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("checkdb", flag.ContinueOnError)
	fs.BoolVar(&o.flushAll, "flush-cache", false, "drop every cached page context")
	fs.StringVar(&o.flushPrefix, "flush-prefix", "", "drop cached page contexts whose path starts with `prefix`, e.g. /en/")
	fs.StringVar(&o.flushPath, "flush-path", "", "drop the cached page context of one `path`")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return o, nil
}

func run(opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if opts.flushing() {
		addr := cfg.ValkeyAddr()
		if addr == "" {
			return errors.New("flush requested but VALKEY_HOST is empty")
		}
		client, err := cache.ConnectValkey(addr, cfg.ValkeyPassword)
		if err != nil {
			return err
		}
		defer client.Close()
		flushPages(ctx, cache.NewPageCache(client, cfg.PageCacheTTL), opts)
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	tables, err := database.Inspect(ctx, db)
	if err != nil {
		return err
	}

	slog.Info("connected", "host", cfg.DBHost, "db", cfg.DBName, "tables", len(tables))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tROWS")
	for _, t := range tables {
		fmt.Fprintf(w, "%s\t%d\n", t.Name, t.Rows)
	}
	return w.Flush()
}

// flushPages drops the page contexts selected by o. Keys are lower case,
// so the prefix is too.
func flushPages(ctx context.Context, pc *cache.PageCache, o options) {
	switch {
	case o.flushAll:
		pc.InvalidateAll(ctx)
	case o.flushPrefix != "":
		pc.InvalidatePrefix(ctx, strings.ToLower(strings.TrimSpace(o.flushPrefix)))
	}
	if o.flushPath != "" {
		pc.Invalidate(ctx, cache.PathKey(o.flushPath))
	}
}
