// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package cli exposes the entities application as a command line tool.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/z5labs/compose/config"
	"github.com/z5labs/compose/example/entities/app"
	"github.com/z5labs/compose/example/entities/domainb"
	"github.com/z5labs/compose/internal/lifecycle"
	"github.com/z5labs/compose/pkg/otelslog"
	"github.com/z5labs/compose/storage/httpstore"
	"github.com/z5labs/compose/storage/jsonstore"
	"github.com/z5labs/compose/storage/memstore"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Execute runs the command line described by args. Every shutdown hook
// registered while running is executed before Execute returns, even if
// the command failed.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	r := &root{}

	cmd := r.command()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(lifecycle.NewContext(ctx, &r.life))
	shutdownErr := r.life.Shutdown().Run(context.WithoutCancel(ctx))
	return errors.Join(err, shutdownErr)
}

type root struct {
	configPath string
	envPrefix  string
	logLevel   string
	store      string
	trace      bool

	life lifecycle.Context
	log  *slog.Logger
}

func (r *root) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "entities",
		Short:        "Process entities through composed pipelines",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return r.init(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&r.configPath, "config", "", "config file (.json, .yaml, .yml or .hcl)")
	flags.StringVar(&r.envPrefix, "env-prefix", "COMPOSE", "prefix of environment variables overriding the config file")
	flags.StringVar(&r.logLevel, "log-level", "info", "log level (debug, info, warn or error)")
	flags.StringVar(&r.store, "store", "memory", `where processed entities are saved: "memory", an http(s) endpoint, or a JSON lines file given as file://PATH or a path containing a separator`)
	flags.BoolVar(&r.trace, "trace", false, "write spans to stderr")

	cmd.AddCommand(
		runCmd(r),
		runAsyncCmd(r),
		validateCmd(r),
	)
	return cmd
}

func (r *root) init(cmd *cobra.Command) error {
	lvl, err := otelslog.ParseLevel(r.logLevel)
	if err != nil {
		return err
	}
	r.log = otelslog.NewJSON(cmd.ErrOrStderr(), lvl)

	if !r.trace {
		return nil
	}
	exp, err := stdouttrace.New(stdouttrace.WithWriter(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	lifecycle.ManageOTel(&r.life, sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp)))
	return nil
}

func (r *root) application() (*app.Application, error) {
	var srcs []config.Source
	if r.configPath != "" {
		srcs = append(srcs, config.FromFile(os.DirFS(filepath.Dir(r.configPath)), filepath.Base(r.configPath)))
	}
	srcs = append(srcs, config.FromEnv(r.envPrefix))

	m, err := config.Read(srcs...)
	if err != nil {
		return nil, err
	}

	constants, err := app.NewConstants(m)
	if err != nil {
		return nil, err
	}
	entities, err := app.NewRepository(m)
	if err != nil {
		return nil, err
	}
	store, err := newStorage(r.store, r.log)
	if err != nil {
		return nil, err
	}

	deps := app.Dependencies{
		Constants: constants,
		Entities:  entities,
	}
	return app.New(deps, store, app.Logger(r.log))
}

// UnknownStoreError is returned for a --store value which names no
// supported storage.
type UnknownStoreError struct {
	Store string
}

func (e UnknownStoreError) Error() string {
	return fmt.Sprintf("unknown store: %q", e.Store)
}

func newStorage(store string, log *slog.Logger) (app.Storage, error) {
	switch {
	case store == "" || store == "memory":
		return memstore.New[domainb.Entity](), nil
	case strings.HasPrefix(store, "http://"), strings.HasPrefix(store, "https://"):
		return httpstore.New[domainb.Entity](store, httpstore.Logger(log)), nil
	case strings.HasPrefix(store, "file://"):
		path := strings.TrimPrefix(store, "file://")
		if path == "" {
			return nil, UnknownStoreError{Store: store}
		}
		return jsonstore.New[domainb.Entity](path), nil
	case strings.Contains(store, "://"):
		return nil, UnknownStoreError{Store: store}
	case strings.ContainsRune(store, '/'), strings.ContainsRune(store, filepath.Separator):
		return jsonstore.New[domainb.Entity](store), nil
	default:
		return nil, UnknownStoreError{Store: store}
	}
}

func printEntity(w io.Writer, e domainb.Entity) error {
	return json.NewEncoder(w).Encode(e)
}
