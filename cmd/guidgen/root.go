package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/guidgen"
	"github.com/Lzww0608/guidgen/internal/config"
	"github.com/Lzww0608/guidgen/internal/logging"
	"github.com/Lzww0608/guidgen/store/pebblestore"
	"github.com/Lzww0608/guidgen/store/sqlstore"
)

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "guidgen",
		Short: "Generate UUIDs",
		Long: "guidgen prints UUIDs of versions 1 through 8.\n\n" +
			"Settings come from flags, GUIDGEN_* environment variables and an optional config file.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.NewViper(configFile)
			if err != nil {
				return err
			}
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Decode(v)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	f.StringP("scheme", "s", config.Defaults.Scheme, "UUID scheme: "+strings.Join(schemeNames(), ", "))
	f.IntP("count", "n", config.Defaults.Count, "number of UUIDs to generate")
	f.String("namespace", config.Defaults.Namespace, "namespace for name-based schemes: dns, url, oid, x500 or a UUID")
	f.String("name", config.Defaults.Name, "name for name-based schemes")
	f.String("domain", config.Defaults.Domain, "DCE domain for v2: person, group, org or 0-255")
	f.Int64("local-id", config.Defaults.LocalID, "DCE local ID for v2; negative uses the process UID or GID")
	f.StringP("format", "f", config.Defaults.Format, "output format: "+strings.Join(formats, ", "))
	f.String("log-level", config.Defaults.LogLevel, "log level: debug, info, warn, error")
	f.String("state-backend", config.Defaults.StateBackend, "where to persist generator state: none, pebble, mysql")
	f.String("state-dir", config.Defaults.StateDir, "Pebble directory for the pebble backend")
	f.String("state-dsn", config.Defaults.StateDSN, "MySQL DSN for the mysql backend")
	f.String("state-name", config.Defaults.StateName, "state entry name, for generators sharing a backend")

	return cmd
}

// run generates cfg.Count UUIDs and writes them to out. Logs go to errOut.
func run(out, errOut io.Writer, cfg config.Config) (err error) {
	log, err := logging.New(errOut, cfg.LogLevel)
	if err != nil {
		return err
	}

	scheme, ok := schemes[cfg.Scheme]
	if !ok {
		return fmt.Errorf("unknown scheme %q, want one of %s", cfg.Scheme, strings.Join(schemeNames(), ", "))
	}
	req, err := newRequest(cfg)
	if err != nil {
		return err
	}

	opts := []guidgen.Option{guidgen.WithLogger(log)}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer func() {
			if cerr := closeStore(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		opts = append(opts, guidgen.WithStateStore(store))
	}

	gen := guidgen.NewGenerator(opts...)
	defer func() {
		if cerr := gen.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	ids := make([]guidgen.UUID, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		id, err := scheme(gen, req)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}
	log.Debug("generated", slog.String("scheme", cfg.Scheme), slog.Int("count", len(ids)))

	return writeIDs(out, cfg.Format, ids)
}

func openStore(cfg config.Config) (guidgen.StateStore, func() error, error) {
	switch cfg.StateBackend {
	case config.BackendPebble:
		s, err := pebblestore.Open(pebblestore.Options{DataDir: cfg.StateDir, Key: cfg.StateName, Sync: true})
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.BackendMySQL:
		s, err := sqlstore.Open("mysql", cfg.StateDSN, cfg.StateName)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
	return nil, nil, nil
}
