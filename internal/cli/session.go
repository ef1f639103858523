package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chebotarevdmitr/school-inventory/internal/auditlog"
	"github.com/chebotarevdmitr/school-inventory/internal/config"
	"github.com/chebotarevdmitr/school-inventory/internal/service"
	"github.com/chebotarevdmitr/school-inventory/internal/store"
)

// session is everything a command needs for one invocation: the resolved
// configuration, an open audit log, an initialized store and the service
// over them. Close releases them in reverse order.
type session struct {
	cfg   config.Config
	log   *auditlog.Logger
	store *store.Store
	svc   *service.EquipmentService
	out   *OutputFormatter
}

// resolveConfig loads the config file and environment, then applies any
// global flags that were set.
func resolveConfig(opts *RootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.Database != "" {
		cfg.Database = opts.Database
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func openSession(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	out := newFormatter(opts, cmd)

	cfg, err := resolveConfig(opts)
	if err != nil {
		_ = out.Error(ErrCodeConfig, "invalid configuration", err.Error())
		return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	level, _ := cfg.Level()

	logOpts := []auditlog.Option{auditlog.WithDiagnostics(cmd.ErrOrStderr())}
	if opts.Clock != nil {
		logOpts = append(logOpts, auditlog.WithClock(opts.Clock))
	}
	log, err := auditlog.Open(cfg.LogFile, level, logOpts...)
	if err != nil {
		// Open already reported this on the diagnostic writer; keep going
		// without an audit trail.
		out.VerboseLog("audit log disabled: %v", err)
	}

	if dir := filepath.Dir(cfg.Database); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			_ = log.Close()
			_ = out.Error(ErrCodeConnection, "cannot create database directory", err.Error())
			return nil, WrapExitError(ExitCommandError, "cannot create database directory", err)
		}
	}

	st, err := store.Open(cfg.Database, log)
	if err != nil {
		_ = log.Close()
		return nil, out.Fail("cannot open database", err)
	}
	if err := st.InitializeSchema(cmd.Context()); err != nil {
		_ = st.Close()
		_ = log.Close()
		return nil, out.Fail("cannot initialize schema", err)
	}
	out.VerboseLog("using database %s, audit log %s (level %s)", cfg.Database, cfg.LogFile, auditlog.LevelName(level))

	var svcOpts []service.Option
	if opts.IDGenerator != nil {
		svcOpts = append(svcOpts, service.WithIDGenerator(opts.IDGenerator))
	}

	return &session{
		cfg:   cfg,
		log:   log,
		store: st,
		svc:   service.NewEquipmentService(st, log, svcOpts...),
		out:   out,
	}, nil
}

// Close closes the store before the audit log so the store's closing entry
// is still recorded.
func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		fmt.Fprintf(s.out.GetErrWriter(), "error closing database: %v\n", err)
	}
	if err := s.log.Close(); err != nil {
		fmt.Fprintf(s.out.GetErrWriter(), "error closing audit log: %v\n", err)
	}
}
