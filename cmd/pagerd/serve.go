package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pagerd/internal/common/fsutil"
	"pagerd/internal/config"
	"pagerd/internal/controls"
	"pagerd/internal/httpapi"
	"pagerd/internal/pager"
	"pagerd/pkg/types"
)

// configSearchPath is tried in order when neither --config nor PAGERD_CONFIG is set.
var configSearchPath = []string{"pagerd.yaml", "pagerd.toml", "pagerd.json", "~/.config/pagerd/pagerd.yaml"}

type serveFlags struct {
	addr           string
	defaultID      string
	maxSize        int
	boundaryLinks  bool
	templatePath   string
	corsOrigins    string
	maxBodyBytes   int64
	requestTimeout time.Duration
}

func buildServeCmd(rf *rootFlags, sf *serveFlags) *cobra.Command {
	defaultAddr := ":8080"
	if v := os.Getenv("PAGERD_ADDR"); v != "" {
		defaultAddr = v
	}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, rf, sf)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	f := cmd.Flags()
	f.StringVar(&sf.addr, "addr", defaultAddr, "HTTP listen address, e.g. :8080 (defaults PAGERD_ADDR)")
	f.StringVar(&sf.defaultID, "default-id", "", "Id given to instances bound without one")
	f.IntVar(&sf.maxSize, "max-size", 0, "Default number of page links")
	f.BoolVar(&sf.boundaryLinks, "boundary-links", false, "Show first/last links by default")
	f.StringVar(&sf.templatePath, "template-path", "", "Controls template reference")
	f.StringVar(&sf.corsOrigins, "cors-origins", "", "Comma-separated allowed origins; enables CORS")
	f.Int64Var(&sf.maxBodyBytes, "max-body-bytes", 0, "Maximum JSON request body size (0 selects 1MiB)")
	f.DurationVar(&sf.requestTimeout, "request-timeout", 0, "Per-request timeout (0 disables)")
	return cmd
}

// resolveConfig loads the config file, if any, and applies flags that were
// set explicitly on the command line on top of it.
func resolveConfig(cmd *cobra.Command, rf *rootFlags, sf *serveFlags) (config.Config, error) {
	var cfg config.Config
	path := rf.configPath
	if path == "" {
		path = fsutil.FirstExisting(configSearchPath...)
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("addr") || cfg.Addr == "" {
		cfg.Addr = sf.addr
	}
	if flags.Changed("default-id") {
		cfg.DefaultID = sf.defaultID
	}
	if flags.Changed("max-size") {
		cfg.MaxSize = sf.maxSize
	}
	if flags.Changed("boundary-links") {
		cfg.BoundaryLinks = sf.boundaryLinks
	}
	if flags.Changed("template-path") {
		cfg.TemplatePath = sf.templatePath
	}
	if flags.Changed("cors-origins") {
		cfg.CORS.Enabled = true
		cfg.CORS.Origins = splitCSV(sf.corsOrigins)
	}
	if flags.Changed("max-body-bytes") {
		cfg.MaxBodyBytes = sf.maxBodyBytes
	}
	if flags.Changed("request-timeout") {
		cfg.RequestTimeoutSeconds = int(sf.requestTimeout / time.Second)
	}
	if flags.Changed("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel = rf.logLevel
	}
	if flags.Changed("log-format") || cfg.LogFormat == "" {
		cfg.LogFormat = rf.logFormat
	}
	return cfg, cfg.Validate()
}

// pagerConfig maps the file configuration onto the pager's settings.
func pagerConfig(cfg config.Config, log *zerolog.Logger) pager.Config {
	opts := controls.Options{
		MaxSize:       cfg.MaxSize,
		BoundaryLinks: cfg.BoundaryLinks,
	}
	if cfg.AutoHide != nil {
		opts.ShowSinglePage = !*cfg.AutoHide
	}
	if cfg.DirectionLinks != nil {
		opts.HideDirectionLinks = !*cfg.DirectionLinks
	}
	return pager.Config{
		DefaultID: cfg.DefaultID,
		Controls:  opts,
		Template:  controls.TemplateConfig{Path: cfg.TemplatePath, String: cfg.TemplateString},
		Logger:    log,
	}
}

// bindPresets binds the instances listed in the config file.
func bindPresets(p *pager.Pager, presets []config.Instance) error {
	for i, in := range presets {
		inst, err := p.Bind(types.BindRequest{
			ID:            in.ID,
			Expression:    in.Expression,
			TotalItems:    in.TotalItems,
			SharePageWith: in.SharePageWith,
		})
		if err != nil {
			return fmt.Errorf("instances[%d]: %w", i, err)
		}
		if in.TotalItems == nil && in.Length > 0 {
			if err := p.SetCollectionLength(inst.ID, in.Length); err != nil {
				return fmt.Errorf("instances[%d]: %w", i, err)
			}
		}
	}
	return nil
}

func configureHTTP(cfg config.Config, log zerolog.Logger) {
	httpapi.SetLogger(log)
	httpapi.SetDefaultLogLevel(httpLogLevel(cfg.LogLevel))
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetRequestTimeout(time.Duration(cfg.RequestTimeoutSeconds) * time.Second)
	if cfg.CORS.Enabled {
		methods := cfg.CORS.Methods
		if len(methods) == 0 {
			methods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
		}
		headers := cfg.CORS.Headers
		if len(headers) == 0 {
			headers = []string{"Content-Type", "X-Log-Level", "X-Request-Id"}
		}
		httpapi.SetCORSOptions(true, cfg.CORS.Origins, methods, headers)
	}
}

// httpLogLevel maps a zerolog level name onto the HTTP layer's request levels.
func httpLogLevel(level string) string {
	switch level {
	case "trace", "debug":
		return "debug"
	case "warn", "error", "fatal", "panic":
		return "error"
	case "disabled", "off":
		return "off"
	default:
		return "info"
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := newLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	p := pager.NewWithConfig(pagerConfig(cfg, &log))
	if err := bindPresets(p, cfg.Instances); err != nil {
		return err
	}
	configureHTTP(cfg, log)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(p),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Int("instances", len(p.Instances())).Msg("pagerd listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// not ready while connections drain
	_ = p.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	log.Info().Msg("pagerd stopped")
	return nil
}
