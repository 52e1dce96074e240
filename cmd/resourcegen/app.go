package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	resourcegen "github.com/goliatone/go-resourcegen"
	"github.com/goliatone/go-resourcegen/internal/config"
	"github.com/goliatone/go-resourcegen/internal/prompt"
	"github.com/goliatone/go-resourcegen/pkg/resource"
	"github.com/goliatone/go-resourcegen/pkg/schema"
)

type app struct {
	v           *viper.Viper
	cfgFile     string
	cfg         *config.Config
	logger      *zap.Logger
	ws          *resourcegen.Workspace
	picker      prompt.Picker
	interactive func() bool
}

func newApp() *app {
	return &app{
		v:      config.New(),
		logger: zap.NewNop(),
		picker: prompt.Survey(),
		interactive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}
}

func (a *app) close() {
	_ = a.logger.Sync()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "resourcegen",
		Short:         "Derive admin resource fields from declared models",
		Version:       fmt.Sprintf("%s (%s)", Version, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default ./resourcegen.yaml)")
	flags.String("schema", "", "schema file or directory")
	flags.String("lang", "", "translations directory")
	flags.String("locale", "", "locale used for labels")
	flags.String("fallback-locale", "", "locale used when a key is missing")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	bindings := map[string]string{
		"schema":          "schema",
		"lang":            "lang",
		"locale":          "locale",
		"fallback_locale": "fallback-locale",
		"log_level":       "log-level",
	}
	for key, flag := range bindings {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(newListCmd(a))
	root.AddCommand(newFieldsCmd(a))
	root.AddCommand(newOpenAPICmd(a))
	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newValidateCmd(a))
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	a.logger = logger

	options := []resourcegen.Option{
		resourcegen.WithLogger(logger),
		resourcegen.WithFallbackLocale(cfg.FallbackLocale),
	}
	if cfg.Lang != "" {
		options = append(options, resourcegen.WithTranslations(os.DirFS(cfg.Lang)))
	}

	ws, err := openWorkspace(cfg.Schema, options...)
	if err != nil {
		return err
	}
	a.ws = ws
	logger.Debug("workspace ready",
		zap.String("schema", cfg.Schema),
		zap.Int("resources", ws.Registry().Len()),
	)
	return nil
}

func openWorkspace(path string, options ...resourcegen.Option) (*resourcegen.Workspace, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	if info.IsDir() {
		return resourcegen.Open(os.DirFS(path), options...)
	}
	store, err := schema.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return resourcegen.FromStore(store, options...)
}

func (a *app) request() resource.Request {
	return resource.Request{Locale: a.cfg.Locale}
}

// resolveResource returns the resource named in args, prompting for one when
// none was given on an interactive terminal.
func (a *app) resolveResource(ctx context.Context, args []string) (*resource.Resource, error) {
	if len(args) > 0 {
		return a.ws.Resource(args[0])
	}
	if !a.interactive() {
		return nil, fmt.Errorf("resource argument is required")
	}

	choice, err := a.picker.Select(ctx, prompt.SelectConfig{
		Message:  "Resource:",
		Options:  a.ws.Registry().List(),
		PageSize: 15,
	})
	if err != nil {
		return nil, err
	}
	return a.ws.Resource(choice)
}
