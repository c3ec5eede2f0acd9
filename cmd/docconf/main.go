package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docconf/internal/config"
	"git.home.luguber.info/inful/docconf/internal/generator"
	"git.home.luguber.info/inful/docconf/internal/links"
	"git.home.luguber.info/inful/docconf/internal/logfields"
	"git.home.luguber.info/inful/docconf/internal/observability"
	"git.home.luguber.info/inful/docconf/internal/theme"
	_ "git.home.luguber.info/inful/docconf/internal/theme/themes/basic"
	_ "git.home.luguber.info/inful/docconf/internal/theme/themes/rtd"
	"git.home.luguber.info/inful/docconf/internal/version"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"docconf.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Generate struct {
		Output string `short:"o" help:"Output directory for the generated host configuration"`
	} `cmd:"" help:"Generate the host configuration and static assets"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`

	Validate struct{} `cmd:"" help:"Validate the configuration file and report the resolved theme"`

	Links struct {
		Name    string `arg:"" help:"Link template name"`
		Version string `arg:"" help:"Version segment to substitute"`
	} `cmd:"" help:"Expand a cross-reference link template"`

	Watch struct {
		Output string `short:"o" help:"Output directory for the generated host configuration"`
	} `cmd:"" help:"Generate, then regenerate on configuration changes"`

	Version struct{} `cmd:"" help:"Print version information"`
}

func main() {
	ctx := kong.Parse(&CLI)

	observability.SetupLogging(config.LoggingConfig{}, CLI.Verbose)

	var err error
	switch ctx.Command() {
	case "generate":
		err = runGenerate(CLI.Generate.Output)
	case "init":
		err = runInit(CLI.Config, CLI.Init.Force)
	case "validate":
		err = runValidate(CLI.Config)
	case "links <name> <version>":
		err = runLinks(CLI.Config, CLI.Links.Name, CLI.Links.Version)
	case "watch":
		err = runWatch(CLI.Watch.Output)
	case "version":
		fmt.Printf("docconf %s (commit %s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
	}
	if err != nil {
		slog.Error("Command failed", logfields.Error(err))
		os.Exit(1)
	}
}

func loadConfig() (*config.SiteConfig, error) {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return nil, err
	}
	observability.SetupLogging(cfg.Logging, CLI.Verbose)
	return cfg, nil
}

func runGenerate(outputDir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	g := generator.NewGenerator(cfg, outputDir)
	slog.Info("Generating host configuration",
		logfields.Path(g.OutputDir()),
		logfields.Version(cfg.Project.Release))
	return g.Generate(context.Background())
}

func runInit(configPath string, force bool) error {
	slog.Info("Initializing configuration", logfields.Path(configPath), "force", force)
	return config.Init(configPath, force)
}

func runValidate(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	name, _ := theme.Resolve(cfg)
	fmt.Printf("configuration valid: project %s %s, theme %s\n", cfg.Project.Name, cfg.Project.Release, name)
	return nil
}

func runLinks(configPath, name, linkVersion string) error {
	var cfg *config.SiteConfig
	if _, statErr := os.Stat(configPath); statErr == nil {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}
	url, err := links.NewSet(cfg.Links).Expand(name, linkVersion)
	if err != nil {
		return err
	}
	slog.Debug("Expanded link template", logfields.Template(name), logfields.Version(linkVersion))
	fmt.Println(url)
	return nil
}

func runWatch(outputDir string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	w, err := generator.NewWatcher(CLI.Config, outputDir)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
