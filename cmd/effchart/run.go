package main

import (
	"github.com/spf13/pflag"

	"github.com/iafilius/CropEfficiencyChart/src/analysis"
	"github.com/iafilius/CropEfficiencyChart/src/config"
	"github.com/iafilius/CropEfficiencyChart/src/logging"
	"github.com/iafilius/CropEfficiencyChart/src/render"
	"github.com/iafilius/CropEfficiencyChart/src/types"
)

type options struct {
	configPath string
	input      string
	output     string
	font       string
	locale     string
	logLevel   string
}

// loadConfig layers explicitly set flags over the file/env configuration.
func loadConfig(flags *pflag.FlagSet, o options) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	set := func(name string, dst *string, v string) {
		if flags != nil && flags.Changed(name) {
			*dst = v
		}
	}
	set("input", &cfg.Input, o.input)
	set("output", &cfg.Output, o.output)
	set("font", &cfg.FontPath, o.font)
	set("locale", &cfg.Locale, o.locale)
	set("log-level", &cfg.LogLevel, o.logLevel)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run is the whole batch: load, render, write. It returns the written path.
// Nothing is written unless every earlier step succeeded.
func run(cfg *config.Config) (string, error) {
	logging.SetLogLevel(cfg.LogLevel)

	tbl, st, err := analysis.LoadTable(cfg.Input)
	if err != nil {
		return "", err
	}
	if st.Skipped > 0 {
		logging.Debugf("%d malformed rows ignored in %s", st.Skipped, cfg.Input)
	}

	theme := render.DefaultTheme()
	theme.Width, theme.Height = cfg.Width, cfg.Height
	theme.Labels = render.LabelsFor(cfg.Locale)
	if cfg.FontPath != "" {
		f, err := render.LoadFont(cfg.FontPath)
		if err != nil {
			return "", err
		}
		theme.Font = f
	} else if cfg.Locale == types.LocaleChinese {
		logging.Warnf("locale zh without --font: CJK glyphs will not render with the bundled font")
	}

	img, status, err := render.Render(tbl, theme)
	if err != nil {
		return "", err
	}
	for _, s := range status {
		logging.Debugf("panel %q rendered=%v", s.Title, s.Rendered)
	}
	if err := render.WritePNG(cfg.Output, img); err != nil {
		return "", err
	}
	return cfg.Output, nil
}
