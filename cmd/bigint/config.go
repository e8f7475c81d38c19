package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/calebcase/bigint"
)

// ConfigError is the class of errors for invalid configuration.
var ConfigError = errs.Class("config")

// Config holds the defaults loaded from the --config file.
type Config struct {
	Radix        int    `toml:"radix"`
	SignedBytes  bool   `toml:"signed_bytes"`
	LittleEndian bool   `toml:"little_endian"`
	Color        string `toml:"color"`
}

func defaultConfig() Config {
	return Config{
		Radix:       10,
		SignedBytes: true,
		Color:       "auto",
	}
}

// loadConfig reads a TOML file over the defaults. Unknown keys are errors.
func loadConfig(path string) (cfg Config, err error) {
	cfg = defaultConfig()

	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, ConfigError.Wrap(err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return cfg, ConfigError.New("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

func (cfg Config) validate() error {
	if cfg.Radix < bigint.MinRadix || cfg.Radix > bigint.MaxRadix {
		return ConfigError.New("radix %d out of range [%d, %d]", cfg.Radix, bigint.MinRadix, bigint.MaxRadix)
	}

	switch cfg.Color {
	case "auto", "on", "off":
	default:
		return ConfigError.New("unsupported color %q (must be auto, on or off)", cfg.Color)
	}

	return nil
}

func (cfg Config) applyColor() {
	switch cfg.Color {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}
}

// options are shared by every subcommand.
type options struct {
	configPath string
	color      string
	radix      int

	Config
}

// load resolves the effective configuration: flags override the config
// file which overrides the defaults.
func (o *options) load(cmd *cobra.Command) (err error) {
	o.Config, err = loadConfig(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("radix") {
		o.Config.Radix = o.radix
	}
	if flags.Changed("color") {
		o.Config.Color = o.color
	}

	err = o.Config.validate()
	if err != nil {
		return err
	}

	o.Config.applyColor()

	return nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "bigint",
		Short:         "Arbitrary precision integer calculator",
		Long:          `bigint evaluates and converts arbitrary precision integers.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "TOML file with default settings")
	flags.StringVar(&opts.color, "color", "auto", "colorize output (auto|on|off)")
	flags.IntVar(&opts.radix, "radix", 10, "radix of values read and printed (2-36)")

	cmd.AddCommand(
		newEvalCmd(opts),
		newConvertCmd(opts),
		newBytesCmd(opts),
		newBSVCmd(opts),
		newVersionCmd(),
	)

	return cmd
}
