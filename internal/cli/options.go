// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"radmarkers/internal/version"
)

// EnvPrefix prefixes every environment override (RADMARKERS_THRESHOLD, ...).
const EnvPrefix = "RADMARKERS"

// Usage is the long help text of the command.
var Usage = fmt.Sprintf(`radmarkers: cross-individual RAD tag clustering and segregation patterns

Reads a pools file of individuals ("name mid" per line) and, for each
individual, <directory>/<name><suffix>. Local clusters sharing a sequence
(or, with --hamming, a near-identical one) are merged into loci; loci are
reported with the presence pattern of every allele across individuals.

Every flag may also be set in a --config file or as %s_<FLAG>
(dashes become underscores).

Version: %s`, EnvPrefix, version.Version)

// Options holds every setting after flags, environment and config file are merged.
type Options struct {
	PoolsFile string `mapstructure:"-"`

	// Input
	Directory string `mapstructure:"directory"`
	Suffix    string `mapstructure:"suffix"`
	Threshold int    `mapstructure:"threshold"`
	Fragments bool   `mapstructure:"fragments"`

	// Clustering
	Hamming    int  `mapstructure:"hamming"`
	Singletons bool `mapstructure:"singletons"`

	// Output
	Format        string `mapstructure:"format"`
	Legacy        bool   `mapstructure:"legacy"`
	SNPs          bool   `mapstructure:"snps"`
	Qualities     bool   `mapstructure:"qualities"`
	QualityOffset int    `mapstructure:"quality-offset"`
	MetricsFile   string `mapstructure:"metrics-file"`
	SQLite        string `mapstructure:"sqlite"`

	// Misc
	Verbose bool   `mapstructure:"verbose"`
	Config  string `mapstructure:"config"`
}

// Register wires every option onto fs with its default.
func Register(fs *pflag.FlagSet) {
	// Input
	fs.StringP("directory", "d", ".", "directory holding the tag files")
	fs.StringP("suffix", "s", ".tags.tsv", "tag file suffix appended to each individual name")
	fs.IntP("threshold", "t", 0, "minimum read (or fragment) count for a tag to be kept")
	fs.BoolP("fragments", "f", false, "use fragment counts instead of read counts")

	// Clustering
	fs.IntP("hamming", "m", 0, "merge clusters whose tags differ in at most N bases (0 = exact only)")
	fs.BoolP("singletons", "i", false, "keep tags seen in a single individual")

	// Output
	fs.String("format", "tsv", "report format: tsv | legacy | json | jsonl | yaml")
	fs.BoolP("legacy", "o", false, "legacy nested text report (same as --format legacy)")
	fs.BoolP("snps", "n", false, "include per-base SNP rows")
	fs.BoolP("qualities", "q", false, "include quality rows")
	fs.Int("quality-offset", 33, "ASCII offset of quality strings")
	fs.String("metrics-file", "", "write Prometheus text-format metrics to this file")
	fs.String("sqlite", "", "also export the report to this SQLite database")

	// Misc
	fs.BoolP("verbose", "v", false, "report progress on stderr")
	fs.String("config", "", "settings file (yaml, toml or json)")
}

// Load merges fs (already parsed), RADMARKERS_* environment variables and the
// optional --config file into Options. Precedence: flag > env > file > default.
func Load(v *viper.Viper, fs *pflag.FlagSet) (Options, error) {
	var o Options
	if err := v.BindPFlags(fs); err != nil {
		return o, err
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return o, fmt.Errorf("read config %s: %w", cfg, err)
		}
	}
	if err := v.Unmarshal(&o); err != nil {
		return o, fmt.Errorf("decode settings: %w", err)
	}

	if o.Legacy {
		if v.IsSet("format") && o.Format != "legacy" {
			return o, fmt.Errorf("--legacy conflicts with --format %s", o.Format)
		}
		o.Format = "legacy"
	}
	return o, nil
}

// Validate checks ranges and that Format has a writer.
func Validate(o Options, knownFormat func(string) bool) error {
	if o.Threshold < 0 {
		return errors.New("--threshold must be ≥ 0")
	}
	if o.Hamming < 0 {
		return errors.New("--hamming must be ≥ 0")
	}
	if o.Suffix == "" {
		return errors.New("--suffix must not be empty")
	}
	if o.QualityOffset < 0 || o.QualityOffset > 126 {
		return fmt.Errorf("--quality-offset must be in [0, 126], got %d", o.QualityOffset)
	}
	if !knownFormat(o.Format) {
		return fmt.Errorf("invalid --format %q", o.Format)
	}
	return nil
}
