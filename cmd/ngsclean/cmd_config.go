package main

import (
	"fmt"
	"os"

	"ngsclean/internal/config"
	"ngsclean/internal/design"
	"ngsclean/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgOpts = config.DefaultOptions()

	// Legacy preset switches, kept for existing launch scripts.
	softTrimmer   bool
	mediumTrimmer bool
	hardTrimmer   bool

	designSep string
)

// configCmd builds and writes <workdir>/config.yaml
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Build the pipeline configuration file",
	Long: `Goes through the command line arguments, checks the design table and writes
a YAML configuration file used by the cleaning pipeline.

The design table given by --design (design.tsv by default) must exist and be
readable: it is loaded and resolved before anything is written, and a missing,
malformed or inconsistent table fails the command.

Trimming presets (pick at most one, or pass --fastp-extra). --trimmer may be
combined with the legacy --soft-trimmer, --medium-trimmer or --hard-trimmer
switch only when both name the same preset:
  soft    cut mean quality of 10 in a window of 6 bases, allow up to 50% of bases
          with qualities below 10, allow at most 7 Ns, no average quality
          threshold, minimum read length of 15.
  medium  cut mean quality of 15 in a window of 5 bases, allow 40% of bases with
          quality below 10, allow up to 7 Ns, remove reads with average quality
          below 10, minimum read length 30, filter out reads with a complexity
          below 10%.
  hard    remove polyG, cut mean quality of 20 in a window of 5, allow 30% of
          bases with quality below 10, allow at most 5 Ns, remove reads with
          average quality below 15, minimum read length 30, filter out reads
          with a complexity below 30%.

Example:
  ngsclean config --design design.tsv --workdir run1 --threads 8 --trimmer medium`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	f := configCmd.Flags()
	f.StringVar(&cfgOpts.Design, "design", cfgOpts.Design, "Path to design file")
	f.StringVar(&cfgOpts.Workdir, "workdir", cfgOpts.Workdir, "Path to working directory")
	f.IntVar(&cfgOpts.Threads, "threads", cfgOpts.Threads, "Maximum number of threads used")
	f.StringVar(&cfgOpts.Image, "singularity", cfgOpts.Image, "Docker/Singularity image")
	f.StringArrayVar(&cfgOpts.ColdStorage, "cold-storage", cfgOpts.ColdStorage,
		"Absolute path to a cold storage mount point (repeat for several, paths are kept verbatim)")
	f.StringVar(&cfgOpts.CopyExtra, "copy-extra", cfgOpts.CopyExtra, "Extra parameters for bash copy")
	f.BoolVar(&cfgOpts.RunFastqScreen, "run-fqscreen", cfgOpts.RunFastqScreen, "Whether to run FastQ Screen or not")
	f.IntVar(&cfgOpts.FastqScreenSubset, "fastq-screen-subset", cfgOpts.FastqScreenSubset,
		"Number of reads that FastQ Screen will use while looking for contaminations")
	f.Var(&cfgOpts.FastqScreenAligner, "fastq-screen-aligner", "Name of the mapper used by FastQ Screen (bowtie2, bowtie)")
	f.StringVar(&cfgOpts.FastqScreenConfig, "fastq-screen-config", cfgOpts.FastqScreenConfig,
		"Path to FastQ Screen tsv configuration file")
	f.StringVar(&cfgOpts.FastpExtra, "fastp-extra", cfgOpts.FastpExtra, "Extra parameters for fastp trimmer")
	f.Var(&cfgOpts.Trimmer, "trimmer", "Trimming preset: default, soft, medium, hard")
	f.BoolVar(&softTrimmer, "soft-trimmer", false, "Use the soft trimming preset")
	f.BoolVar(&mediumTrimmer, "medium-trimmer", false, "Use the medium trimming preset")
	f.BoolVar(&hardTrimmer, "hard-trimmer", false, "Use the hard trimming preset")
	f.StringVar(&designSep, "design-sep", string(design.SeparatorTab), "Design field separator: tab, comma or auto")

	configCmd.MarkFlagsMutuallyExclusive("fastp-extra", "soft-trimmer", "medium-trimmer", "hard-trimmer")
}

// resolveTrimmer folds the preset flags into one selector. --trimmer sits
// outside the cobra exclusive group so that it can agree with a legacy switch.
func resolveTrimmer(extraChanged bool) (config.Preset, error) {
	legacy, err := config.PresetFromFlags(softTrimmer, mediumTrimmer, hardTrimmer)
	if err != nil {
		return config.PresetDefault, err
	}

	p := cfgOpts.Trimmer
	if legacy != config.PresetDefault {
		if p != config.PresetDefault && p != legacy {
			return config.PresetDefault, &config.PresetConflictError{Presets: []config.Preset{p, legacy}}
		}
		p = legacy
	}
	if extraChanged && p != config.PresetDefault {
		return config.PresetDefault, &config.ValidationError{
			Field:  "fastp_extra",
			Reason: fmt.Sprintf("cannot be combined with the %s trimming preset", p),
		}
	}
	return p, nil
}

// loadDesign reads and checks the design table at path.
func loadDesign(path string) (*design.Table, error) {
	sep, err := design.ParseSeparator(designSep)
	if err != nil {
		return nil, err
	}
	table, err := design.Load(path, design.LoadOptions{Separator: sep})
	if err != nil {
		return nil, err
	}

	links, err := design.FastqLinks(table)
	if err != nil {
		return nil, fmt.Errorf("invalid design %s: %w", path, err)
	}
	logging.Get(logger, logging.CategoryDesign).Info("Design resolved",
		zap.String("path", path),
		zap.String("pairing", table.Pairing().String()),
		zap.Int("samples", table.Len()),
		zap.Int("files", len(links)))
	return table, nil
}

// runConfig builds the configuration and saves it under the working directory
func runConfig(cmd *cobra.Command, args []string) error {
	log := logging.Get(logger, logging.CategoryConfig)

	trimmer, err := resolveTrimmer(cmd.Flags().Changed("fastp-extra"))
	if err != nil {
		return err
	}
	opts := cfgOpts
	opts.Trimmer = trimmer

	log.Debug("Building configuration file",
		zap.String("design", opts.Design),
		zap.String("workdir", opts.Workdir),
		zap.Stringer("trimmer", opts.Trimmer))

	if _, err := loadDesign(opts.Design); err != nil {
		return err
	}

	cfg, err := config.Assemble(opts)
	if err != nil {
		return err
	}
	log.Debug("Configuration assembled", zap.Any("config", cfg))

	if err := os.MkdirAll(cfg.Workdir, 0755); err != nil {
		return fmt.Errorf("failed to create working directory: %w", err)
	}
	if err := cfg.Save(cfg.Config); err != nil {
		return err
	}

	log.Info("Configuration saved", zap.String("path", cfg.Config))
	fmt.Fprintln(cmd.OutOrStdout(), cfg.Config)
	return nil
}
