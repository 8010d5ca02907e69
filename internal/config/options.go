package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Aligner is the mapper FastQ Screen runs.
type Aligner string

const (
	AlignerBowtie2 Aligner = "bowtie2"
	AlignerBowtie  Aligner = "bowtie"
)

// ValidAligners lists the supported FastQ Screen aligners.
var ValidAligners = []Aligner{AlignerBowtie2, AlignerBowtie}

// ParseAligner validates an aligner name.
func ParseAligner(s string) (Aligner, error) {
	for _, a := range ValidAligners {
		if string(a) == s {
			return a, nil
		}
	}
	return "", &ValidationError{Field: "fastq_screen_aligner", Reason: fmt.Sprintf("%q (valid: %v)", s, ValidAligners)}
}

// String implements pflag.Value.
func (a Aligner) String() string { return string(a) }

// Set implements pflag.Value.
func (a *Aligner) Set(s string) error {
	v, err := ParseAligner(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Type implements pflag.Value.
func (a *Aligner) Type() string { return "aligner" }

// Options are the resolved command line choices a configuration is built from.
type Options struct {
	Design  string
	Workdir string
	Threads int

	// Docker/Singularity image reference.
	Image       string
	ColdStorage []string
	CopyExtra   string

	RunFastqScreen     bool
	FastqScreenSubset  int
	FastqScreenAligner Aligner
	FastqScreenConfig  string

	// FastpExtra is used verbatim when Trimmer is PresetDefault.
	FastpExtra string
	Trimmer    Preset
}

// DefaultOptions returns the options used when no flag is given.
func DefaultOptions() Options {
	return Options{
		Design:             "design.tsv",
		Workdir:            ".",
		Threads:            1,
		Image:              "docker://continuumio/miniconda3:4.4.10",
		ColdStorage:        []string{" "},
		CopyExtra:          "--verbose",
		RunFastqScreen:     false,
		FastqScreenSubset:  100000,
		FastqScreenAligner: AlignerBowtie2,
		FastqScreenConfig:  "fastq_screen_config.tsv",
		FastpExtra:         DefaultFastpExtra,
		Trimmer:            PresetDefault,
	}
}

// Validate checks the options for values the pipeline cannot run with.
func (o Options) Validate() error {
	if strings.TrimSpace(o.Design) == "" {
		return &ValidationError{Field: "design", Reason: "path is empty"}
	}
	if strings.TrimSpace(o.Workdir) == "" {
		return &ValidationError{Field: "workdir", Reason: "path is empty"}
	}
	if o.Threads < 1 {
		return &ValidationError{Field: "threads", Reason: fmt.Sprintf("%d, must be at least 1", o.Threads)}
	}
	if o.FastqScreenSubset < 1 {
		return &ValidationError{Field: "fastq_screen_subset", Reason: fmt.Sprintf("%d, must be at least 1", o.FastqScreenSubset)}
	}
	if _, err := ParseAligner(string(o.FastqScreenAligner)); err != nil {
		return err
	}
	if _, ok := presetNames[o.Trimmer]; !ok {
		return &ValidationError{Field: "trimmer", Reason: o.Trimmer.String()}
	}
	return nil
}

// Assemble builds the pipeline configuration. Design and working directory are
// made absolute against the current directory; nothing is read from or written
// to them.
func Assemble(o Options) (*Config, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	design, err := filepath.Abs(o.Design)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve design path: %w", err)
	}
	workdir, err := filepath.Abs(o.Workdir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workdir: %w", err)
	}

	cold := make([]string, len(o.ColdStorage))
	copy(cold, o.ColdStorage)

	return &Config{
		Design:                 design,
		Config:                 Path(workdir),
		Workdir:                workdir,
		Threads:                o.Threads,
		SingularityDockerImage: o.Image,
		ColdStorage:            cold,
		RunFastqScreen:         o.RunFastqScreen,
		Params: Params{
			CopyExtra:          o.CopyExtra,
			FastpExtra:         o.Trimmer.FastpExtra(o.FastpExtra),
			FastqScreenSubset:  o.FastqScreenSubset,
			FastqScreenAligner: string(o.FastqScreenAligner),
			FastqScreenConfig:  o.FastqScreenConfig,
		},
	}, nil
}
