package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the pipeline configuration inside the working
// directory.
const ConfigFileName = "config.yaml"

// Config is the pipeline configuration written to <workdir>/config.yaml.
// Downstream rules read these keys by name.
//
// Fields are declared in key order so the rendered document lists keys sorted,
// the same layout the pipeline's own tooling produces.
type Config struct {
	// Cold storage mount points bound into the container. A nil list is
	// rendered as an empty sequence and always reads back as an empty,
	// non-nil slice.
	ColdStorage []string `yaml:"cold_storage"`

	// Absolute path of this configuration file.
	Config string `yaml:"config"`

	// Absolute path of the sample design table.
	Design string `yaml:"design"`

	Params Params `yaml:"params"`

	RunFastqScreen bool `yaml:"run_fqscreen"`

	// Container image the rules run in.
	SingularityDockerImage string `yaml:"singularity_docker_image"`

	Threads int `yaml:"threads"`

	// Absolute path of the working directory.
	Workdir string `yaml:"workdir"`
}

// Params holds per-tool arguments.
type Params struct {
	CopyExtra          string `yaml:"copy_extra"`
	FastpExtra         string `yaml:"fastp_extra"`
	FastqScreenAligner string `yaml:"fastq_screen_aligner"`
	FastqScreenConfig  string `yaml:"fastq_screen_config"`
	FastqScreenSubset  int    `yaml:"fastq_screen_subset"`
}

// Marshal renders the configuration as a block style YAML document.
func Marshal(c *Config) ([]byte, error) {
	if c == nil {
		return nil, &SerializationError{Op: "marshal", Err: errors.New("nil config")}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, &SerializationError{Op: "marshal", Err: err}
	}
	if err := enc.Close(); err != nil {
		return nil, &SerializationError{Op: "marshal", Err: err}
	}
	return buf.Bytes(), nil
}

// Unmarshal parses a document produced by Marshal. Unknown keys are rejected.
func Unmarshal(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	c := &Config{}
	if err := dec.Decode(c); err != nil {
		return nil, &SerializationError{Op: "unmarshal", Err: err}
	}
	if c.ColdStorage == nil {
		c.ColdStorage = []string{}
	}
	return c, nil
}

// Save writes the configuration to path. The parent directory must exist.
func (c *Config) Save(path string) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &SerializationError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Load reads a configuration written by Save.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SerializationError{Op: "read", Path: path, Err: err}
	}
	c, err := Unmarshal(data)
	if err != nil {
		var se *SerializationError
		if errors.As(err, &se) {
			se.Path = path
		}
		return nil, err
	}
	return c, nil
}

// Path returns the configuration file location for a working directory.
func Path(workdir string) string {
	return filepath.Join(workdir, ConfigFileName)
}
