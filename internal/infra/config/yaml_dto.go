package config

// YAMLBench is the on-disk shape of an optional fibbench.yml. Pointer
// fields distinguish "unset" from a deliberate zero.
type YAMLBench struct {
	Label string `yaml:"label"`
	N     *int   `yaml:"n"`

	Paths YAMLPaths `yaml:"paths"`
}

type YAMLPaths struct {
	RunsDir string `yaml:"runs_dir"`
}
