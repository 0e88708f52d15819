package config

type YAMLFile struct {
	Fibprime YAMLConfig `yaml:"fibprime"`
}

type YAMLConfig struct {
	Defaults  YAMLDefaults  `yaml:"defaults"`
	Output    YAMLOutput    `yaml:"output"`
	Plot      YAMLPlot      `yaml:"plot"`
	Animation YAMLAnimation `yaml:"animation"`
	Logging   YAMLLogging   `yaml:"logging"`
}

type YAMLDefaults struct {
	Mode  string `yaml:"mode"`
	Bound *int64 `yaml:"bound"`
}

type YAMLOutput struct {
	Format  string `yaml:"format"`
	Summary string `yaml:"summary"`
}

type YAMLPlot struct {
	Kind   string `yaml:"kind"`
	Width  *int   `yaml:"width"`
	Height *int   `yaml:"height"`
}

type YAMLAnimation struct {
	IntervalMS *int `yaml:"interval_ms"`
}

type YAMLLogging struct {
	Debug *bool  `yaml:"debug"`
	Dir   string `yaml:"dir"`
}
