package config

type Settings struct {
	Separators *string      `yaml:"separators,omitempty"`
	Words      int          `yaml:"words,omitempty"`
	Stylesheet string       `yaml:"stylesheet,omitempty"`
	Font       FontRange    `yaml:"font"`
	Filters    FilterConfig `yaml:"filters"`
}

type FontRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type FilterConfig struct {
	StopWords []string `yaml:"stop_words,omitempty"`
	Stem      bool     `yaml:"stem"`
}
