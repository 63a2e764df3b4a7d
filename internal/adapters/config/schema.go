package config

// File represents the structure of the abbsmeta.yaml configuration file.
// Unset fields keep the value of the lower layer.
type File struct {
	BasePath   *string  `yaml:"base_path"`
	Database   *string  `yaml:"database"`
	Workers    *int     `yaml:"workers"`
	Timeout    *string  `yaml:"timeout"`
	Categories []string `yaml:"categories"`
	Variants   *bool    `yaml:"variants"`
	CacheSize  *int     `yaml:"cache_size"`
}
