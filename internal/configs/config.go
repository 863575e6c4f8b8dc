package configs

type MainConfig struct {
	Debug bool `toml:"debug"`
}

type CipherConfig struct {
	Variant string `toml:"variant"`
	Width   int    `toml:"width"`
	Rounds  int    `toml:"rounds"`
	Mode    string `toml:"mode"`
	Key     string `toml:"key"`
}

type LogConfig struct {
	Main    string `toml:"main"`
	Cipher  string `toml:"cipher"`
	Engines string `toml:"engines"`
	Bench   string `toml:"bench"`
	File    string `toml:"file"`
	NoColor bool   `toml:"nocolor"`
}

type ConfigFile struct {
	Main   MainConfig   `toml:"main"`
	Cipher CipherConfig `toml:"cipher"`
	Log    LogConfig    `toml:"log"`
}

var configFile *ConfigFile = nil

func GetConfigFile() *ConfigFile {
	if configFile == nil {
		configFile = &ConfigFile{}
	}
	return configFile
}
