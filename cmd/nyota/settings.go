package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settingsFile is looked up in the working directory, then in ~/.config/nyota.
const settingsFile = "nyota.yaml"

// newSettings layers settings for cmd: explicit flags win over NYOTA_*
// environment variables, which win over the settings file, which wins over
// flag defaults. An explicit configFile must exist; the default locations are
// optional.
func newSettings(cmd *cobra.Command, configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("NYOTA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path := configFile
	if path == "" {
		path = findSettingsFile()
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading settings %s: %w", path, err)
		}
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	return v, nil
}

func findSettingsFile() string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "nyota"))
	}
	for _, dir := range dirs {
		p := filepath.Join(dir, settingsFile)
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
	}
	return ""
}

func (f *reportFlags) resolve(v *viper.Viper) {
	f.format = v.GetString("format")
	f.out = v.GetString("out")
	f.axesFile = v.GetString("axes")
	f.chartPath = v.GetString("chart")
	f.chartFormat = v.GetString("chart-format")
	f.chartWidth = v.GetInt("chart-width")
	f.chartHeight = v.GetInt("chart-height")
	f.chartColor = v.GetString("chart-color")
	f.title = v.GetString("title")
	f.strict = v.GetBool("strict")
	f.noColor = v.GetBool("no-color")
	f.verbose = v.GetBool("verbose")
}

func (f *axesFlags) resolve(v *viper.Viper) {
	f.axesFile = v.GetString("axes")
	f.diff = v.GetBool("diff")
	f.patchOut = v.GetString("patch-out")
	f.verbose = v.GetBool("verbose")
}
