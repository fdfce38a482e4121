package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/ougirez/ehrenamt/internal/pkg/constants"
	"github.com/spf13/viper"
)

const envPrefix = "EHRENAMT"

func setDefaults(v *viper.Viper) {
	v.SetDefault(constants.ViperServerAddrKey, ":8080")
	v.SetDefault(constants.ViperCORSOriginsKey, []string{"http://localhost:3000"})
	v.SetDefault(constants.ViperLogLevelKey, "info")
	v.SetDefault(constants.ViperSecretKey, "")
	v.SetDefault(constants.ViperDatasetSourceKey, constants.DatasetSourceFile)
	v.SetDefault(constants.ViperRecordsPathKey, "assets/data.json")
	v.SetDefault(constants.ViperGeometryPathKey, "assets/laender_999_geo.json")
	v.SetDefault(constants.ViperDemographicsPathKey, "")
	v.SetDefault(constants.ViperGeometryKeyKey, "name")
	v.SetDefault(constants.ViperPostgresDSNKey, "")
	v.SetDefault(constants.ViperSessionBackendKey, constants.SessionBackendMemory)
	v.SetDefault(constants.ViperSessionTTLKey, 24*time.Hour)
	v.SetDefault(constants.ViperRedisAddrKey, "127.0.0.1:6379")
	v.SetDefault(constants.ViperRedisPasswordKey, "")
	v.SetDefault(constants.ViperRedisDBKey, 0)
}

// Load fills the global viper instance from defaults, the config file and
// EHRENAMT_* environment variables (dots become underscores). A missing
// file is not an error.
func Load(path string) error {
	return load(viper.GetViper(), path)
}

func load(v *viper.Viper, path string) error {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("viper.ReadInConfig, path-%s: %w", path, err)
	}

	return nil
}
