package cli

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/specialistvlad/ldgraph/internal/app"
)

// EnvPrefix prefixes the environment variable of every flag, e.g.
// LDGRAPH_WORKERS for -workers.
const EnvPrefix = "LDGRAPH"

// envAliases are the plain variable names understood besides the prefixed
// ones. The prefixed name wins when both are set.
var envAliases = map[string]string{
	"urdf":      "NODERED_URDF",
	"flows-url": "FLOWS_URL",
}

// newEnv returns a viper instance that resolves flag defaults from the
// environment, falling back to the built-in defaults.
func newEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, alias := range envAliases {
		_ = v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, "-", "_")), alias)
	}

	v.SetDefault("input", app.DefaultInputDir)
	v.SetDefault("output", app.DefaultOutputDir)
	v.SetDefault("profile", app.DefaultProfile)
	v.SetDefault("profiles", "")
	v.SetDefault("socketio-event", "")
	v.SetDefault("watch-debounce", app.DefaultWatchDebounce)
	v.SetDefault("workers", app.DefaultWorkerCount)
	v.SetDefault("log-format", app.LogFormatText)
	v.SetDefault("log-level", "info")
	v.SetDefault("healthcheck-port", 0)
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	if d := v.GetDuration(key); d > 0 {
		return d
	}
	return fallback
}
