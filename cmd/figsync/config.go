package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/figsync"
	"github.com/yacobolo/figsync/internal/figma"
)

var k = koanf.New(".")

const defaultConfigPath = ".figsync.yaml"

// configSections are the nested blocks of .figsync.yaml. Env var names
// starting with one of them map into that block.
var configSections = []string{"source", "push", "sync"}

// listKeys hold comma-separated lists when set from the environment.
var listKeys = map[string]bool{
	"source.include": true,
	"sync.nodes":     true,
}

// flagKeys maps command flags to their config key. Flags not listed keep
// their own name.
var flagKeys = map[string]string{
	"source":        "source.dir",
	"include":       "source.include",
	"name":          "push.name",
	"nodes":         "sync.nodes",
	"interval":      "sync.interval",
	"auto-apply":    "sync.auto-apply",
	"apply-to":      "sync.apply-to",
	"listen":        "sync.listen",
	"output-format": "sync.output-format",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Unchanged flags only fill keys nothing else has set.
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if f.Name == "config" || f.Name == "help" {
			return "", nil
		}
		return configKey(f.Name), posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("FIGSYNC_", ".", envKeyValue), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

func configKey(flag string) string {
	if key, ok := flagKeys[flag]; ok {
		return key
	}
	return flag
}

// envKeyValue maps FIGSYNC_SYNC_AUTO_APPLY to sync.auto-apply and
// FIGSYNC_FILE_KEY to file-key.
func envKeyValue(name, value string) (string, interface{}) {
	key := strings.ToLower(strings.TrimPrefix(name, "FIGSYNC_"))
	for _, section := range configSections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			key = section + "." + rest
			break
		}
	}
	key = strings.ReplaceAll(key, "_", "-")

	if listKeys[key] {
		return key, splitList(value)
	}
	return key, value
}

// splitList splits a comma-separated list, dropping empty entries.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// buildClientConfig constructs the Figma client config from koanf state.
func buildClientConfig() figma.Config {
	return figma.Config{
		Token:      getStringWithEnv("token", "FIGMA_ACCESS_TOKEN"),
		BaseURL:    getString("base-url", figma.DefaultBaseURL),
		Timeout:    getDuration("timeout", 10*time.Second),
		AuthScheme: getString("auth-scheme", figma.AuthToken),
		Logger:     logger,
	}
}

// buildSourceConfig constructs the local token source selection.
func buildSourceConfig() figsync.SourceConfig {
	return figsync.SourceConfig{
		SourceDir: getString("source.dir", "."),
		Includes:  k.Strings("source.include"),
	}
}

// buildPushOptions constructs push options. The file key may be empty, in
// which case a new document is created.
func buildPushOptions() figsync.PushOptions {
	return figsync.PushOptions{
		FileKey:      fileKey(),
		DocumentName: getString("push.name", ""),
	}
}

// buildSyncConfig constructs the controller config from koanf state.
func buildSyncConfig() figsync.SyncConfig {
	return figsync.SyncConfig{
		FileKey:      fileKey(),
		WatchedNodes: k.Strings("sync.nodes"),
		Interval:     getDuration("sync.interval", 30*time.Second),
		AutoApply:    k.Bool("sync.auto-apply"),
		Selectors:    k.StringsMap("sync.selectors"),
		Components:   k.StringsMap("sync.components"),
	}
}

// fileKey accepts either a bare key or a full Figma URL.
func fileKey() string {
	key := getStringWithEnv("file-key", "FIGMA_FILE_KEY")
	if parsed := figma.ParseFileKey(key); parsed != "" {
		return parsed
	}
	return key
}

// getString returns the key's value or the default when unset or empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getStringWithEnv falls back to a non-prefixed environment variable.
func getStringWithEnv(key, envVar string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return os.Getenv(envVar)
}

// getBool checks the key first, then returns the default.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getDuration returns the key as a duration ("30s"), or the default when
// unset or not positive.
func getDuration(key string, defaultVal time.Duration) time.Duration {
	if !k.Exists(key) {
		return defaultVal
	}
	if d := k.Duration(key); d > 0 {
		return d
	}
	return defaultVal
}
