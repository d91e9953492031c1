package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively generate a config file",
	Long: `Interactively generate a config.yaml in the current directory.

You will be prompted for:
  - HTTP server port
  - Store file path
  - Static pages directory
  - Log level and format`,
	RunE: runInit,
}

var (
	initOutput string
	initForce  bool
)

func init() {
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "config.yaml", "output config file path")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

// initConfig is the yaml layout written by init. It mirrors the mapstructure
// keys the config package reads.
type initConfig struct {
	Server struct {
		Port      int    `yaml:"port"`
		StaticDir string `yaml:"static_dir"`
	} `yaml:"server"`
	Store struct {
		Path string `yaml:"path"`
	} `yaml:"store"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(initOutput); err == nil && !initForce {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", initOutput)
	}

	portPrompt := promptui.Prompt{
		Label:   "HTTP server port",
		Default: "8080",
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p < 1 || p > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	storePrompt := promptui.Prompt{Label: "Store file path", Default: "./animals.json"}
	storePath, err := storePrompt.Run()
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}

	staticPrompt := promptui.Prompt{Label: "Static pages directory", Default: "./static"}
	staticDir, err := staticPrompt.Run()
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}

	levelSelect := promptui.Select{
		Label: "Log level",
		Items: []string{"debug", "info", "warn", "error"},
	}
	_, level, err := levelSelect.Run()
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}

	formatSelect := promptui.Select{
		Label: "Log format",
		Items: []string{"text", "json"},
	}
	_, format, err := formatSelect.Run()
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}

	var cfg initConfig
	cfg.Server.Port = port
	cfg.Server.StaticDir = staticDir
	cfg.Store.Path = storePath
	cfg.Log.Level = level
	cfg.Log.Format = format

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(initOutput, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	slog.Info("config written", "path", initOutput)
	return nil
}
