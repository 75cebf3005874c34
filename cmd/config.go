package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sjzsdu/vpm/config"
	"github.com/sjzsdu/vpm/lang"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: lang.T("Set config"),
	Long:  lang.T("Set global configuration stored in ~/.vpm/config"),
	RunE:  handleConfigCommand,
}

var (
	showAllConfigs bool
	clearConfigs   bool
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVarP(&showAllConfigs, "list", "l", false, lang.T("List all configurations"))
	configCmd.Flags().BoolVar(&clearConfigs, "clear", false, lang.T("Remove all configurations"))

	// 通过遍历 ConfigKeys 自动添加所有配置项
	for _, key := range config.GetAllConfigKeys() {
		configCmd.Flags().String(key, config.GetConfig(key), lang.T(config.GetConfigDescription(key)))
	}
}

func handleConfigCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if clearConfigs {
		config.ClearAllConfig()
		return config.SaveConfig()
	}

	if showAllConfigs {
		fmt.Fprintln(out, lang.T("Current configurations:"))
		keys := config.GetAllConfigKeys()
		sort.Strings(keys)
		for _, key := range keys {
			if value := config.GetConfig(key); value != "" {
				fmt.Fprintf(out, "%s=%s\n", config.GetEnvKey(key), value)
			}
		}
		return nil
	}

	changed := false
	for _, key := range config.GetAllConfigKeys() {
		flag := cmd.Flag(key)
		if flag == nil || !flag.Changed {
			continue
		}
		value := flag.Value.String()
		if !config.IsValidConfigOption(key, value) {
			return fmt.Errorf("%s: %s=%s (%v)", lang.T("Invalid option"), key, value, config.GetConfigOptions(key))
		}
		config.SetConfig(key, value)
		changed = true
	}
	if !changed {
		return cmd.Help()
	}
	return config.SaveConfig()
}
