package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sjzsdu/vpm/config"
	"github.com/sjzsdu/vpm/helper"
	"github.com/sjzsdu/vpm/lang"
	"github.com/sjzsdu/vpm/session"
	"github.com/sjzsdu/vpm/share"
)

var (
	debugMode    bool
	settingsFile string
	settings     *config.Settings
)

var RootCmd = rootCmd

var rootCmd = &cobra.Command{
	Use:   share.BUILDNAME,
	Short: lang.T("Navisworks viewpoint merge tool"),
	Long:  lang.T("Merge, organize and export Navisworks viewpoint XML files"),
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		share.SetDebug(debugMode)
		s, err := config.LoadSettings(settingsFile)
		if err != nil {
			return err
		}
		settings = s
		lang.SetLanguage(s.Lang)
		helper.InitLogger(debugMode, s.LogLevel)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	defer func() { _ = helper.Logger().Sync() }()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "v", false, lang.T("Debug mode"))
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", lang.T("Settings file (default ./vpm.yaml)"))
}

// newSession 按当前设置创建会话
func newSession() *session.Session {
	return session.New(settings, helper.Logger())
}
