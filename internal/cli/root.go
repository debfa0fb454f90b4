package cli

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/tinct/internal/version"
	"github.com/arthur-debert/tinct/pkg/cobrax/topics"
	"github.com/arthur-debert/tinct/pkg/config"
	"github.com/arthur-debert/tinct/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed help
var helpFS embed.FS

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	verbosity  int
	configFile string
	color      string
	theme      string
	stream     bool
	logFile    string
}

// overrides returns the config keys set explicitly on the command line.
func (f *globalFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	o := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("color") {
		o["render.color"] = f.color
	}
	if flags.Changed("stream") {
		o["render.streaming"] = f.stream
	}
	if flags.Changed("theme") {
		o["theme.file"] = f.theme
	}
	if flags.Changed("log-file") {
		o["log.file"] = f.logFile
	}
	return o
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "tinct",
		Short: "Style terminal text with brace markup",
		Long: `tinct renders brace markup such as "{bold.red Error:} details" into
terminal escape sequences, measures the visible width of styled text,
and strips escape sequences back out.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zerolog.SetGlobalLevel(logging.LevelForVerbosity(flags.verbosity))
			cfg, err := config.Load(config.Options{
				File:      flags.configFile,
				Overrides: flags.overrides(cmd),
			})
			// Logging comes up even when the config is broken so the error
			// itself can be logged.
			logFile := ""
			if cfg != nil {
				logFile = cfg.Log.File
			}
			logging.Setup(logging.Options{Verbosity: flags.verbosity, File: logFile, Console: cmd.ErrOrStderr()})
			logging.LogCommand(cmd.CommandPath(), args)
			if err != nil {
				log.Debug().Err(err).Msg("configuration failed")
				return err
			}
			return a.init(cfg)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/tinct/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", config.ColorAuto, "Color output: auto, always or never")
	rootCmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Theme name or path to a theme file")
	rootCmd.PersistentFlags().BoolVar(&flags.stream, "stream", false, "Write output as it is produced instead of buffering it")
	rootCmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", `Log file ("-" to disable)`)

	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newWidthCmd())
	rootCmd.AddCommand(newStripCmd())
	rootCmd.AddCommand(newAttrsCmd(a))
	rootCmd.AddCommand(newThemesCmd(a))
	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(usageTemplate)

	// Help topics are embedded, so this can only fail on a broken build.
	sub, err := fs.Sub(helpFS, "help")
	if err == nil {
		_, err = topics.Initialize(rootCmd, sub, topics.Options{
			Extensions: []string{".md", ".txt", topicExt},
			Renderer:   newTopicRenderer(a),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("help topics unavailable")
	}

	return rootCmd
}

// Execute runs the root command with args and returns the process exit code.
func Execute(args []string) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

// Main is the entry point used by cmd/tinct.
func Main() {
	os.Exit(Execute(os.Args[1:]))
}
