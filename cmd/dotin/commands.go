package dotin

import (
	"fmt"
	"os"
	"sort"

	"github.com/arthur-debert/dotin/internal/version"
	"github.com/arthur-debert/dotin/pkg/cobrax/topics"
	"github.com/arthur-debert/dotin/pkg/config"
	"github.com/arthur-debert/dotin/pkg/errors"
	"github.com/arthur-debert/dotin/pkg/importer"
	"github.com/arthur-debert/dotin/pkg/logging"
	"github.com/arthur-debert/dotin/pkg/paths"
	"github.com/arthur-debert/dotin/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbosity    int
	dryRun       bool
	dotfilesRoot string
	homeDir      string
	format       string
}

// overrides maps the flags the user actually set onto configuration keys.
func (g *globalOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	flags := cmd.Flags()
	out := map[string]interface{}{}
	if flags.Changed("dotfiles") {
		out["paths.dotfiles_root"] = g.dotfilesRoot
	}
	if flags.Changed("home") {
		out["paths.home_dir"] = g.homeDir
	}
	if flags.Changed("format") {
		out["output.format"] = g.format
	}
	if flags.Changed("verbose") {
		out["log.verbosity"] = g.verbosity
	}
	return out
}

// loadConfig loads the layered configuration and raises the log level if the
// configuration asks for more than the flags did.
func (g *globalOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(g.overrides(cmd))
	if err != nil {
		return nil, err
	}
	if cfg.Log.Verbosity > g.verbosity {
		logging.SetupLogger(cfg.Log.Verbosity)
	}
	return cfg, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "dotin",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&opts.dotfilesRoot, "dotfiles", "", MsgFlagDotfiles)
	rootCmd.PersistentFlags().StringVar(&opts.homeDir, "home", "", MsgFlagHome)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return config.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newImportCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	topicOpts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if _, err := topics.InitializeWithOptions(rootCmd, HelpTopics(), topicOpts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

func newImportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "import <group> <file> [<file>...]",
		Short:             MsgImportShort,
		Long:              MsgImportLong,
		Example:           MsgImportExample,
		GroupID:           "core",
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: groupNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			group := args[0]
			if err := paths.ValidateGroupName(group); err != nil {
				return err
			}
			files := args[1:]
			for _, file := range files {
				if err := paths.ValidatePath(file); err != nil {
					return err
				}
			}

			p, err := paths.New(cfg.Paths.DotfilesRoot, cfg.Paths.HomeDir)
			if err != nil {
				return err
			}

			format, err := ui.ParseFormat(cfg.Output.Format)
			if err != nil {
				return err
			}
			reporter, err := ui.NewReporter(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			log.Info().
				Str("dotfiles_root", p.DotfilesRoot()).
				Str("home", p.HomeDir()).
				Str("group", group).
				Int("files", len(files)).
				Bool("dry_run", opts.dryRun).
				Msg("Importing files")

			result, err := importer.Import(importer.Options{
				HomeDir:  p.HomeDir(),
				GroupDir: p.GroupPath(group),
				Files:    files,
				DryRun:   opts.dryRun,
				DirMode:  cfg.Import.DirMode.Perm(),
				Reporter: reporter,
			})
			if ferr := reporter.Finish(result, err); ferr != nil && err == nil {
				err = errors.Wrap(ferr, errors.ErrInternal, "failed to write report")
			}
			if err != nil {
				return err
			}

			log.Info().Int("moved", len(result.Moved)).Msg("Import finished")
			return nil
		},
	}
}

// groupNamesCompletion completes the first argument with existing groups and
// the rest with file paths.
func groupNamesCompletion(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}

		cfg, err := config.Load(opts.overrides(cmd))
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		p, err := paths.New(cfg.Paths.DotfilesRoot, cfg.Paths.HomeDir)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		entries, err := os.ReadDir(p.DotfilesRoot())
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var groups []string
		for _, entry := range entries {
			if entry.IsDir() && entry.Name()[0] != '.' {
				groups = append(groups, entry.Name())
			}
		}
		sort.Strings(groups)
		return groups, cobra.ShellCompDirectiveNoFileComp
	}
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultsContent())
				return err
			}

			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := config.Generate(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)

	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd.Run == nil {
				return errors.New(errors.ErrInternal, MsgErrHelpCmd)
			}
			helpCmd.Run(helpCmd, []string{"topics"})
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}
