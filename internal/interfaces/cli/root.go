package cli

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"sling.app/cli/internal/application/ports"
	"sling.app/cli/internal/application/services"
	"sling.app/cli/internal/infrastructure/config"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// CLIContainer holds the dependencies for CLI commands.
type CLIContainer struct {
	Config     *config.Config
	ConfigPath string
	Catalog    *services.CatalogService
	Icons      *services.IconService
	Launcher   ports.ProcessLauncher
	Logger     *log.Logger
}

// NewRootCommand builds the base command. Running sling with no subcommand
// opens the interactive picker.
func NewRootCommand(container *CLIContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sling",
		Short: "sling - terminal application launcher",
		Long: `sling discovers the applications installed on this machine from their
desktop descriptors and launches them from a fuzzy-searchable terminal picker.

Descriptors are read from the configured application directories, commands are
stripped of desktop-environment placeholders, and icons are resolved through
the configured icon theme directories.`,
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(container)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.AddCommand(NewPickCommand(container))
	rootCmd.AddCommand(NewListCommand(container))
	rootCmd.AddCommand(NewLaunchCommand(container))
	rootCmd.AddCommand(NewConfigCommand(container))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute(container *CLIContainer) {
	if err := NewRootCommand(container).Execute(); err != nil {
		os.Exit(1)
	}
}

func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}
