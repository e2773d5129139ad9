package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"fileremover/internal/config"
	"fileremover/internal/console"
	"fileremover/internal/installer"
	"fileremover/internal/jobs"
	"fileremover/internal/trash"
)

// Global debug flag
var debugMode bool

// debugPrint prints debug messages only when debug mode is enabled
func debugPrint(format string, args ...interface{}) {
	if debugMode {
		log.Printf("DEBUG: "+format, args...)
	}
}

// GUI entry points, replaced in tests
var (
	runDialog = runDeleteDialog
	runPicker = runFilePicker
)

func newRootCommand() *cobra.Command {
	var installService bool

	cmd := &cobra.Command{
		Use:   "fileremover [path...]",
		Short: "Choose between moving files to the trash and deleting them permanently",
		Long: `fileremover shows a small dialog for the given files and directories
offering "Move to trash", "Delete permanently" or "Cancel".

Paths that do not exist are ignored. Without paths a file picker is shown.
Use --install-service to add a "Delete (with choice)" entry to Dolphin's
context menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs.SetDebug(debugPrint)
			trash.SetDebug(debugPrint)

			if installService {
				return runInstall()
			}

			var targets []string
			if len(args) > 0 {
				targets = jobs.FilterExisting(args)
				if len(targets) == 0 {
					debugPrint("None of %d argument(s) exist, nothing to do", len(args))
					return nil
				}
			}

			configManager := config.NewManager()
			cfg, err := configManager.Load()
			if err != nil {
				return err
			}
			debugPrint("Loaded configuration from %s", configManager.Path())

			if len(targets) == 0 {
				return runPicker(cfg)
			}
			return runDialog(cfg, targets)
		},
	}

	cmd.Flags().BoolVar(&installService, "install-service", false, "Install the Dolphin context menu entry and exit")
	cmd.Flags().BoolVarP(&debugMode, "debug", "d", false, "Enable debug mode")
	return cmd
}

// runInstall writes the service menu and reports the outcome on the console
func runInstall() error {
	inst, err := installer.New()
	if err != nil {
		return err
	}
	path, err := inst.Install()
	if err != nil {
		return err
	}
	console.Success("Service menu installed at %s", path)
	console.Hint("Restart Dolphin to see \"Delete (with choice)\" in the context menu")
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		console.Error("%v", err)
		os.Exit(1)
	}
}
