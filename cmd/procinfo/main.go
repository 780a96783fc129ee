package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"procinfo/config"
	"procinfo/controller"
	"procinfo/report"
	"procinfo/session"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/spf13/cobra"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitNotFound = 2
)

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "procinfo (--pid N | --name NAME)",
		Short: "Print details about one process",
		Long: `procinfo reports the name, PID, parent PID, UID, path, state and memory
usage of a single process, selected by PID or by name.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, cfgFile, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is /etc/procinfo/procinfo.yaml)")
	cmd.Flags().IntP("pid", "p", config.UnsetPID, "PID of the process to report on")
	cmd.Flags().StringP("name", "n", "", "name of the process to report on")
	cmd.Flags().String("proc-root", report.DefaultRoot, "mount point of the proc filesystem")
	cmd.Flags().String("backend", controller.BackendProcfs, "process source: procfs or gopsutil")
	cmd.Flags().Int("report-limit", 0, "maximum report size in bytes (default one page)")
	cmd.Flags().BoolP("verbose", "v", false, "log activation and lookup details")

	return cmd
}

func main() {
	os.Exit(execute(context.Background(), newRootCmd(), os.Args[1:]))
}

// execute runs cmd and maps the outcome to an exit status
func execute(ctx context.Context, cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, session.ErrLookupNotFound):
		// The error text was already printed as the report
		return exitNotFound
	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return exitFailure
	}
}

func run(ctx context.Context, cmd *cobra.Command, cfgFile string, out io.Writer) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	sel, err := cfg.Selector()
	if err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	var log *logger.Logger
	if cfg.Verbose {
		log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "procinfo"))
	}

	snap, err := controller.OpenSnapshot(ctx, cfg.Backend, cfg.ProcRoot, log)
	if err != nil {
		return err
	}

	formatter := report.NewFormatter(
		report.WithRoot(cfg.ProcRoot),
		report.WithLimit(cfg.ReportLimit),
		report.WithLogger(log),
	)

	ctrl, err := controller.New(snap, controller.WithFormatter(formatter), controller.WithLogger(log))
	if err != nil {
		return err
	}

	return ctrl.Query(sel, out)
}
