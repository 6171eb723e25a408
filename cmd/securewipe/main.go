package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"securewipe/internal/config"
	"securewipe/internal/demo"
	"securewipe/internal/device"
	"securewipe/internal/drives"
	"securewipe/internal/logging"
	"securewipe/internal/progress"
	"securewipe/internal/reporting"
	"securewipe/internal/security"
	"securewipe/internal/system"
	"securewipe/internal/wipe"
)

const (
	Version = "1.0.0"

	// Exit codes
	EXIT_SUCCESS = 0
	EXIT_ERROR   = 1
	EXIT_WARNING = 2
)

var (
	targetPath   string
	algorithm    string
	passes       int
	demoMode     bool
	demoSizeMB   uint64
	bufferSizeKB int
	force        bool
	verify       bool
	jsonMode     bool
	fastMode     bool
	listDrives   bool
	configPath   string
	verbose      bool
	maxSpeedMBps float64
	profile      string
)

var rootCmd = &cobra.Command{
	Use:           "securewipe",
	Short:         "Secure file/device wiping utility with real-time progress events",
	Long:          "Overwrites files and block devices with configurable multi-pass patterns, reporting progress as console output or machine-readable JSON events.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&targetPath, "target", "t", "", "Target file or block device to wipe (e.g. /dev/sda1 or a file path)")
	rootCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Wiping algorithm (zero/random/dod5220/gutmann/custom)")
	rootCmd.Flags().IntVarP(&passes, "passes", "p", 0, "Number of passes (for custom algorithm)")
	rootCmd.Flags().BoolVarP(&demoMode, "demo", "d", false, "Demo mode - creates and wipes a test file safely")
	rootCmd.Flags().Uint64Var(&demoSizeMB, "demo-size", 100, "Size of demo file in MB")
	rootCmd.Flags().IntVar(&bufferSizeKB, "buffer-size", 0, "Buffer size in KB (0 = auto-size from available memory)")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation (dangerous!)")
	rootCmd.Flags().BoolVar(&verify, "verify", false, "Verify wipe by reading back data")
	rootCmd.Flags().BoolVar(&jsonMode, "json", false, "Output machine-readable JSON events for subprocess integration")
	rootCmd.Flags().BoolVar(&fastMode, "fast", false, "Sync once per pass instead of after every write")
	rootCmd.Flags().BoolVar(&listDrives, "list-drives", false, "List available drives and partitions, then exit")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML configuration file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.Flags().Float64Var(&maxSpeedMBps, "max-speed", 0, "Throttle write speed in MB/s (0 = unthrottled)")
	rootCmd.Flags().StringVar(&profile, "profile", "", "Configuration preset (quick/standard/paranoid/gentle)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if profile != "" {
		if err := config.ApplyProfile(cfg, profile); err != nil {
			return err
		}
	}
	applyFlagOverrides(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	logger, err := logging.New(cfg, verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var emitter progress.Emitter
	var interval time.Duration
	if jsonMode {
		emitter = progress.NewJSONEmitter(os.Stdout)
		interval = time.Duration(cfg.Progress.MachineIntervalMs) * time.Millisecond
	} else {
		emitter = progress.NewConsoleEmitter(os.Stdout)
		interval = time.Duration(cfg.Progress.InteractiveIntervalMs) * time.Millisecond
	}

	if listDrives {
		return runListDrives()
	}

	if !demoMode && targetPath == "" {
		return fmt.Errorf("target must be specified when not in demo mode; use --target <PATH> or --demo")
	}

	algo, err := wipe.ParseAlgorithm(cfg.Wipe.Algorithm)
	if err != nil {
		_ = emitter.Emit(progress.Error(err.Error()))
		return err
	}
	// Reject bad schedules before any file or device is touched.
	schedule, err := wipe.PassesFor(algo, cfg.Wipe.Passes)
	if err != nil {
		_ = emitter.Emit(progress.Error(err.Error()))
		return err
	}

	path := targetPath
	if demoMode {
		path = filepath.Join(os.TempDir(), fmt.Sprintf("secure_wipe_demo_%d.img", os.Getpid()))
		if err := demo.CreateDemoFile(path, demoSizeMB, emitter, interval); err != nil {
			return err
		}
		defer func() {
			if err := os.Remove(path); err == nil {
				_ = emitter.Emit(progress.Info("Demo file cleaned up"))
			}
		}()
	}

	if err := security.CheckTarget(cfg, path); err != nil {
		return err
	}

	if !force && !demoMode && cfg.Security.RequireConfirmation {
		ok, err := confirmWipe(path)
		if err != nil {
			return err
		}
		if !ok {
			_ = emitter.Emit(progress.Info("Operation cancelled by user"))
			return nil
		}
	}

	target, err := device.Open(path)
	if err != nil {
		_ = emitter.Emit(progress.Error(err.Error()))
		logger.Error("failed to open target", zap.String("path", path), zap.Error(err))
		return err
	}
	defer target.Close()

	if target.Kind() == device.KindBlock && !security.HasElevatedPrivileges() {
		_ = emitter.Emit(progress.Info("Warning: wiping block devices usually requires elevated privileges"))
	}

	availableKB, err := system.AvailableMemoryKB()
	if err != nil {
		logger.Warn("memory query failed, using fallback for buffer sizing", zap.Error(err))
		availableKB = 0
	}
	bufSize, err := wipe.OptimalBufferSize(target.Kind(), availableKB, cfg.Wipe.BufferSizeKB)
	if err != nil {
		_ = emitter.Emit(progress.Error(err.Error()))
		return err
	}

	integrity := wipe.Synchronous
	if cfg.Wipe.FastMode {
		integrity = wipe.Fast
	}

	session, err := wipe.NewSession(target, wipe.SessionConfig{
		Algorithm:        algo,
		CustomPasses:     cfg.Wipe.Passes,
		BufferSize:       bufSize,
		Integrity:        integrity,
		MaxSpeedMBps:     cfg.Wipe.MaxSpeedMBps,
		ProgressInterval: interval,
		Emitter:          emitter,
		Logger:           logger,
	})
	if err != nil {
		_ = emitter.Emit(progress.Error(err.Error()))
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var report *reporting.Report
	if cfg.Reporting.Enabled {
		report = reporting.New(Version, target, cfg.Wipe.Algorithm, len(schedule), bufSize/1024)
	}

	result, err := session.Run(ctx)
	if err != nil {
		_ = emitter.Emit(progress.Error(err.Error()))
		if report != nil {
			report.Fail(err)
			saveReport(report, cfg, logger)
		}
		return err
	}

	if report != nil {
		report.Succeed(result)
		saveReport(report, cfg, logger)
	}

	if verify {
		_ = emitter.Emit(progress.Info("Verification not yet implemented"))
	}

	return nil
}

// applyFlagOverrides lets explicit flags win over the loaded configuration.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("algorithm") {
		cfg.Wipe.Algorithm = algorithm
	}
	if cmd.Flags().Changed("passes") {
		cfg.Wipe.Passes = passes
	}
	if cmd.Flags().Changed("buffer-size") {
		cfg.Wipe.BufferSizeKB = bufferSizeKB
	}
	if cmd.Flags().Changed("fast") {
		cfg.Wipe.FastMode = fastMode
	}
	if cmd.Flags().Changed("max-speed") {
		cfg.Wipe.MaxSpeedMBps = maxSpeedMBps
	}
}

func runListDrives() error {
	found, err := drives.List()
	if err != nil {
		return fmt.Errorf("drive enumeration failed: %w", err)
	}
	if jsonMode {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(drives.NewListEvent(found))
	}
	drives.PrintHuman(os.Stdout, found)
	return nil
}

func saveReport(report *reporting.Report, cfg *config.Config, logger *zap.Logger) {
	path, err := report.Save(cfg.Reporting.LocalPath)
	if err != nil {
		logger.Warn("failed to save report", zap.Error(err))
		return
	}
	logger.Info("report saved", zap.String("run_id", report.RunID), zap.String("file", path))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, context.Canceled) {
			os.Exit(EXIT_WARNING)
		}
		os.Exit(EXIT_ERROR)
	}
	os.Exit(EXIT_SUCCESS)
}
