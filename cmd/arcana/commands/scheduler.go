package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lunarium/arcana/internal/contracts"
	"github.com/lunarium/arcana/internal/scheduler"
	"github.com/lunarium/arcana/internal/scheduler/jobs"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Manage scheduled jobs",
	Long: `Starts the scheduler daemon or manages its jobs.

Registered jobs:
  streak_expiry    - daily at 00:05, zeroes streaks of users who skipped a day
  catalog_refresh  - hourly, reloads the card catalog cache

Subcommands:
  start  - start the scheduler
  list   - list registered jobs
  run    - run one job immediately

Example:
  go run ./cmd/arcana scheduler start
  go run ./cmd/arcana scheduler run streak_expiry`,
}

var (
	schedulerStartCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the scheduler",
		RunE:  runScheduler,
	}

	schedulerListCmd = &cobra.Command{
		Use:   "list",
		Short: "List registered jobs",
		RunE:  listJobs,
	}

	schedulerRunCmd = &cobra.Command{
		Use:   "run [job_name]",
		Short: "Run one job immediately",
		Args:  cobra.ExactArgs(1),
		RunE:  runJob,
	}
)

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerListCmd)
	schedulerCmd.AddCommand(schedulerRunCmd)
}

func runScheduler(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Arcana Scheduler ===")

	a, sched, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer a.close()

	sched.Start()

	fmt.Println("\nScheduler started. Registered jobs:")
	for _, jobName := range sched.GetAllJobs() {
		fmt.Printf("  - %s\n", jobName)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down scheduler...")
	sched.Stop()
	return nil
}

func listJobs(cmd *cobra.Command, args []string) error {
	a, sched, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer a.close()

	fmt.Println("Registered jobs:")
	for _, jobName := range sched.GetAllJobs() {
		fmt.Printf("  - %s\n", jobName)
	}
	return nil
}

func runJob(cmd *cobra.Command, args []string) error {
	jobName := args[0]

	a, sched, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer a.close()

	fmt.Printf("Running job: %s\n", jobName)
	if err := sched.RunJob(jobName); err != nil {
		return fmt.Errorf("run job: %w", err)
	}

	// RunJob is asynchronous; give it a moment before the process exits.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	fmt.Println("Job started. Press Ctrl+C once it has logged completion.")
	<-quit
	return nil
}

func initScheduler() (*app, *scheduler.Scheduler, error) {
	a, err := initApp()
	if err != nil {
		return nil, nil, err
	}

	sched := scheduler.New(a.logger, a.cfg.Location())

	if err := sched.AddJob(jobs.NewStreakExpiryJob(a.userRepo, contracts.SystemClock(), a.logger)); err != nil {
		a.close()
		return nil, nil, err
	}
	if err := sched.AddJob(jobs.NewCatalogRefreshJob(a.catalog, a.logger)); err != nil {
		a.close()
		return nil, nil, err
	}

	return a, sched, nil
}
