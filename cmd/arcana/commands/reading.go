package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lunarium/arcana/internal/contracts"
)

// readingCmd represents the reading command
var readingCmd = &cobra.Command{
	Use:   "reading",
	Short: "Generate readings from the command line",
	Long: `Generates a reading for a user and prints it as JSON.

Subcommands:
  daily     - today's reading (get-or-create)
  decision  - three-card decision spread
  history   - recent readings

Example:
  go run ./cmd/arcana reading daily 6f1c9e2a-...
  go run ./cmd/arcana reading decision 6f1c9e2a-... --question "Change jobs?"
  go run ./cmd/arcana reading history 6f1c9e2a-... --limit 5`,
}

var (
	readingMood     string
	readingQuestion string
	readingLimit    int

	readingDailyCmd = &cobra.Command{
		Use:   "daily [user_id]",
		Short: "Generate today's reading",
		Args:  cobra.ExactArgs(1),
		RunE:  runDailyReading,
	}

	readingDecisionCmd = &cobra.Command{
		Use:   "decision [user_id]",
		Short: "Generate a decision reading",
		Args:  cobra.ExactArgs(1),
		RunE:  runDecisionReading,
	}

	readingHistoryCmd = &cobra.Command{
		Use:   "history [user_id]",
		Short: "Show recent readings",
		Args:  cobra.ExactArgs(1),
		RunE:  runReadingHistory,
	}
)

func init() {
	rootCmd.AddCommand(readingCmd)
	readingCmd.AddCommand(readingDailyCmd)
	readingCmd.AddCommand(readingDecisionCmd)
	readingCmd.AddCommand(readingHistoryCmd)

	readingDailyCmd.Flags().StringVar(&readingMood, "mood", "", "current mood (happy|calm|anxious|sad|excited|confused|angry|hopeful)")
	readingDecisionCmd.Flags().StringVar(&readingQuestion, "question", "", "the question being weighed")
	readingDecisionCmd.Flags().StringVar(&readingMood, "mood", "", "current mood")
	readingHistoryCmd.Flags().IntVar(&readingLimit, "limit", 10, "number of readings to show")
}

func runDailyReading(cmd *cobra.Command, args []string) error {
	a, err := initApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := a.service.GenerateDaily(ctx, args[0], contracts.Mood(readingMood))
	if err != nil {
		return fmt.Errorf("generate daily reading: %w", err)
	}

	if result.IsNew {
		fmt.Println("New reading for today:")
	} else {
		fmt.Println("Today's reading already exists:")
	}
	return printJSON(result.Reading)
}

func runDecisionReading(cmd *cobra.Command, args []string) error {
	a, err := initApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	reading, err := a.service.GenerateDecision(ctx, args[0], readingQuestion, contracts.Mood(readingMood))
	if err != nil {
		return fmt.Errorf("generate decision reading: %w", err)
	}
	return printJSON(reading)
}

func runReadingHistory(cmd *cobra.Command, args []string) error {
	a, err := initApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	readings, err := a.service.History(ctx, args[0], readingLimit)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	fmt.Printf("%d readings:\n", len(readings))
	return printJSON(readings)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
