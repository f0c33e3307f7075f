package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lunarium/arcana/internal/astro"
	"github.com/lunarium/arcana/internal/contracts"
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Calculate natal profiles",
	Long: `Calculates a natal profile from birth data.

With --user the profile is stored on that user; without it the profile
is only printed, which is handy for checking the chart formulas.

Example:
  go run ./cmd/arcana profile --birth-date 1990-06-15
  go run ./cmd/arcana profile --birth-date 1990-06-15 --birth-time 14:30 --birth-city Seoul --user 6f1c9e2a-...`,
	RunE: runProfile,
}

var (
	profileUserID    string
	profileBirthDate string
	profileBirthTime string
	profileBirthCity string
)

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().StringVar(&profileUserID, "user", "", "user ID to attach the profile to")
	profileCmd.Flags().StringVar(&profileBirthDate, "birth-date", "", "birth date (YYYY-MM-DD, required)")
	profileCmd.Flags().StringVar(&profileBirthTime, "birth-time", "", "birth time (HH:MM)")
	profileCmd.Flags().StringVar(&profileBirthCity, "birth-city", "", "birth city for geocoding")
	profileCmd.MarkFlagRequired("birth-date")
}

func runProfile(cmd *cobra.Command, args []string) error {
	birth := contracts.BirthData{
		BirthDate: profileBirthDate,
		BirthTime: profileBirthTime,
		BirthCity: profileBirthCity,
	}

	// The pure calculation needs no wiring at all.
	if profileUserID == "" && profileBirthCity == "" {
		profile, err := astro.BuildProfile(birth)
		if err != nil {
			return fmt.Errorf("build profile: %w", err)
		}
		return printJSON(profile)
	}

	a, err := initApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if profileBirthCity != "" {
		loc, err := a.geo.Resolve(ctx, profileBirthCity)
		if err != nil {
			a.logger.WithError(err).Warn("Geocoding failed")
		} else if loc != nil {
			fmt.Printf("Resolved %s: %.4f, %.4f (%s)\n", loc.City, loc.Latitude, loc.Longitude, loc.Timezone)
			birth.Latitude = &loc.Latitude
			birth.Longitude = &loc.Longitude
			birth.Timezone = loc.Timezone
		}
	}

	profile, err := astro.BuildProfile(birth)
	if err != nil {
		return fmt.Errorf("build profile: %w", err)
	}

	if profileUserID != "" {
		if err := a.userRepo.SaveProfile(ctx, profileUserID, profile); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		fmt.Printf("Profile saved for user %s\n", profileUserID)
	}
	return printJSON(profile)
}
