package cmd

import (
	"fmt"

	"github.com/abhisek/cruxlog/internal/session"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime climbing statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, userID, err := openUserStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tracker := session.NewTracker(st.Sessions(), userID)
		sessions, err := tracker.ListSessions(cmd.Context())
		if err != nil {
			return err
		}

		totals := session.Aggregate(sessions)
		fmt.Printf("Sessions:  %d\n", totals.Sessions)
		fmt.Printf("Climbs:    %d\n", totals.Climbs)
		fmt.Printf("Send rate: %d%%\n", totals.SendRate)

		if len(sessions) == 0 {
			return nil
		}

		fmt.Println("\nRecent sessions:")
		limit := 10
		if len(sessions) < limit {
			limit = len(sessions)
		}
		for _, s := range sessions[:limit] {
			stats, err := session.Compute(&s)
			if err != nil {
				return err
			}
			high := stats.HighGrade
			if high == "" {
				high = "-"
			}
			fmt.Printf("  %s  %-20s  %s  %d climbs, %d sends, high %s\n",
				s.StartTime.Format("2006-01-02"), s.Gym,
				session.FormatMinutes(s.DurationMinutes),
				stats.Climbs, stats.Sends, high)
		}
		return nil
	},
}
