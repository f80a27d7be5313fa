package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pupilplay/engine/internal/store"
)

var episodeCmd = &cobra.Command{
	Use:   "episode",
	Short: "Inspect and manage episodes",
}

var episodeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List episodes, most recently active first",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ids, err := s.EpisodeRepo().List(context.Background())
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Println("No episodes found.")
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

var episodeShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show episode state and recent turns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		st, err := s.EpisodeRepo().Load(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Episode:     %s\n", st.ID)
		fmt.Printf("Version:     %d\n", st.Version)
		fmt.Printf("Turns:       %d\n", st.TurnCount)
		fmt.Printf("Difficulty:  %.2f\n", st.Difficulty)
		fmt.Printf("Engagement:  %.2f\n", st.Engagement)
		fmt.Printf("Started:     %s\n", st.StartedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Updated:     %s\n", st.UpdatedAt.Local().Format("2006-01-02 15:04:05"))

		if len(st.Mastery) > 0 {
			fmt.Println("\nMastery")
			skills := make([]string, 0, len(st.Mastery))
			for skill := range st.Mastery {
				skills = append(skills, skill)
			}
			sort.Strings(skills)
			for _, skill := range skills {
				fmt.Printf("  %-24s %.2f\n", skill, st.Mastery[skill])
			}
		}

		if len(st.Breakers) > 0 {
			fmt.Println("\nBreakers (as of last turn)")
			for name, b := range st.Breakers {
				fmt.Printf("  %-12s %s\n", name, b.State)
			}
		}

		limit, _ := cmd.Flags().GetInt("turns")
		turns := st.Turns
		if limit > 0 && len(turns) > limit {
			turns = turns[len(turns)-limit:]
		}
		if len(turns) > 0 {
			fmt.Println("\nRecent history")
			fmt.Println(strings.Repeat("─", 60))
			for _, t := range turns {
				content := t.Content
				if len(content) > 200 {
					content = content[:200] + "…"
				}
				fmt.Printf("[%s] %s\n", t.Role, content)
			}
		}
		return nil
	},
}

var episodeResetCmd = &cobra.Command{
	Use:   "reset <id>",
	Short: "Delete an episode and start fresh",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.EpisodeRepo().Delete(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Episode %s reset.\n", args[0])
		return nil
	},
}

var episodeTurnsCmd = &cobra.Command{
	Use:   "turns <id>",
	Short: "Show recorded turn events for an episode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryTurnEvents(context.Background(), store.QueryOpts{
			EpisodeID: args[0],
			Limit:     limit,
		})
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No turns recorded.")
			return nil
		}

		fmt.Printf("%-19s  %-5s  %-10s  %-6s  %-6s  %s\n",
			"Timestamp", "Turn", "Tier", "Rnds", "Diff", "Degr")
		fmt.Println(strings.Repeat("─", 64))
		for _, e := range events {
			degraded := ""
			if e.Degraded {
				degraded = "✗"
			}
			fmt.Printf("%-19s  %-5d  %-10s  %-6d  %-6.2f  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Turn, e.Tier, e.Rounds, e.Difficulty, degraded)
		}
		return nil
	},
}

// openStore opens the durable store from the resolved database path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func init() {
	episodeShowCmd.Flags().IntP("turns", "t", 10, "Number of history entries to show")
	episodeTurnsCmd.Flags().IntP("limit", "n", 20, "Number of turn events to show")

	episodeCmd.AddCommand(episodeListCmd)
	episodeCmd.AddCommand(episodeShowCmd)
	episodeCmd.AddCommand(episodeResetCmd)
	episodeCmd.AddCommand(episodeTurnsCmd)
}
