package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pupilplay/engine/internal/actions"
	"github.com/pupilplay/engine/internal/config"
	"github.com/pupilplay/engine/internal/gamemaster"
	"github.com/pupilplay/engine/internal/handlers"
	"github.com/pupilplay/engine/internal/llm"
	"github.com/pupilplay/engine/internal/orchestrator"
	"github.com/pupilplay/engine/internal/store"
	"github.com/pupilplay/engine/internal/tier"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Play an episode interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

func runChat(cmd *cobra.Command) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	orch, err := buildEngine(ctx, cfg, st)
	if err != nil {
		return err
	}

	episodeID, _ := cmd.Flags().GetString("episode")
	if episodeID == "" {
		episodeID = uuid.NewString()
	}

	fmt.Printf("Episode %s. Type a message, or /quit to exit.\n", episodeID)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			break
		}

		outcome, err := orch.Advance(ctx, episodeID, line)
		if err != nil && outcome == nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}

		fmt.Println()
		fmt.Println(outcome.FinalMessage)
		if outcome.Diagnostics.Degraded {
			fmt.Printf("(degraded: %s)\n", outcome.Diagnostics.Reason)
		}
		fmt.Printf("[difficulty %.2f, tier %s, rounds %d]\n\n",
			outcome.Difficulty, outcome.Diagnostics.Tier, outcome.Diagnostics.Rounds)
	}
	return scanner.Err()
}

// buildEngine wires the full engine: tiered providers behind breakers,
// the game master, the action registry with the built-in handlers, and
// the orchestrator over the durable episode store.
func buildEngine(ctx context.Context, cfg config.Config, st *store.Store) (*orchestrator.Orchestrator, error) {
	llmCfg := llm.ConfigFromEnv()
	if err := llmCfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: %w", err)
		}
		llmCfg = discovered
	}

	standard, err := llm.NewProvider(ctx, llmCfg.WithModel(cfg.StandardModel), "standard", st.EventRepo())
	if err != nil {
		return nil, fmt.Errorf("standard tier: %w", err)
	}
	advanced, err := llm.NewProvider(ctx, llmCfg.WithModel(cfg.AdvancedModel), "advanced", st.EventRepo())
	if err != nil {
		return nil, fmt.Errorf("advanced tier: %w", err)
	}

	selector, err := tier.NewSelector(
		[]tier.Tier{
			{Name: "standard", Threshold: 0, Provider: standard},
			{Name: "advanced", Threshold: cfg.AdvancedThreshold, Provider: advanced},
		},
		cfg.BreakerConfig(),
		tier.NewDegradedResponder(cfg.DegradedMessage),
	)
	if err != nil {
		return nil, err
	}

	registry := actions.NewRegistry()
	if err := handlers.Register(registry, handlers.Config{}); err != nil {
		return nil, err
	}

	orch, err := orchestrator.New(orchestrator.Deps{
		Store:      st.EpisodeRepo(),
		GameMaster: gamemaster.New(selector, gamemaster.DefaultConfig()),
		Dispatcher: actions.NewDispatcher(registry, cfg.DispatchConfig()),
		Registry:   registry,
		Renderer:   &gamemaster.PromptRenderer{Personality: cfg.Personality},
		Selector:   selector,
		Events:     st.EventRepo(),
	}, cfg.OrchestratorConfig())
	if err != nil {
		return nil, err
	}
	return orch, nil
}

func init() {
	chatCmd.Flags().StringP("episode", "e", "", "Episode ID to resume (default: new episode)")
}
