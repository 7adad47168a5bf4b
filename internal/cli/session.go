package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Live session commands",
	}

	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionListCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionSetCmd())
	cmd.AddCommand(newSessionAddLineCmd())
	cmd.AddCommand(newSessionDeleteLineCmd())
	cmd.AddCommand(newSessionAddPlayerCmd())
	cmd.AddCommand(newSessionRemovePlayerCmd())
	cmd.AddCommand(newSessionReorderCmd())
	cmd.AddCommand(newSessionResetCmd())
	cmd.AddCommand(newSessionAllowOverCmd())
	cmd.AddCommand(newSessionSaveCmd())
	cmd.AddCommand(newSessionEndCmd())
	cmd.AddCommand(newSessionDiscardCmd())

	return cmd
}

func newSessionCreateCmd() *cobra.Command {
	var players []string
	var goal, title string
	var limit float64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Start a new session",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"players": players,
				"goal":    goal,
			}
			if title != "" {
				req["title"] = title
			}
			if cmd.Flags().Changed("limit") {
				req["limit"] = limit
			}

			var result Session
			if err := client.Post("/api/v1/sessions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&players, "player", nil, "Player profile id (repeat for each player)")
	cmd.Flags().StringVar(&goal, "goal", "highest", "Ranking direction: highest or lowest")
	cmd.Flags().StringVar(&title, "title", "", "Session title")
	cmd.Flags().Float64Var(&limit, "limit", 0, "Point limit that triggers an alert")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newSessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List live sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Session

			if err := client.Get("/api/v1/sessions", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <session-id>",
		Short: "Show a session's score table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Get("/api/v1/sessions/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <session-id> <line-id> <player-id> <value>",
		Short: "Enter a score value",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/sessions/%s/lines/%s/values/%s", args[0], args[1], args[2])
			req := map[string]string{"value": args[3]}

			var result SetValueResult
			if err := client.Put(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionAddLineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-line <session-id>",
		Short: "Append an empty score line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Post("/api/v1/sessions/"+args[0]+"/lines", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionDeleteLineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-line <session-id> <line-id>",
		Short: "Delete a score line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/sessions/%s/lines/%s", args[0], args[1])
			var result Session

			if err := client.Do("DELETE", path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionAddPlayerCmd() *cobra.Command {
	var player string

	cmd := &cobra.Command{
		Use:   "add-player <session-id>",
		Short: "Add a registered player to a running session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"player_id": player}
			var result Session

			if err := client.Post("/api/v1/sessions/"+args[0]+"/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&player, "player", "", "Player profile id (required)")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newSessionRemovePlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-player <session-id> <player-id>",
		Short: "Remove a player from a running session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/sessions/%s/players/%s", args[0], args[1])
			var result Session

			if err := client.Do("DELETE", path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionReorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <session-id> <player-id>...",
		Short: "Change the display order of player columns",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string][]string{"order": args[1:]}
			var result Session

			if err := client.Put("/api/v1/sessions/"+args[0]+"/players/order", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <session-id>",
		Short: "Clear all scores, keep the players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Post("/api/v1/sessions/"+args[0]+"/reset", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionAllowOverCmd() *cobra.Command {
	var player string

	cmd := &cobra.Command{
		Use:   "allow-over <session-id>",
		Short: "Let a player keep playing past the point limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"player_id": player}
			var result Session

			if err := client.Post("/api/v1/sessions/"+args[0]+"/limit-exceptions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&player, "player", "", "Player profile id (required)")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newSessionSaveCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "save <session-id>",
		Short: "Save the game in progress to the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"title": title}
			var result GameRecord

			if err := client.Post("/api/v1/sessions/"+args[0]+"/save", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Game saved as %q", result.Title))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title for the saved game (required)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newSessionEndCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "end <session-id>",
		Short: "End the game and record the final standings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"title": title}
			var result EndResult

			if err := client.Post("/api/v1/sessions/"+args[0]+"/end", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title for the recorded game (required)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newSessionDiscardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discard <session-id>",
		Short: "Abandon a session without recording it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/sessions/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Session %s discarded", args[0]))
			return nil
		},
	}
}
