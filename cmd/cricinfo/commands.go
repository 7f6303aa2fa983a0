package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/cricinfo"
)

func (c *cli) matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <series-id> <match-id>",
		Short: "Show the match summary and innings totals.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseRefArgs(args)
			if err != nil {
				return err
			}
			m, err := ref.ToMatch(cmd.Context(), c.client())
			if err != nil {
				return friendly(err)
			}
			return c.print(m.Record(), func(w io.Writer) { renderMatch(w, m) })
		},
	}
}

func (c *cli) scorecardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scorecard <series-id> <match-id>",
		Short: "Show the batting scorecard of every innings.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseRefArgs(args)
			if err != nil {
				return err
			}
			m, err := c.client().MatchByRef(cmd.Context(), ref)
			if err != nil {
				return friendly(err)
			}
			return c.print(m.BattingScorecard(), func(w io.Writer) { renderScorecard(w, m) })
		},
	}
}

func (c *cli) summaryCmd() *cobra.Command {
	var (
		date    string
		hydrate bool
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "List the matches on the results page of a day.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := c.client().Summary(cmd.Context(), date)
			if err != nil {
				return friendly(err)
			}
			if !hydrate {
				return c.print(summary.Matches, func(w io.Writer) {
					renderRefs(w, "Results "+summary.Date.Format("2006-01-02"), summary.Matches)
				})
			}
			matches, err := summary.Hydrate(cmd.Context())
			if err != nil {
				return friendly(err)
			}
			return c.print(records(matches), func(w io.Writer) { renderMatchList(w, matches) })
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day as YYYY-MM-DD or DD-MM-YYYY (default today, UTC)")
	cmd.Flags().BoolVar(&hydrate, "hydrate", false, "fetch every listed match")
	return cmd
}

func (c *cli) seriesCmd() *cobra.Command {
	var (
		events  bool
		matches bool
	)
	cmd := &cobra.Command{
		Use:   "series <series-id>",
		Short: "Show a series and list its matches.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("series id", args[0])
			if err != nil {
				return err
			}
			series, err := c.client().Series(cmd.Context(), id)
			if err != nil {
				return friendly(err)
			}

			switch {
			case matches:
				list, err := series.Matches(cmd.Context())
				if err != nil {
					return friendly(err)
				}
				return c.print(records(list), func(w io.Writer) { renderMatchList(w, list) })
			case events:
				list, err := series.Events(cmd.Context())
				if err != nil {
					return friendly(err)
				}
				return c.print(list, func(w io.Writer) { renderEvents(w, series.Name(), list) })
			default:
				refs, err := series.MatchRefs(cmd.Context())
				if err != nil {
					return friendly(err)
				}
				return c.print(series.Record(), func(w io.Writer) {
					renderSeries(w, series)
					renderRefs(w, "Matches", refs)
				})
			}
		},
	}
	cmd.Flags().BoolVar(&events, "events", false, "hydrate every listed event document")
	cmd.Flags().BoolVar(&matches, "matches", false, "fetch and normalize every listed match")
	return cmd
}

func (c *cli) seasonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "season <series-id> <year>",
		Short: "Show one season of a series.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("series id", args[0])
			if err != nil {
				return err
			}
			year, err := parseID("year", args[1])
			if err != nil {
				return err
			}
			season, err := c.client().Season(cmd.Context(), id, int(year))
			if err != nil {
				return friendly(err)
			}
			return c.print(season, func(w io.Writer) { renderSeason(w, season) })
		},
	}
}

func (c *cli) groundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ground <ground-id>",
		Short: "Show a ground profile.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("ground id", args[0])
			if err != nil {
				return err
			}
			ground, err := c.client().Ground(cmd.Context(), id)
			if err != nil {
				return friendly(err)
			}
			return c.print(ground, func(w io.Writer) { renderGround(w, ground) })
		},
	}
}

func (c *cli) playerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player <player-id>",
		Short: "Show a player profile with career averages.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("player id", args[0])
			if err != nil {
				return err
			}
			player, err := c.client().Player(cmd.Context(), id)
			if err != nil {
				return friendly(err)
			}
			return c.print(player, func(w io.Writer) { renderPlayer(w, player) })
		},
	}
}

func (c *cli) teamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team <league-id> <team-id>",
		Short: "Show a team profile within a league.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			leagueID, err := parseID("league id", args[0])
			if err != nil {
				return err
			}
			teamID, err := parseID("team id", args[1])
			if err != nil {
				return err
			}
			team, err := c.client().Team(cmd.Context(), leagueID, teamID)
			if err != nil {
				return friendly(err)
			}
			return c.print(team, func(w io.Writer) { renderTeam(w, team) })
		},
	}
}

func (c *cli) liveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "live",
		Short: "List the matches on the livescore feed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scores, err := c.client().LiveScores(cmd.Context())
			if err != nil {
				return friendly(err)
			}
			return c.print(scores, func(w io.Writer) { renderLiveScores(w, scores) })
		},
	}
}

func records(matches []*cricinfo.Match) []cricinfo.MatchRecord {
	out := make([]cricinfo.MatchRecord, len(matches))
	for idx, m := range matches {
		out[idx] = m.Record()
	}
	return out
}

