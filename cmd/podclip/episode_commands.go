package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"podclip/internal/episode"
	"podclip/internal/status"
	"podclip/internal/store"
)

func newEpisodeCommand(ctx *commandContext) *cobra.Command {
	var tenant string
	cmd := &cobra.Command{
		Use:   "episode",
		Short: "Create and inspect episodes",
	}
	cmd.PersistentFlags().StringVarP(&tenant, "tenant", "t", "", "Tenant that owns the episode")
	_ = cmd.MarkPersistentFlagRequired("tenant")

	cmd.AddCommand(newEpisodeCreateCommand(ctx, &tenant))
	cmd.AddCommand(newEpisodeShowCommand(ctx, &tenant))
	cmd.AddCommand(newEpisodeStatusCommand(ctx, &tenant))
	return cmd
}

func newEpisodeCreateCommand(ctx *commandContext, tenant *string) *cobra.Command {
	var (
		ep        episode.Episode
		initial   string
		platforms []string
		themes    []string
	)
	cmd := &cobra.Command{
		Use:   "create <episodeId>",
		Short: "Create or replace an episode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep.TenantID = strings.TrimSpace(*tenant)
			ep.ID = strings.TrimSpace(args[0])
			ep.Platforms = trimList(platforms)
			ep.Themes = trimList(themes)
			if label := strings.TrimSpace(initial); label != "" {
				ep.Status = episode.NewStatusRecord(status.Append(nil, status.Label(label), time.Now()), "")
			}
			return ctx.withStore(func(st *store.Store) error {
				saved, err := st.PutEpisode(commandCtx(cmd), ep)
				if err != nil {
					return err
				}
				return printEpisode(cmd, ctx, saved)
			})
		},
	}
	cmd.Flags().StringVar(&ep.Title, "title", "", "Episode title")
	cmd.Flags().IntVar(&ep.EpisodeNumber, "number", 0, "Episode number")
	cmd.Flags().StringVar(&ep.Summary, "summary", "", "Short summary")
	cmd.Flags().StringVar(&ep.AirDate, "air-date", "", "Air date")
	cmd.Flags().StringVar(&ep.SeriesName, "series", "", "Series name")
	cmd.Flags().StringSliceVar(&platforms, "platform", nil, "Distribution platform (repeatable)")
	cmd.Flags().StringSliceVar(&themes, "theme", nil, "Theme tag (repeatable)")
	cmd.Flags().StringVar(&initial, "status", string(status.LabelDraft), "Initial status; empty records no history")
	return cmd
}

func newEpisodeShowCommand(ctx *commandContext, tenant *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <episodeId>",
		Short: "Show an episode and its current status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				ep, err := st.GetEpisode(commandCtx(cmd), strings.TrimSpace(*tenant), args[0])
				if err != nil {
					return err
				}
				return printEpisode(cmd, ctx, ep)
			})
		},
	}
}

func newEpisodeStatusCommand(ctx *commandContext, tenant *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status <episodeId> <label>",
		Short: "Append a status to an episode's history",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := status.Label(strings.TrimSpace(args[1]))
			return ctx.withStore(func(st *store.Store) error {
				ep, err := st.AppendEpisodeStatus(commandCtx(cmd), strings.TrimSpace(*tenant), args[0], label, time.Now())
				if err != nil {
					return err
				}
				return printEpisode(cmd, ctx, ep)
			})
		},
	}
}

func printEpisode(cmd *cobra.Command, ctx *commandContext, ep episode.Episode) error {
	resp := episode.Format(ep, ep.ID)
	if ctx.jsonOutput() {
		return writeJSON(cmd, resp)
	}

	current := "-"
	if resp.Status != nil {
		current = string(*resp.Status)
	}
	rows := [][]string{
		{"ID", resp.ID},
		{"Title", resp.Title},
		{"Number", strconv.Itoa(resp.EpisodeNumber)},
		{"Status", current},
		{"Created", resp.CreatedAt},
		{"Updated", resp.UpdatedAt},
	}
	if resp.SeriesName != "" {
		rows = append(rows, []string{"Series", resp.SeriesName})
	}
	if resp.AirDate != "" {
		rows = append(rows, []string{"Air Date", resp.AirDate})
	}
	if len(resp.Platforms) > 0 {
		rows = append(rows, []string{"Platforms", strings.Join(resp.Platforms, ", ")})
	}
	if len(resp.Themes) > 0 {
		rows = append(rows, []string{"Themes", strings.Join(resp.Themes, ", ")})
	}
	if resp.Summary != "" {
		rows = append(rows, []string{"Summary", resp.Summary})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, nil))

	history := ep.Status.History()
	if len(history) > 0 {
		histRows := make([][]string, 0, len(history))
		for _, entry := range history {
			histRows = append(histRows, []string{string(entry.Status), entry.Timestamp})
		}
		fmt.Fprintln(out, "History:")
		fmt.Fprintln(out, renderTable([]string{"Status", "Timestamp"}, histRows, nil))
	}
	return nil
}

func trimList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
