package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"podclip/internal/clipupdate"
	"podclip/internal/status"
	"podclip/internal/store"
)

func newClipCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clip",
		Short: "Record and list clip processing results",
	}
	cmd.AddCommand(newClipUpdateCommand(ctx))
	cmd.AddCommand(newClipListCommand(ctx))
	return cmd
}

func newClipUpdateCommand(ctx *commandContext) *cobra.Command {
	var (
		clipStatus string
		storageKey string
		fileSize   int64
		duration   float64
		startedAt  string
		errMessage string
		errCode    string
		metadata   string
	)
	cmd := &cobra.Command{
		Use:   "update <episodeId> <clipId>",
		Short: "Apply a partial update to a clip",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			req := clipupdate.Request{
				EpisodeID: strings.TrimSpace(args[0]),
				ClipID:    strings.TrimSpace(args[1]),
				Status:    strings.TrimSpace(clipStatus),
			}
			if flags.Changed("storage-key") {
				req.ClipStorageKey = &storageKey
			}
			if flags.Changed("file-size") {
				req.FileSize = &fileSize
			}
			if flags.Changed("duration") {
				req.Duration = &duration
			}
			if flags.Changed("started-at") {
				req.ProcessingStartedAt = &startedAt
			}
			if flags.Changed("metadata") {
				if err := json.Unmarshal([]byte(metadata), &req.ProcessingMetadata); err != nil {
					return fmt.Errorf("metadata must be a JSON object: %w", err)
				}
			}
			if flags.Changed("error") || flags.Changed("error-code") {
				req.Error = &clipupdate.ErrorInput{Message: errMessage}
				if errCode != "" {
					req.Error.Code = errCode
				}
			}

			defaultStatus, _ := status.ParseClipStatus(cfg.Clips.DefaultStatus)
			updater := clipupdate.NewUpdater(clipupdate.WithDefaultStatus(defaultStatus))
			update, err := updater.Build(req)
			if err != nil {
				return err
			}
			return ctx.withStore(func(st *store.Store) error {
				clip, err := st.ApplyClipUpdate(commandCtx(cmd), update)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, clip)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Clip %s/%s is %s\n", clip.EpisodeID, clip.ClipID,
					displayClipStatus(clip.Status, shouldColorize(cmd.OutOrStdout())))
				return nil
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&clipStatus, "status", "", "Clip status (defaults to clips.default_status)")
	flags.StringVar(&storageKey, "storage-key", "", "Object-store key of the assembled clip")
	flags.Int64Var(&fileSize, "file-size", 0, "Clip size in bytes")
	flags.Float64Var(&duration, "duration", 0, "Clip duration in seconds")
	flags.StringVar(&startedAt, "started-at", "", "RFC 3339 time processing started")
	flags.StringVar(&errMessage, "error", "", "Failure message (stored when status is failed)")
	flags.StringVar(&errCode, "error-code", "", "Failure code")
	flags.StringVar(&metadata, "metadata", "", "Processing metadata as a JSON object")
	return cmd
}

func newClipListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <episodeId>",
		Short: "List the clips recorded for an episode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				clips, err := st.ListClips(commandCtx(cmd), args[0])
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					if clips == nil {
						clips = []store.Clip{}
					}
					return writeJSON(cmd, clips)
				}
				out := cmd.OutOrStdout()
				if len(clips) == 0 {
					fmt.Fprintln(out, "No clips recorded")
					return nil
				}
				colorize := shouldColorize(out)
				rows := make([][]string, 0, len(clips))
				for _, clip := range clips {
					rows = append(rows, []string{
						clip.ClipID,
						displayClipStatus(clip.Status, colorize),
						formatOptionalFloat(clip.Duration),
						formatOptionalInt(clip.FileSize),
						clip.ClipStorageKey,
						clip.UpdatedAt,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Clip", "Status", "Duration", "Size", "Storage Key", "Updated"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatOptionalInt(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}
