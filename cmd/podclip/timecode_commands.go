package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"podclip/internal/timecode"
)

func newTimecodeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "timecode",
		Short:       "Convert between time codes and seconds",
		Annotations: skipConfig,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "parse <HH:MM:SS|MM:SS>",
		Short: "Convert a time code to seconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := timecode.Parse(args[0])
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]any{"timeCode": args[0], "seconds": seconds})
			}
			fmt.Fprintln(cmd.OutOrStdout(), seconds)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "format <seconds>",
		Short: "Render seconds as HH:MM:SS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("seconds %q is not a number", args[0])
			}
			formatted, err := timecode.Format(seconds)
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]any{"seconds": seconds, "timeCode": formatted})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatted)
			return nil
		},
	})
	return cmd
}

func newDurationCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "duration <start> <end> [<start> <end>...]",
		Short:       "Sum the lengths of time-coded ranges",
		Annotations: skipConfig,
		Args:        cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ranges, err := parseRangeArgs(args)
			if err != nil {
				return err
			}
			total, err := timecode.TotalDuration(ranges)
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]any{"ranges": ranges, "totalSeconds": total})
			}
			fmt.Fprintln(cmd.OutOrStdout(), total)
			return nil
		},
	}
}

// parseRangeArgs pairs positional arguments into ranges.
func parseRangeArgs(args []string) ([]timecode.Range, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("ranges need a start and an end; got %d time codes", len(args))
	}
	ranges := make([]timecode.Range, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		ranges = append(ranges, timecode.Range{StartTime: args[i], EndTime: args[i+1]})
	}
	return ranges, nil
}
