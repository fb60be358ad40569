package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"podclip/internal/clipplan"
	"podclip/internal/concat"
	"podclip/internal/storagekey"
)

func newKeysCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "keys",
		Short:       "Print object-store keys for clips and segments",
		Annotations: skipConfig,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clip <episodeId> <clipId>",
		Short: "Print the key of an assembled clip",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printKeys(cmd, ctx, []string{storagekey.ClipKey(args[0], args[1])})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "segment <episodeId> <clipId> <index>",
		Short: "Print the key of one clip segment",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseCount(args[2], "index", 0)
			if err != nil {
				return err
			}
			return printKeys(cmd, ctx, []string{storagekey.SegmentKey(args[0], args[1], index)})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "segments <episodeId> <clipId> <count>",
		Short: "Print the keys of the first count segments",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := parseCount(args[2], "count", 1)
			if err != nil {
				return err
			}
			return printKeys(cmd, ctx, storagekey.SegmentKeys(args[0], args[1], count))
		},
	})
	return cmd
}

func printKeys(cmd *cobra.Command, ctx *commandContext, keys []string) error {
	if ctx.jsonOutput() {
		return writeJSON(cmd, keys)
	}
	out := cmd.OutOrStdout()
	for _, key := range keys {
		fmt.Fprintln(out, key)
	}
	return nil
}

func parseCount(value, name string, min int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < min {
		return 0, fmt.Errorf("%s must be an integer >= %d, got %q", name, min, value)
	}
	return n, nil
}

func newManifestCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:         "manifest <episodeId> <clipId> <segmentCount>",
		Short:       "Render the ffmpeg concat manifest for a clip's segments",
		Annotations: skipConfig,
		Args:        cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := parseCount(args[2], "segment count", 1)
			if err != nil {
				return err
			}
			keys := storagekey.SegmentKeys(args[0], args[1], count)
			if outputPath != "" {
				if err := concat.WriteManifest(outputPath, keys); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote manifest to %s\n", outputPath)
				return nil
			}
			manifest, err := concat.BuildManifest(keys)
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]any{"segmentKeys": keys, "manifest": manifest})
			}
			fmt.Fprintln(cmd.OutOrStdout(), manifest)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the manifest to this file instead of stdout")
	return cmd
}

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:         "plan <episodeId> <clipId> <start> <end> [<start> <end>...]",
		Short:       "Plan a clip from time-coded segments",
		Annotations: skipConfig,
		Args:        cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ranges, err := parseRangeArgs(args[2:])
			if err != nil {
				return err
			}
			plan, err := clipplan.Build(args[0], args[1], ranges)
			if err != nil {
				return err
			}

			var concatPlan *concat.Plan
			if write {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				manifestPath := filepath.Join(cfg.Paths.ManifestDir, manifestFilename(plan.EpisodeID, plan.ClipID))
				built, err := concat.NewPlan(plan.SegmentKeys, manifestPath, plan.ClipKey)
				if err != nil {
					return err
				}
				if err := built.Write(); err != nil {
					return err
				}
				concatPlan = &built
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, struct {
					clipplan.Plan
					Concat *concat.Plan `json:"concat,omitempty"`
				}{plan, concatPlan})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Clip key: %s\n", plan.ClipKey)
			rows := make([][]string, 0, len(plan.Segments))
			for _, seg := range plan.Segments {
				rows = append(rows, []string{
					strconv.Itoa(seg.Index),
					seg.StartTime,
					seg.EndTime,
					strconv.FormatInt(seg.Seconds, 10),
					seg.StorageKey,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Start", "End", "Seconds", "Segment Key"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
			))
			fmt.Fprintf(out, "Total: %s (%ds)\n", plan.TotalDuration, plan.TotalSeconds)
			if concatPlan != nil {
				fmt.Fprintf(out, "Manifest: %s\n", concatPlan.ManifestPath)
				fmt.Fprintf(out, "Run: ffmpeg %s\n", strings.Join(concatPlan.Args, " "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the concat manifest under the configured manifest directory")
	return cmd
}

// manifestFilename flattens identifiers into a single path element.
func manifestFilename(episodeID, clipID string) string {
	replacer := strings.NewReplacer("/", "_", string(filepath.Separator), "_")
	return replacer.Replace(episodeID) + "-" + replacer.Replace(clipID) + ".txt"
}
