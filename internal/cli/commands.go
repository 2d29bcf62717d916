package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"postcraft/internal/analytics"
	"postcraft/internal/config"
	"postcraft/internal/metrics"
	"postcraft/internal/platform"
	"postcraft/internal/schedule"
	"postcraft/internal/util"
)

func (a *app) newInitCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: run("init", func(cmd *cobra.Command, args []string) error {
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			abs, _ := filepath.Abs(path)
			printBanner(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), "Config written to:", abs)
			return nil
		}),
	}
	cmd.Flags().StringVar(&path, "path", "./postcraft.yaml", "path to write config")
	return cmd
}

func (a *app) newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List platform limits and recommendations",
		RunE: run("platforms", func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, platform.Catalog())
			}
			fmt.Fprintf(out, "%-10s %8s %8s %10s %12s %6s\n", "PLATFORM", "CAPTION", "HASHTAGS", "RECOMMEND", "OPTIMAL", "LINKS")
			for _, p := range platform.Catalog() {
				fmt.Fprintf(out, "%-10s %8d %8d %10s %12s %6t\n",
					p.Platform.DisplayName(), p.CaptionLimit, p.HashtagLimit,
					fmt.Sprintf("%d-%d", p.RecommendedHashtags.Min, p.RecommendedHashtags.Max),
					fmt.Sprintf("%d-%d", p.OptimalCaptionLength.Min, p.OptimalCaptionLength.Max),
					p.SupportsLinks)
			}
			return nil
		}),
	}
}

func (a *app) newAdaptCmd() *cobra.Command {
	var df draftFlags
	var plat string
	var all bool
	cmd := &cobra.Command{
		Use:   "adapt",
		Short: "Adapt a draft to one platform or all of them",
		RunE: run("adapt", func(cmd *cobra.Command, args []string) error {
			e, _, err := a.engine()
			if err != nil {
				return err
			}
			d, err := df.resolve(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if all {
				rs := e.AdaptForAllPlatforms(d)
				for _, r := range rs {
					metrics.ObserveRendering(r)
				}
				if a.jsonOut {
					return writeJSON(out, map[string]any{"renderings": rs, "summary": analytics.Summarize(rs)})
				}
				for i, r := range rs {
					if i > 0 {
						fmt.Fprintln(out)
					}
					printRendering(out, r)
				}
				s := analytics.Summarize(rs)
				fmt.Fprintf(out, "\n%d platforms, %d truncated, %d with hidden hashtags\n", s.Platforms, len(s.Truncated), len(s.HashtagsHidden))
				return nil
			}
			p, err := requirePlatform(plat)
			if err != nil {
				return err
			}
			r := e.Adapt(d, p)
			metrics.ObserveRendering(r)
			if a.jsonOut {
				return writeJSON(out, r)
			}
			printRendering(out, r)
			return nil
		}),
	}
	df.bind(cmd)
	bindPlatform(cmd, &plat)
	cmd.Flags().BoolVar(&all, "all", false, "adapt for every platform")
	return cmd
}

func (a *app) newPreflightCmd() *cobra.Command {
	var df draftFlags
	var plat string
	cmd := &cobra.Command{
		Use:   "preflight",
		Short: "Run publish checks; exits 2 when an error blocks publishing",
		RunE: run("preflight", func(cmd *cobra.Command, args []string) error {
			e, _, err := a.engine()
			if err != nil {
				return err
			}
			d, err := df.resolve(cmd)
			if err != nil {
				return err
			}
			p, err := requirePlatform(plat)
			if err != nil {
				return err
			}
			r := e.Validate(d, p, d.HasImage(), d.HasVideo)
			metrics.ObservePreflight(r)
			if a.jsonOut {
				err = writeJSON(cmd.OutOrStdout(), r)
			} else {
				printReport(cmd.OutOrStdout(), r)
			}
			if err != nil {
				return err
			}
			if !r.CanProceed {
				return &ExitError{Code: 2, Msg: fmt.Sprintf("preflight blocked: %d error(s)", r.Errors)}
			}
			return nil
		}),
	}
	df.bind(cmd)
	bindPlatform(cmd, &plat)
	return cmd
}

func (a *app) newPredictCmd() *cobra.Command {
	var df draftFlags
	var plat string
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict engagement for a draft",
		RunE: run("predict", func(cmd *cobra.Command, args []string) error {
			e, _, err := a.engine()
			if err != nil {
				return err
			}
			d, err := df.resolve(cmd)
			if err != nil {
				return err
			}
			p, err := requirePlatform(plat)
			if err != nil {
				return err
			}
			pred := e.Predict(d, p)
			metrics.ObservePrediction(pred)
			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), pred)
			}
			printPrediction(cmd.OutOrStdout(), pred)
			return nil
		}),
	}
	df.bind(cmd)
	bindPlatform(cmd, &plat)
	return cmd
}

func (a *app) newScheduleCmd() *cobra.Command {
	var plat string
	var all bool
	var count int
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the next optimal posting windows",
		RunE: run("schedule", func(cmd *cobra.Command, args []string) error {
			e, _, err := a.engine()
			if err != nil {
				return err
			}
			clock, err := a.clock()
			if err != nil {
				return err
			}
			now := clock()
			out := cmd.OutOrStdout()
			if all {
				heat := analytics.WindowHeatmap(platform.All())
				slots := analytics.RankedSlots(heat)
				if a.jsonOut {
					type row struct {
						Day       time.Weekday        `json:"day"`
						Hour      int                 `json:"hour"`
						Platforms []platform.Platform `json:"platforms"`
					}
					rows := make([]row, 0, len(slots))
					for _, s := range slots {
						rows = append(rows, row{Day: s.Day, Hour: s.Hour, Platforms: heat[s]})
					}
					return writeJSON(out, rows)
				}
				fmt.Fprintln(out, heading("Next windows"))
				for _, p := range platform.All() {
					printSlot(out, p, e.NextOptimalTime(p, now))
				}
				fmt.Fprintln(out, heading("Shared weekly slots"))
				for _, s := range slots {
					names := ""
					for i, p := range heat[s] {
						if i > 0 {
							names += ", "
						}
						names += p.DisplayName()
					}
					fmt.Fprintf(out, "  %-9s %02d:00  %s\n", s.Day, s.Hour, names)
				}
				return nil
			}
			p, err := requirePlatform(plat)
			if err != nil {
				return err
			}
			times := schedule.Upcoming(p, now, count)
			if a.jsonOut {
				return writeJSON(out, map[string]any{"platform": p, "next": e.NextOptimalTime(p, now), "upcoming": times})
			}
			for _, t := range times {
				printSlot(out, p, t)
			}
			return nil
		}),
	}
	bindPlatform(cmd, &plat)
	cmd.Flags().BoolVar(&all, "all", false, "show every platform and the shared weekly heatmap")
	cmd.Flags().IntVarP(&count, "count", "n", 3, "number of upcoming windows")
	return cmd
}

func (a *app) newHashtagsCmd() *cobra.Command {
	var caption, plat, niche, existing string
	cmd := &cobra.Command{
		Use:   "hashtags",
		Short: "Suggest hashtags for a caption",
		RunE: run("hashtags", func(cmd *cobra.Command, args []string) error {
			e, _, err := a.engine()
			if err != nil {
				return err
			}
			p, err := requirePlatform(plat)
			if err != nil {
				return err
			}
			have := util.SplitList(existing)
			var tags []string
			if niche != "" {
				tags = e.SuggestForNiche(caption, niche, p, have)
			} else {
				tags = e.Suggest(caption, p, have)
			}
			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), tags)
			}
			if len(tags) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No suggestions")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), hashtagLine(tags))
			return nil
		}),
	}
	cmd.Flags().StringVar(&caption, "caption", "", "caption text")
	cmd.Flags().StringVar(&existing, "existing", "", "comma separated hashtags already on the post")
	cmd.Flags().StringVar(&niche, "niche", "", "account niche, e.g. \"fitness coaching\"")
	bindPlatform(cmd, &plat)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "postcraft", Version)
		},
	}
}
