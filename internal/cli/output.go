package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"postcraft/internal/model"
	"postcraft/internal/platform"
	"postcraft/internal/theme"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	warnMark = color.New(color.FgYellow).Sprint("!")
	errMark  = color.New(color.FgRed).Sprint("✗")
	heading  = color.New(color.Bold).SprintFunc()
)

func printBanner(w io.Writer) { theme.PrintBanner(w) }

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func hashtagLine(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + t
	}
	return strings.Join(out, " ")
}

func printRendering(w io.Writer, r model.PlatformRendering) {
	state := ""
	if r.Truncated {
		state = "  (truncated)"
	}
	fmt.Fprintf(w, "%s  %d/%d chars  %d hashtags%s\n", heading(r.Platform.DisplayName()), r.CharacterCount, r.MaxCharacters, len(r.Hashtags), state)
	fmt.Fprintln(w, r.Content)
	if len(r.Hashtags) > 0 {
		fmt.Fprintln(w, hashtagLine(r.Hashtags))
	}
	for _, m := range r.Warnings {
		fmt.Fprintf(w, "  %s %s\n", warnMark, m)
	}
	for _, m := range r.Optimizations {
		fmt.Fprintf(w, "  → %s\n", m)
	}
}

func statusMark(s model.CheckStatus) string {
	switch s {
	case model.StatusPass:
		return okMark
	case model.StatusWarning:
		return warnMark
	default:
		return errMark
	}
}

func printReport(w io.Writer, r model.PreflightReport) {
	fmt.Fprintf(w, "%s preflight: %d passed, %d warnings, %d errors\n", heading(r.Platform.DisplayName()), r.Passed, r.Warnings, r.Errors)
	for _, c := range r.Checks {
		fmt.Fprintf(w, "  %s %-24s %s\n", statusMark(c.Status), c.Label, c.Message)
	}
	if r.CanProceed {
		fmt.Fprintln(w, "Ready to publish")
	} else {
		fmt.Fprintln(w, "Blocked: fix the errors above before publishing")
	}
}

func printPrediction(w io.Writer, p model.EngagementPrediction) {
	fmt.Fprintf(w, "%s score %d/100 (confidence %d%%, %s viral potential)\n", heading(p.Platform.DisplayName()), p.Score, p.Confidence, p.ViralPotential)
	fmt.Fprintf(w, "  estimated reach %d, engagement %d\n", p.EstimatedReach, p.EstimatedEngagement)
	fmt.Fprintf(w, "  best time to post %s\n", p.BestTimeToPost.Format("Mon Jan 2 15:04 MST"))
	for _, f := range p.Factors {
		mark := "·"
		switch f.Impact {
		case model.ImpactPositive:
			mark = okMark
		case model.ImpactNegative:
			mark = errMark
		}
		fmt.Fprintf(w, "  %s %-24s %s\n", mark, f.Name, f.Description)
	}
	for _, s := range p.Suggestions {
		fmt.Fprintf(w, "  → %s\n", s)
	}
}

func printSlot(w io.Writer, p platform.Platform, t time.Time) {
	fmt.Fprintf(w, "%-10s %s\n", p.DisplayName(), t.Format("Mon Jan 2 15:04 MST"))
}
