package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"postcraft/internal/model"
	"postcraft/internal/platform"
	"postcraft/internal/util"
)

// draftFlags collects a draft from --draft (YAML or JSON) and inline flags.
// Inline flags win over the file.
type draftFlags struct {
	file     string
	caption  string
	hashtags string
	image    string
	video    bool
}

func (f *draftFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "draft", "", "draft file (YAML or JSON)")
	cmd.Flags().StringVar(&f.caption, "caption", "", "caption text")
	cmd.Flags().StringVar(&f.hashtags, "hashtags", "", "comma separated hashtags")
	cmd.Flags().StringVar(&f.image, "image", "", "image URL")
	cmd.Flags().BoolVar(&f.video, "video", false, "the post carries a video")
}

func (f *draftFlags) resolve(cmd *cobra.Command) (model.ContentDraft, error) {
	var d model.ContentDraft
	if f.file != "" {
		b, err := os.ReadFile(f.file)
		if err != nil {
			return d, err
		}
		if err := yaml.Unmarshal(b, &d); err != nil {
			return d, fmt.Errorf("parse draft %s: %w", f.file, err)
		}
	}
	fl := cmd.Flags()
	if fl.Changed("caption") {
		d.Caption = f.caption
	}
	if fl.Changed("hashtags") {
		d.Hashtags = util.SplitList(f.hashtags)
	}
	if fl.Changed("image") {
		d.ImageURL = f.image
	}
	if fl.Changed("video") {
		d.HasVideo = f.video
	}
	if d.Hashtags == nil {
		d.Hashtags = []string{}
	}
	return d, nil
}

func bindPlatform(cmd *cobra.Command, dst *string) {
	cmd.Flags().StringVarP(dst, "platform", "p", "", "target platform: instagram|twitter|linkedin|tiktok|facebook")
}

func requirePlatform(name string) (platform.Platform, error) {
	if name == "" {
		return 0, fmt.Errorf("--platform is required")
	}
	return platform.Parse(name)
}
