package search

import "fmt"

const collapsedTagsCount = 8

var popularTags = []string{
	"React",
	"TypeScript",
	"Node.js",
	"Python",
	"Vue.js",
	"Angular",
	"Next.js",
	"Express",
	"MongoDB",
	"PostgreSQL",
	"AWS",
	"Docker",
}

type PopularTagsView struct {
	Tags []string `json:"tags"`
	// e.g. "+4 more", empty when everything is shown
	MoreLabel string `json:"moreLabel,omitempty"`
}

func PopularTags() []string {
	return append([]string(nil), popularTags...)
}

func GetPopularTagsView(showAll bool) PopularTagsView {
	if showAll || len(popularTags) <= collapsedTagsCount {
		return PopularTagsView{Tags: PopularTags()}
	}

	return PopularTagsView{
		Tags:      append([]string(nil), popularTags[:collapsedTagsCount]...),
		MoreLabel: fmt.Sprintf("+%d more", len(popularTags)-collapsedTagsCount),
	}
}

// CountLabel renders the result counter, e.g. "1 project found".
func CountLabel(count int, noun string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s found", count, noun)
	}

	return fmt.Sprintf("%d %ss found", count, noun)
}

const previewTagsCount = 3

// TagsPreview is the badge row of a card: the first few tags and a "+N" badge
// for the rest.
type TagsPreview struct {
	Visible       []string `json:"visible"`
	Overflow      int      `json:"overflow"`
	OverflowLabel string   `json:"overflowLabel,omitempty"`
}

func PreviewTags(tags []string) TagsPreview {
	if len(tags) <= previewTagsCount {
		return TagsPreview{Visible: append([]string{}, tags...)}
	}

	overflow := len(tags) - previewTagsCount
	return TagsPreview{
		Visible:       append([]string{}, tags[:previewTagsCount]...),
		Overflow:      overflow,
		OverflowLabel: fmt.Sprintf("+%d", overflow),
	}
}
