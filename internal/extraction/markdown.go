package extraction

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	htmlTagRe     = regexp.MustCompile(`<[^>]+>`)
	mdLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern    = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// RemoveLinks strips markdown link syntax down to the anchor text and drops
// bare URLs entirely.
func RemoveLinks(input string) string {
	input = mdLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders markdown and flattens the result to plain
// prose.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	stripped := htmlTagRe.ReplaceAllString(string(output), " ")
	plainText := strings.Join(strings.Fields(stripped), " ")

	return RemoveLinks(plainText)
}

func (p *Pipeline) extractMarkdown(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read markdown file: %w", err)
	}
	return ConvertMarkdownToText(string(content)), nil
}
