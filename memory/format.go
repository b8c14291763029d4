package memory

import (
	"fmt"
	"strings"

	"github.com/hearthchat/hearth/core"
)

// EmptyPlaceholder is returned when there are no stored memories, so
// the system prompt never carries an empty section.
const EmptyPlaceholder = "No stored information yet."

// Bucket labels. Unrecognized categories render under an "Other (...)"
// label after the fixed buckets.
const (
	labelCritical   = "Important:"
	labelPreference = "Preferences:"
	labelFact       = "Facts:"
	labelEtc        = "Other:"
)

// catchAllCategory absorbs memories created without a category.
const catchAllCategory = "etc"

// FormatForPrompt renders memories as a grouped, labeled text block
// for the system prompt.
//
// Buckets appear in fixed priority order: critical, preference, fact,
// then every remaining category in first-seen order. Within a bucket,
// memories keep the order the store returned them (ascending creation
// time). Trailing whitespace is trimmed from the result.
func FormatForPrompt(memories []core.Memory) string {
	if len(memories) == 0 {
		return EmptyPlaceholder
	}

	grouped := make(map[string][]string)
	var seen []string
	for _, m := range memories {
		category := m.Category
		if category == "" {
			category = catchAllCategory
		}
		if _, ok := grouped[category]; !ok {
			seen = append(seen, category)
		}
		grouped[category] = append(grouped[category], m.Content)
	}

	var blocks []string
	appendBucket := func(category string) {
		contents, ok := grouped[category]
		if !ok {
			return
		}
		var b strings.Builder
		b.WriteString(bucketLabel(category))
		for _, content := range contents {
			b.WriteString("\n- ")
			b.WriteString(content)
		}
		blocks = append(blocks, b.String())
		delete(grouped, category)
	}

	appendBucket("critical")
	appendBucket("preference")
	appendBucket("fact")
	for _, category := range seen {
		appendBucket(category)
	}

	return strings.TrimSpace(strings.Join(blocks, "\n\n"))
}

func bucketLabel(category string) string {
	switch category {
	case "critical":
		return labelCritical
	case "preference":
		return labelPreference
	case "fact":
		return labelFact
	case catchAllCategory:
		return labelEtc
	default:
		return fmt.Sprintf("Other (%s):", category)
	}
}
