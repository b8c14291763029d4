package memory_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthchat/hearth/core"
	"github.com/hearthchat/hearth/memory"
)

func mem(category, content string) core.Memory {
	return core.Memory{Category: category, Content: content}
}

func TestFormatForPrompt_Empty(t *testing.T) {
	assert.Equal(t, "No stored information yet.", memory.FormatForPrompt(nil))
	assert.Equal(t, "No stored information yet.", memory.FormatForPrompt([]core.Memory{}))
}

func TestFormatForPrompt_Deterministic(t *testing.T) {
	memories := []core.Memory{
		mem("fact", "lives in Seoul"),
		mem("critical", "peanut allergy"),
		mem("preference", "prefers short answers"),
		mem("hobby", "plays piano"),
	}

	first := memory.FormatForPrompt(memories)
	second := memory.FormatForPrompt(memories)
	assert.Equal(t, first, second)
}

func TestFormatForPrompt_BucketOrder(t *testing.T) {
	// Deliberately scrambled input: bucket order must not depend on it.
	memories := []core.Memory{
		mem("hobby", "plays piano"),
		mem("fact", "lives in Seoul"),
		mem("etc", "misc note"),
		mem("preference", "prefers short answers"),
		mem("critical", "peanut allergy"),
	}

	out := memory.FormatForPrompt(memories)

	critical := strings.Index(out, "Important:")
	preference := strings.Index(out, "Preferences:")
	fact := strings.Index(out, "Facts:")
	hobby := strings.Index(out, "Other (hobby):")
	etc := strings.Index(out, "Other:\n")

	for name, idx := range map[string]int{
		"critical": critical, "preference": preference, "fact": fact,
		"hobby": hobby, "etc": etc,
	} {
		require.GreaterOrEqual(t, idx, 0, "missing bucket %s in output:\n%s", name, out)
	}

	assert.Less(t, critical, preference)
	assert.Less(t, preference, fact)
	// hobby was seen before etc, so it renders first among the rest.
	assert.Less(t, fact, hobby)
	assert.Less(t, hobby, etc)
}

func TestFormatForPrompt_CriticalBulletLine(t *testing.T) {
	out := memory.FormatForPrompt([]core.Memory{mem("critical", "peanut allergy")})
	assert.Contains(t, out, "Important:\n- peanut allergy")
}

func TestFormatForPrompt_MemoryOrderWithinBucket(t *testing.T) {
	out := memory.FormatForPrompt([]core.Memory{
		mem("fact", "first"),
		mem("fact", "second"),
	})
	assert.Equal(t, "Facts:\n- first\n- second", out)
}

func TestFormatForPrompt_MissingCategoryFallsBackToEtc(t *testing.T) {
	out := memory.FormatForPrompt([]core.Memory{mem("", "uncategorized note")})
	assert.Equal(t, "Other:\n- uncategorized note", out)
}

func TestFormatForPrompt_NoTrailingWhitespace(t *testing.T) {
	out := memory.FormatForPrompt([]core.Memory{mem("critical", "peanut allergy")})
	assert.Equal(t, strings.TrimSpace(out), out)
}
