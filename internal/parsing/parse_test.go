package parsing

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/student-portfolio/internal/types"
)

var fixedNow = time.Date(2025, time.October, 13, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestParse_InsufficientInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "header only", text: "onlyheader"},
		{name: "header with blank lines", text: "fullName,schoolName\n\n   \n"},
		{name: "whitespace only", text: " \n\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := Parse(tt.text)
			require.NotNil(t, records)
			assert.Empty(t, records)
		})
	}
}

func TestParse_RecordCountMatchesDataRows(t *testing.T) {
	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("%d rows", n), func(t *testing.T) {
			var sb strings.Builder
			sb.WriteString("fullName,schoolName\n")
			for i := 0; i < n; i++ {
				sb.WriteString(fmt.Sprintf("Student %d,School %d\n", i, i))
			}
			assert.Len(t, Parse(sb.String()), n)
		})
	}
}

func TestParse_BlankLinesAnywhereAreIgnored(t *testing.T) {
	text := "\n\nfullName,grade\n\nAda,10th\n   \nGrace,11th\n\n"
	records := Parse(text)

	require.Len(t, records, 2)
	assert.Equal(t, "Ada", records[0].FullName)
	assert.Equal(t, "Grace", records[1].FullName)
}

func TestParse_CRLF(t *testing.T) {
	records := Parse("fullName,grade\r\n\"Smith, John\",11th\r\n")

	require.Len(t, records, 1)
	assert.Equal(t, "Smith, John", records[0].FullName)
	assert.Equal(t, "11th", records[0].Grade)
}

func TestParse_QuotedCommaPreserved(t *testing.T) {
	records := Parse("fullName,grade\n\"Smith, John\",11th")

	require.Len(t, records, 1)
	assert.Equal(t, "Smith, John", records[0].FullName)
	assert.Equal(t, "11th", records[0].Grade)
}

func TestParse_ListColumns(t *testing.T) {
	records := Parse("coreStrengths,passions\n\"Leadership|Creativity| \",\"Music|Music|Art\"")

	require.Len(t, records, 1)
	assert.Equal(t, []string{"Leadership", "Creativity"}, records[0].CoreStrengths)
	assert.Equal(t, []string{"Music", "Music", "Art"}, records[0].Passions, "order and duplicates are preserved")
}

func TestParse_ArchetypeMerge(t *testing.T) {
	records := Parse("archetypeTitle,archetypeDescription\n\"The Innovator\",\"Thinks outside the box\"")

	require.Len(t, records, 1)
	assert.Equal(t, types.Archetype{
		Title:       "The Innovator",
		Description: "Thinks outside the box",
		Quote:       "",
	}, records[0].Archetype)
}

func TestParse_ArchetypeColumnOrderDoesNotMatter(t *testing.T) {
	records := Parse("archetypeQuote,fullName,archetypeTitle\nKeep going,Ada,The Builder")

	require.Len(t, records, 1)
	assert.Equal(t, "The Builder", records[0].Archetype.Title)
	assert.Equal(t, "Keep going", records[0].Archetype.Quote)
	assert.Equal(t, "", records[0].Archetype.Description)
}

func TestParse_SocialEnergyMerge(t *testing.T) {
	records := Parse("socialEnergyDescription,socialEnergyType\nLoves crowds,People-Powered")

	require.Len(t, records, 1)
	assert.Equal(t, types.SocialEnergyStyle{
		Type:        "People-Powered",
		Description: "Loves crowds",
	}, records[0].SocialEnergyStyle)
}

func TestParse_NestedDefaultsWithoutColumns(t *testing.T) {
	records := Parse("fullName,schoolName\nAda,Analytical High")

	require.Len(t, records, 1)
	assert.Equal(t, DefaultArchetype, records[0].Archetype)
	assert.Equal(t, DefaultSocialEnergyStyle, records[0].SocialEnergyStyle)
}

func TestParse_CollectionsDefaultToEmpty(t *testing.T) {
	records := Parse("fullName\nAda")

	require.Len(t, records, 1)
	rec := records[0]
	assert.NotNil(t, rec.Skills)
	assert.Empty(t, rec.Skills)
	assert.NotNil(t, rec.Projects)
	assert.Empty(t, rec.Projects)
	assert.NotNil(t, rec.CaseStudies)
	assert.NotNil(t, rec.Extracurricular)
	assert.NotNil(t, rec.CareerPaths)
}

func TestParse_ShortRowsYieldEmptyFields(t *testing.T) {
	records := Parse("fullName,schoolName,grade,passions\nAda")

	require.Len(t, records, 1)
	assert.Equal(t, "Ada", records[0].FullName)
	assert.Equal(t, "", records[0].SchoolName)
	assert.Equal(t, "", records[0].Grade)
	assert.Equal(t, []string{}, records[0].Passions)
}

func TestParse_ExtraValuesBeyondHeaderAreIgnored(t *testing.T) {
	records := Parse("fullName\nAda,ignored,also ignored")

	require.Len(t, records, 1)
	assert.Equal(t, "Ada", records[0].FullName)
	assert.Empty(t, records[0].Extra)
}

func TestParse_UnknownHeadersPassThrough(t *testing.T) {
	records := Parse("\"fullName\", email ,favouriteColour\nAda,ada@example.com,\"teal, mostly\"")

	require.Len(t, records, 1)
	assert.Equal(t, "Ada", records[0].FullName)
	assert.Equal(t, map[string]string{
		"email":           "ada@example.com",
		"favouriteColour": "teal, mostly",
	}, records[0].Extra)
}

func TestParse_EmptyHeaderCellsAreSkipped(t *testing.T) {
	records := Parse("fullName,,grade\nAda,x,10th")

	require.Len(t, records, 1)
	assert.Equal(t, "10th", records[0].Grade)
	assert.Empty(t, records[0].Extra)
}

func TestParse_SyntheticIdentity(t *testing.T) {
	n := NewNormalizer(WithClock(fixedClock))
	records := n.Parse("fullName\nAda\nGrace")

	require.Len(t, records, 2)
	ms := fixedNow.UnixMilli()
	assert.Equal(t, fmt.Sprintf("profile-%d-1", ms), records[0].ProfileID)
	assert.Equal(t, fmt.Sprintf("profile-%d-2", ms), records[1].ProfileID)
	assert.Equal(t, "2025-10-13T09:30:00.000Z", records[0].LastUpdated)
	assert.Equal(t, records[0].LastUpdated, records[1].LastUpdated)
}

func TestParse_IdentityColumnsDoNotOverrideSyntheticID(t *testing.T) {
	n := NewNormalizer(WithClock(fixedClock))
	records := n.Parse("profileId,fullName\nmine,Ada")

	require.Len(t, records, 1)
	assert.True(t, strings.HasPrefix(records[0].ProfileID, "profile-"))
	assert.Equal(t, "mine", records[0].Extra["profileId"])
}

func TestParse_RepeatedCallsDifferOnlyInIdentity(t *testing.T) {
	n := NewNormalizer(WithClock(fixedClock), WithLogger(zap.NewNop()))
	text := "fullName,schoolName,coreStrengths,archetypeTitle\nAda,Analytical High,Math|Logic,The Engine\nGrace,Navy Prep,Compilers,The Admiral"

	first := n.Parse(text)
	second := n.Parse(text)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	for i := range first {
		assert.NotEqual(t, first[i].ProfileID, second[i].ProfileID)
	}

	ignoreIdentity := cmpopts.IgnoreFields(types.ProfileRecord{}, "ProfileID", "LastUpdated")
	if diff := cmp.Diff(first, second, ignoreIdentity); diff != "" {
		t.Errorf("records differ beyond identity (-first +second):\n%s", diff)
	}
}

func TestParse_DefaultNormalizerProducesDistinctIDs(t *testing.T) {
	text := "fullName\nAda"
	a := Parse(text)
	b := Parse(text)

	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.NotEqual(t, a[0].ProfileID, b[0].ProfileID)
}

func TestParse_ConcurrentCallersGetUniqueIDs(t *testing.T) {
	n := NewNormalizer(WithClock(fixedClock))
	const callers = 16

	var mu sync.Mutex
	seen := make(map[string]struct{})
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			records := n.Parse("fullName\nAda\nGrace")
			mu.Lock()
			defer mu.Unlock()
			for _, rec := range records {
				seen[rec.ProfileID] = struct{}{}
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, callers*2)
}

func TestParse_TypedKeyColumnsStayInExtraAndAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	n := NewNormalizer(WithClock(fixedClock), WithLogger(zap.New(core)))

	records := n.Parse("fullName,email,skills,archetype,lastUpdated\nAda,ada@example.com,Math,Engine,yesterday")

	require.Len(t, records, 1)
	assert.Equal(t, map[string]string{
		"email":       "ada@example.com",
		"skills":      "Math",
		"archetype":   "Engine",
		"lastUpdated": "yesterday",
	}, records[0].Extra)
	assert.NotEqual(t, "yesterday", records[0].LastUpdated)

	shadowed := logs.FilterMessageSnippet("column shadowed").All()
	headers := make([]string, 0, len(shadowed))
	for _, entry := range shadowed {
		headers = append(headers, entry.ContextMap()["header"].(string))
	}
	assert.ElementsMatch(t, []string{"skills", "archetype", "lastUpdated"}, headers)
}
