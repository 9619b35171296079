package application

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suugaanle/qaamuus/internal/domain/entity"
	"github.com/suugaanle/qaamuus/internal/infrastructure/kvstore"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestDictionary() *DictionaryService {
	return NewDictionaryService(kvstore.NewMemoryStore(), testLogger(), nil, "", nil, "")
}

func TestLoadSeedsWhenEmpty(t *testing.T) {
	svc := newTestDictionary()
	ctx := context.Background()

	entries := svc.Load(ctx)
	require.Len(t, entries, 8)
	assert.Equal(t, "Gabay", entries[0].Word)

	// Seeding is a one-time event; a second load reads the persisted set.
	again := svc.Load(ctx)
	assert.Equal(t, entries, again)
}

func TestAddPrependsAndIsSearchable(t *testing.T) {
	svc := newTestDictionary()
	ctx := context.Background()

	added, err := svc.Add(ctx, entity.NewDictionaryEntry{
		Word:       "Eray Cusub",
		Definition: "Qeexid cusub oo tijaabo ah",
		Category:   entity.CategoryNoun,
	}, "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "admin", added.AddedBy)
	assert.False(t, added.DateAdded.IsZero())

	entries := svc.Load(ctx)
	require.Len(t, entries, 9)
	assert.Equal(t, "Eray Cusub", entries[0].Word)

	matched := svc.Search(ctx, "cusub")
	require.Len(t, matched, 1)
	assert.Equal(t, added.ID, matched[0].ID)
}

func TestAddRejectsBlankWordOrDefinition(t *testing.T) {
	svc := newTestDictionary()
	ctx := context.Background()

	_, err := svc.Add(ctx, entity.NewDictionaryEntry{Word: "  ", Definition: "qeexid"}, "admin")
	assert.ErrorIs(t, err, ErrEntryInvalid)

	_, err = svc.Add(ctx, entity.NewDictionaryEntry{Word: "eray", Definition: ""}, "admin")
	assert.ErrorIs(t, err, ErrEntryInvalid)
}

func TestDeleteRemovesEntry(t *testing.T) {
	svc := newTestDictionary()
	ctx := context.Background()

	entries := svc.Load(ctx)
	target := entries[2].ID

	assert.True(t, svc.Delete(ctx, target))
	for _, e := range svc.Load(ctx) {
		assert.NotEqual(t, target, e.ID)
	}
	assert.Len(t, svc.Load(ctx), 7)

	// Deleting an unknown id persists the unchanged set and still reports ok.
	assert.True(t, svc.Delete(ctx, "no-such-id"))
	assert.Len(t, svc.Load(ctx), 7)
}

func TestSearchEmptyQueryReturnsEverything(t *testing.T) {
	svc := newTestDictionary()
	ctx := context.Background()

	all := svc.Load(ctx)
	assert.Equal(t, all, svc.Search(ctx, ""))
	assert.Equal(t, all, svc.Search(ctx, "   "))
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	svc := newTestDictionary()
	ctx := context.Background()

	// Word substring, case-insensitive.
	byWord := svc.Search(ctx, "gabay")
	require.NotEmpty(t, byWord)
	assert.Equal(t, "Gabay", byWord[0].Word)

	// Synonyms are searched too.
	added, err := svc.Add(ctx, entity.NewDictionaryEntry{
		Word:       "Tix",
		Definition: "qayb maanso",
		Synonyms:   []string{"kelmadgaar"},
	}, "admin")
	require.NoError(t, err)
	bySynonym := svc.Search(ctx, "kelmadgaar")
	require.Len(t, bySynonym, 1)
	assert.Equal(t, added.ID, bySynonym[0].ID)

	assert.Empty(t, svc.Search(ctx, "xyzzy-no-match"))
}

func TestFilterByCategory(t *testing.T) {
	svc := newTestDictionary()
	ctx := context.Background()

	for _, e := range svc.FilterByCategory(ctx, entity.CategoryHees) {
		assert.Equal(t, entity.CategoryHees, e.Category)
	}
	assert.NotEmpty(t, svc.FilterByCategory(ctx, entity.CategoryGabay))
	assert.Empty(t, svc.FilterByCategory(ctx, entity.CategoryAdverb))
}

func TestSuggestExcludesExactMatch(t *testing.T) {
	svc := newTestDictionary()
	ctx := context.Background()

	_, err := svc.Add(ctx, entity.NewDictionaryEntry{Word: "Gabaygii", Definition: "qeexid"}, "admin")
	require.NoError(t, err)

	suggestions := svc.Suggest(ctx, "gabay", 5)
	require.NotEmpty(t, suggestions)
	for _, s := range suggestions {
		assert.NotEqual(t, "gabay", strings.ToLower(s))
	}

	assert.Nil(t, svc.Suggest(ctx, "", 5))
	assert.LessOrEqual(t, len(svc.Suggest(ctx, "a", 2)), 2)
}

func TestRandomBoundsCount(t *testing.T) {
	svc := newTestDictionary()
	ctx := context.Background()

	assert.Len(t, svc.Random(ctx, 3), 3)
	// Counts past the collection size clamp to everything.
	assert.Len(t, svc.Random(ctx, 100), 8)
	assert.Len(t, svc.Random(ctx, 0), 8)
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestDictionary()
	ctx := context.Background()

	_, err := src.Add(ctx, entity.NewDictionaryEntry{Word: "Dheeraad", Definition: "qeexid dheeraad ah"}, "admin")
	require.NoError(t, err)
	exported := src.ExportAll(ctx)

	dst := newTestDictionary()
	count, err := dst.ImportAll(ctx, exported)
	require.NoError(t, err)
	assert.Equal(t, 9, count)

	var want, got []entity.DictionaryEntry
	require.NoError(t, json.Unmarshal([]byte(exported), &want))
	got = dst.Load(ctx)
	assert.Equal(t, want, got)
}

func TestImportDropsInvalidRecords(t *testing.T) {
	svc := newTestDictionary()
	ctx := context.Background()

	payload := `[
		{"id":"a1","word":"Hal","definition":"qeexid"},
		{"id":"","word":"Laba","definition":"qeexid"},
		{"id":"a3","word":"","definition":"qeexid"},
		{"id":"a4","word":"Afar","definition":""}
	]`
	count, err := svc.ImportAll(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	entries := svc.Load(ctx)
	require.Len(t, entries, 1)
	assert.Equal(t, "Hal", entries[0].Word)
}

func TestImportRejectsPayloadWithoutValidEntries(t *testing.T) {
	svc := newTestDictionary()
	ctx := context.Background()
	before := svc.Load(ctx)

	_, err := svc.ImportAll(ctx, "not json at all")
	assert.ErrorIs(t, err, ErrImportInvalid)

	_, err = svc.ImportAll(ctx, `[{"id":"","word":"","definition":""}]`)
	assert.ErrorIs(t, err, ErrImportInvalid)

	// A rejected import must leave the stored collection untouched.
	assert.Equal(t, before, svc.Load(ctx))
}

func TestResetRestoresSeed(t *testing.T) {
	svc := newTestDictionary()
	ctx := context.Background()

	_, err := svc.Add(ctx, entity.NewDictionaryEntry{Word: "Ku-meel-gaar", Definition: "qeexid"}, "admin")
	require.NoError(t, err)
	require.Len(t, svc.Load(ctx), 9)

	restored := svc.Reset(ctx)
	assert.Len(t, restored, 8)
	assert.Equal(t, SeedEntries(), svc.Load(ctx))
}

func TestSearchIndexedWithoutESIsEmpty(t *testing.T) {
	svc := newTestDictionary()
	out, err := svc.SearchIndexed(context.Background(), "gabay", 10)
	require.NoError(t, err)
	assert.Empty(t, out)
}
