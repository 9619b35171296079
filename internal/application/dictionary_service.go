package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/suugaanle/qaamuus/internal/domain/entity"
	repo "github.com/suugaanle/qaamuus/internal/domain/repository"
	"github.com/suugaanle/qaamuus/pkg/helpers"
)

var (
	ErrEntryInvalid  = errors.New("entry must have a word and a definition")
	ErrImportInvalid = errors.New("import payload contains no valid entries")
)

// DictionaryService owns the entries collection. ES and GCS are optional:
// when unset, indexing and backups are silently skipped.
type DictionaryService struct {
	Store   repo.DocumentStore
	Logger  *logrus.Logger
	ES      *elasticsearch.Client
	ESIndex string
	GCS     *storage.Client
	GCSBkt  string
	mu      sync.Mutex
}

func NewDictionaryService(store repo.DocumentStore, logger *logrus.Logger, es *elasticsearch.Client, esIndex string, gcs *storage.Client, gcsBucket string) *DictionaryService {
	return &DictionaryService{Store: store, Logger: logger, ES: es, ESIndex: esIndex, GCS: gcs, GCSBkt: gcsBucket}
}

// Load returns the persisted entries, seeding and persisting the default set
// when the collection has never been written. It never fails outward.
func (s *DictionaryService) Load(ctx context.Context) []entity.DictionaryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadOrSeed(ctx)
}

func (s *DictionaryService) loadOrSeed(ctx context.Context) []entity.DictionaryEntry {
	entries := loadCollection[entity.DictionaryEntry](ctx, s.Store, keyEntries, s.Logger)
	if len(entries) > 0 {
		return entries
	}
	seed := SeedEntries()
	if err := saveCollection(ctx, s.Store, keyEntries, seed, s.Logger); err == nil {
		s.reindexAll(ctx, seed)
	}
	return seed
}

// Add assigns a fresh id and timestamp, prepends the entry (newest first) and
// persists. The caller always gets the entry back; a persistence failure is
// logged only.
func (s *DictionaryService) Add(ctx context.Context, in entity.NewDictionaryEntry, addedBy string) (entity.DictionaryEntry, error) {
	if strings.TrimSpace(in.Word) == "" || strings.TrimSpace(in.Definition) == "" {
		return entity.DictionaryEntry{}, ErrEntryInvalid
	}
	entry := entity.DictionaryEntry{
		ID:              uuid.NewString(),
		Word:            in.Word,
		Definition:      in.Definition,
		LiteraryContext: in.LiteraryContext,
		Examples:        in.Examples,
		Synonyms:        in.Synonyms,
		Category:        in.Category,
		PoetName:        in.PoetName,
		PoemHistory:     in.PoemHistory,
		PoemText:        in.PoemText,
		DateAdded:       time.Now().UTC(),
		AddedBy:         addedBy,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.loadOrSeed(ctx)
	entries = append([]entity.DictionaryEntry{entry}, entries...)
	_ = saveCollection(ctx, s.Store, keyEntries, entries, s.Logger)
	s.indexEntry(ctx, entry)
	return entry, nil
}

// Delete removes one entry by id. The returned flag reflects whether the
// updated collection was persisted.
func (s *DictionaryService) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.loadOrSeed(ctx)
	kept := entries[:0:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if err := saveCollection(ctx, s.Store, keyEntries, kept, s.Logger); err != nil {
		return false
	}
	s.removeFromIndex(ctx, id)
	return true
}

// Search filters entries by a case-insensitive substring over word,
// definition, literary context, poet name, poem history, examples, and
// synonyms. An empty query returns everything; matches keep collection order.
func (s *DictionaryService) Search(ctx context.Context, query string) []entity.DictionaryEntry {
	entries := s.Load(ctx)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}
	matched := make([]entity.DictionaryEntry, 0, len(entries))
	for _, e := range entries {
		if entryMatches(e, q) {
			matched = append(matched, e)
		}
	}
	return matched
}

func entryMatches(e entity.DictionaryEntry, q string) bool {
	for _, field := range []string{e.Word, e.Definition, e.LiteraryContext, e.PoetName, e.PoemHistory} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	for _, ex := range e.Examples {
		if strings.Contains(strings.ToLower(ex), q) {
			return true
		}
	}
	for _, syn := range e.Synonyms {
		if strings.Contains(strings.ToLower(syn), q) {
			return true
		}
	}
	return false
}

// FilterByCategory returns entries whose category matches exactly.
func (s *DictionaryService) FilterByCategory(ctx context.Context, category entity.Category) []entity.DictionaryEntry {
	entries := s.Load(ctx)
	out := make([]entity.DictionaryEntry, 0, len(entries))
	for _, e := range entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Suggest returns up to limit distinct words, synonyms, or example words
// containing the query, excluding exact matches.
func (s *DictionaryService) Suggest(ctx context.Context, query string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = 5
	}
	seen := make(map[string]struct{})
	var out []string
	for _, e := range s.Load(ctx) {
		words := append([]string{e.Word}, e.Synonyms...)
		for _, ex := range e.Examples {
			words = append(words, strings.Fields(ex)...)
		}
		for _, w := range words {
			lw := strings.ToLower(strings.TrimSpace(w))
			if lw == "" || lw == q || !strings.Contains(lw, q) {
				continue
			}
			if _, dup := seen[lw]; dup {
				continue
			}
			seen[lw] = struct{}{}
			out = append(out, w)
			if len(out) >= limit {
				return out
			}
		}
	}
	return out
}

// Random returns up to count entries in shuffled order, for the welcome view.
func (s *DictionaryService) Random(ctx context.Context, count int) []entity.DictionaryEntry {
	entries := s.Load(ctx)
	if count <= 0 || count > len(entries) {
		count = len(entries)
	}
	shuffled := make([]entity.DictionaryEntry, len(entries))
	copy(shuffled, entries)
	helpers.Shuffle(shuffled)
	return shuffled[:count]
}

// ExportAll serializes the full collection as pretty-printed JSON. On any
// failure it degrades to an empty array rather than erroring.
func (s *DictionaryService) ExportAll(ctx context.Context) string {
	entries := s.Load(ctx)
	doc, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("export encode failed")
		}
		return "[]"
	}
	return string(doc)
}

// ImportAll parses the payload, drops records missing id, word, or
// definition, and replaces the stored collection wholesale. When no valid
// record remains the stored state is left untouched and ErrImportInvalid is
// returned. The number of imported entries is reported.
func (s *DictionaryService) ImportAll(ctx context.Context, jsonData string) (int, error) {
	var incoming []entity.DictionaryEntry
	if err := json.Unmarshal([]byte(jsonData), &incoming); err != nil {
		return 0, ErrImportInvalid
	}
	valid := make([]entity.DictionaryEntry, 0, len(incoming))
	for _, e := range incoming {
		if strings.TrimSpace(e.ID) == "" || strings.TrimSpace(e.Word) == "" || strings.TrimSpace(e.Definition) == "" {
			continue
		}
		valid = append(valid, e)
	}
	if len(valid) == 0 {
		return 0, ErrImportInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := saveCollection(ctx, s.Store, keyEntries, valid, s.Logger); err != nil {
		return 0, err
	}
	s.reindexAll(ctx, valid)
	return len(valid), nil
}

// Reset replaces the collection with the fixed seed set. This is a reset to
// defaults, never an empty state.
func (s *DictionaryService) Reset(ctx context.Context) []entity.DictionaryEntry {
	seed := SeedEntries()
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = saveCollection(ctx, s.Store, keyEntries, seed, s.Logger)
	s.reindexAll(ctx, seed)
	return seed
}

// BackupToGCS uploads the pretty-printed export as a timestamped object and
// returns its public URL.
func (s *DictionaryService) BackupToGCS(ctx context.Context) (string, error) {
	if s.GCS == nil || s.GCSBkt == "" {
		return "", errors.New("gcs not configured")
	}
	snapshot := s.ExportAll(ctx)
	object := "backups/entries-" + time.Now().UTC().Format("20060102-150405") + ".json"
	return helpers.UploadObject(ctx, s.GCS, s.GCSBkt, object, "application/json", strings.NewReader(snapshot))
}

// SearchIndexed performs a multi_match query against the entry index. Only
// available when Elasticsearch is configured; the local substring search is
// the authoritative path.
func (s *DictionaryService) SearchIndexed(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"word^2", "definition", "literaryContext", "synonyms", "examples"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *DictionaryService) indexEntry(ctx context.Context, e entity.DictionaryEntry) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	b, _ := json.Marshal(e)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: e.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("entry_id", e.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("entry_id", e.ID).Warn("es index response error")
	}
}

func (s *DictionaryService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("entry_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

func (s *DictionaryService) reindexAll(ctx context.Context, entries []entity.DictionaryEntry) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	for _, e := range entries {
		s.indexEntry(ctx, e)
	}
}
