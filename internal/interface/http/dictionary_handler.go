package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/suugaanle/qaamuus/internal/application"
	"github.com/suugaanle/qaamuus/internal/domain/entity"
	"github.com/suugaanle/qaamuus/pkg/response"
	"github.com/suugaanle/qaamuus/pkg/validation"
)

type DictionaryHandler struct {
	Svc    *application.DictionaryService
	Logger *logrus.Logger
}

func NewDictionaryHandler(svc *application.DictionaryService, logger *logrus.Logger) *DictionaryHandler {
	return &DictionaryHandler{Svc: svc, Logger: logger}
}

type createEntryRequest struct {
	Word            string   `json:"word" binding:"required"`
	Definition      string   `json:"definition" binding:"required"`
	LiteraryContext string   `json:"literaryContext"`
	Examples        []string `json:"examples"`
	Synonyms        []string `json:"synonyms"`
	Category        string   `json:"category"`
	PoetName        string   `json:"poetName"`
	PoemHistory     string   `json:"poemHistory"`
	PoemText        string   `json:"poemText"`
}

type importRequest struct {
	Data string `json:"data" binding:"required"`
}

// List GET /api/entries
func (h *DictionaryHandler) List(c *gin.Context) {
	entries := h.Svc.Load(c.Request.Context())
	response.Success(c, http.StatusOK, entries, "entries", map[string]any{"count": len(entries)})
}

// Search GET /api/entries/search?q=
func (h *DictionaryHandler) Search(c *gin.Context) {
	matched := h.Svc.Search(c.Request.Context(), c.Query("q"))
	response.Success(c, http.StatusOK, matched, "search results", map[string]any{"count": len(matched)})
}

// Suggest GET /api/entries/suggest?q=&limit=
func (h *DictionaryHandler) Suggest(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	suggestions := h.Svc.Suggest(c.Request.Context(), c.Query("q"), limit)
	response.Success(c, http.StatusOK, suggestions, "suggestions", nil)
}

// Random GET /api/entries/random?count=
func (h *DictionaryHandler) Random(c *gin.Context) {
	count, _ := strconv.Atoi(c.DefaultQuery("count", "3"))
	response.Success(c, http.StatusOK, h.Svc.Random(c.Request.Context(), count), "random entries", nil)
}

// ByCategory GET /api/entries/category/:category
func (h *DictionaryHandler) ByCategory(c *gin.Context) {
	cat := entity.Category(c.Param("category"))
	if !cat.Valid() {
		response.Error[any](c, http.StatusBadRequest, "unknown category", nil)
		return
	}
	matched := h.Svc.FilterByCategory(c.Request.Context(), cat)
	response.Success(c, http.StatusOK, matched, "entries by category", map[string]any{"count": len(matched)})
}

// Export GET /api/entries/export
func (h *DictionaryHandler) Export(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="qaamuus-entries.json"`)
	c.Data(http.StatusOK, "application/json", []byte(h.Svc.ExportAll(c.Request.Context())))
}

// Create POST /api/entries (admin)
func (h *DictionaryHandler) Create(c *gin.Context) {
	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cat := entity.Category(req.Category)
	if req.Category != "" && !cat.Valid() {
		response.Error[any](c, http.StatusBadRequest, "unknown category", nil)
		return
	}
	entry, err := h.Svc.Add(c.Request.Context(), entity.NewDictionaryEntry{
		Word:            req.Word,
		Definition:      req.Definition,
		LiteraryContext: req.LiteraryContext,
		Examples:        req.Examples,
		Synonyms:        req.Synonyms,
		Category:        cat,
		PoetName:        req.PoetName,
		PoemHistory:     req.PoemHistory,
		PoemText:        req.PoemText,
	}, c.GetString("userName"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "Erayga iyo qeexitaanku waa waajib", nil)
		return
	}
	response.Success(c, http.StatusCreated, entry, "Eraygii waa lagu daray qaamuuska", nil)
}

// Delete DELETE /api/entries/:id (admin)
func (h *DictionaryHandler) Delete(c *gin.Context) {
	if ok := h.Svc.Delete(c.Request.Context(), c.Param("id")); !ok {
		response.Error[any](c, http.StatusInternalServerError, "Khalad ayaa dhacay tirtiridda", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "Eraygii waa la tirtiray", nil)
}

// Import POST /api/entries/import (admin)
func (h *DictionaryHandler) Import(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	count, err := h.Svc.ImportAll(c.Request.Context(), req.Data)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "Xogta la soo geliyay waa khalad", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"imported": count}, "Qaamuuskii waa la soo geliyay", nil)
}

// Reset POST /api/entries/reset (admin)
func (h *DictionaryHandler) Reset(c *gin.Context) {
	seed := h.Svc.Reset(c.Request.Context())
	response.Success(c, http.StatusOK, seed, "Qaamuuskii waa dib loo celiyay", map[string]any{"count": len(seed)})
}

// Backup POST /api/entries/backup (admin) uploads an export snapshot to GCS.
func (h *DictionaryHandler) Backup(c *gin.Context) {
	url, err := h.Svc.BackupToGCS(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("entries backup failed")
		}
		response.Error[any](c, http.StatusServiceUnavailable, "backup storage not available", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"url": url}, "backup uploaded", nil)
}

// SearchIndexed GET /api/entries/search/indexed?q=&size= (admin)
func (h *DictionaryHandler) SearchIndexed(c *gin.Context) {
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.SearchIndexed(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		response.Error[any](c, http.StatusServiceUnavailable, "search index not available", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "indexed search results", map[string]any{"count": len(hits)})
}
