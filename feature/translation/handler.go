package translation

import (
	"school-admin/core/logger"
	"school-admin/core/translate"
	"school-admin/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for translation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the translation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/translate")
	group.Post("/", h.HandleTranslate)
	group.Post("/data", h.HandleTranslateData)
	group.Post("/array", h.HandleTranslateArray)
	group.Delete("/cache", h.HandleClearCache)
	group.Put("/cache/duration", h.HandleSetCacheDuration)
}

// request carries the options shared by every translation endpoint.
type request struct {
	Target   string   `json:"target"`
	Source   string   `json:"source"`
	Fields   []string `json:"fields"`
	UseCache *bool    `json:"use_cache"`
}

func (h *Handler) options(r request) (translate.Options, bool) {
	target := r.Target
	if target == "" {
		target = h.service.defaultTarget
	}
	useCache := true
	if r.UseCache != nil {
		useCache = *r.UseCache
	}
	return translate.Options{
		Target:   target,
		Source:   r.Source,
		Fields:   r.Fields,
		UseCache: useCache,
	}, target != ""
}

// HandleTranslate translates a single text.
// @Summary Translate Text
// @Description Translates one text. On backend failure the original text is returned.
// @Tags translation
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "{text, target, source, use_cache}"
// @Success 200 {object} map[string]string "Translation"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /translate [post]
func (h *Handler) HandleTranslate(c *fiber.Ctx) error {
	var body struct {
		request
		Text string `json:"text"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	opts, ok := h.options(body.request)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "target language is required"})
	}

	return c.JSON(fiber.Map{
		"text":       body.Text,
		"translated": h.service.Translate(c.UserContext(), body.Text, opts),
		"target":     opts.Target,
	})
}

// HandleTranslateData translates the string leaves of nested JSON data.
// @Summary Translate Data
// @Description Translates string values of arbitrary JSON. When fields is set only values under those keys are translated.
// @Tags translation
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "{data, target, source, fields, use_cache}"
// @Success 200 {object} map[string]interface{} "Translated data"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /translate/data [post]
func (h *Handler) HandleTranslateData(c *fiber.Ctx) error {
	var body struct {
		request
		Data any `json:"data"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	opts, ok := h.options(body.request)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "target language is required"})
	}

	return c.JSON(fiber.Map{
		"data":   h.service.TranslateData(c.UserContext(), body.Data, opts),
		"target": opts.Target,
	})
}

// HandleTranslateArray translates the string values of a flat object.
// @Summary Translate Array
// @Description Translates every string value of a flat JSON object. Nested values are returned unchanged.
// @Tags translation
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "{texts, target, source, use_cache}"
// @Success 200 {object} map[string]interface{} "Translated texts"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /translate/array [post]
func (h *Handler) HandleTranslateArray(c *fiber.Ctx) error {
	var body struct {
		request
		Texts map[string]any `json:"texts"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	opts, ok := h.options(body.request)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "target language is required"})
	}

	return c.JSON(fiber.Map{
		"texts":  h.service.TranslateArray(c.UserContext(), body.Texts, opts),
		"target": opts.Target,
	})
}

// HandleClearCache flushes the translation cache.
// @Summary Clear Translation Cache
// @Description Flushes the whole cache store used for translations.
// @Tags translation
// @Produce json
// @Success 200 {object} map[string]string "Cleared"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /translate/cache [delete]
func (h *Handler) HandleClearCache(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.ClearCache(c.UserContext()); err != nil {
		l.Error("Failed to clear translation cache", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Translation cache cleared")
	return c.JSON(fiber.Map{"status": "cleared"})
}

// HandleSetCacheDuration sets the lifetime of future cache entries.
// @Summary Set Translation Cache Duration
// @Description Sets the lifetime, in minutes, of translations cached from now on.
// @Tags translation
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "{minutes}"
// @Success 200 {object} map[string]interface{} "Updated"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /translate/cache/duration [put]
func (h *Handler) HandleSetCacheDuration(c *fiber.Ctx) error {
	var body struct {
		Minutes any `json:"minutes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	minutes := utils.ToInt(body.Minutes)
	if err := h.service.SetCacheDuration(minutes); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	logger.WithRayID(h.service.logger, c).Info("Translation cache duration updated", zap.Int("minutes", minutes))
	return c.JSON(fiber.Map{"status": "updated", "minutes": minutes})
}
