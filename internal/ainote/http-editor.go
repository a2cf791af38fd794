package ainote

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote/apierrors"
	"github.com/aisa-it/ainote/ainote.go/internal/ainote/dto"
	"github.com/aisa-it/ainote/ainote.go/internal/ainote/editor/embed"
)

var embedResolutions = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "ainote_embed_resolutions_total",
	Help: "Embed resolver outcomes by service.",
}, []string{"service"})

func init() {
	prometheus.MustRegister(embedResolutions)
}

type embedRequest struct {
	Service string `json:"service"`
	URL     string `json:"url"`
}

func (s *Services) AddEditorServices(g *echo.Group) {
	g.POST("/editor/embed", s.resolveEmbed)
}

// resolveEmbed резолвит URL в атрибуты embed-ноды для браузерного редактора.
// Невстраиваемая либо невалидная ссылка - 400.
func (s *Services) resolveEmbed(c echo.Context) error {
	var req embedRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrEmbedBadURL)
	}

	if embed.Sanitize(req.URL) == "" {
		return EErrorDefined(c, apierrors.ErrEmbedBadURL)
	}

	attrs, ok := embed.Resolve(req.Service, req.URL)
	if !ok {
		return EErrorDefined(c, apierrors.ErrEmbedNotResolved)
	}
	embedResolutions.WithLabelValues(string(attrs.Service)).Inc()

	return c.JSON(http.StatusOK, dto.EmbedResolution{
		Service:   string(attrs.Service),
		URL:       attrs.URL,
		IframeSRC: attrs.IframeSRC(),
	})
}
