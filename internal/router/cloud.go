package router

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/tag-cloud/internal/apperr"
	"github.com/DjordjeVuckovic/tag-cloud/internal/cloud"
	"github.com/DjordjeVuckovic/tag-cloud/internal/render"
	"github.com/DjordjeVuckovic/tag-cloud/internal/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	DefaultWords = 50
	DefaultName  = "request"
)

type CloudRouter struct {
	e            *echo.Echo
	builder      *cloud.Builder
	storer       storage.Storer
	htmlOpts     render.HTMLOptions
	defaultWords int
}

type CloudRouterOption func(*CloudRouter)

func WithHTMLOptions(opts render.HTMLOptions) CloudRouterOption {
	return func(r *CloudRouter) {
		r.htmlOpts = opts
	}
}

func WithDefaultWords(n int) CloudRouterOption {
	return func(r *CloudRouter) {
		if n > 0 {
			r.defaultWords = n
		}
	}
}

func NewCloudRouter(e *echo.Echo, builder *cloud.Builder, storer storage.Storer, opts ...CloudRouterOption) *CloudRouter {
	r := &CloudRouter{
		e:            e,
		builder:      builder,
		storer:       storer,
		htmlOpts:     render.DefaultHTMLOptions(),
		defaultWords: DefaultWords,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CloudRouter) Bind() {
	r.e.POST("/clouds", r.createHandler)
	r.e.GET("/clouds/:id", r.getHandler)
}

type CloudResponse struct {
	ID    uuid.UUID          `json:"id" swaggertype:"string" format:"uuid"`
	Cloud *cloud.Cloud       `json:"cloud"`
	Fonts []render.FontEntry `json:"fonts"`
}

// createHandler godoc
// @Summary Render a tag cloud
// @Description Counts the words of the plain-text body and renders the most frequent ones as an HTML tag cloud. The result is cached and can be fetched again from the Location header until it expires.
// @Tags clouds
// @Accept plain
// @Produce html
// @Produce json
// @Param words query int false "Number of words in the cloud" default(50)
// @Param name query string false "Source name shown in the title" default(request)
// @Param format query string false "Response format" Enums(html, json)
// @Param text body string true "Text to analyse"
// @Success 201 {string} string "HTML document"
// @Success 201 {object} CloudResponse "Cloud when format=json"
// @Header 201 {string} Location "/clouds/{id}"
// @Failure 400 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Router /clouds [post]
func (r *CloudRouter) createHandler(c echo.Context) error {
	words := r.defaultWords
	if v := c.QueryParam("words"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return apperr.NewValidationWrap("words must be a number", err)
		}
		words = n
	}

	name := c.QueryParam("name")
	if name == "" {
		name = DefaultName
	}

	tc, err := r.builder.Build(name, c.Request().Body, words)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := render.HTML(&buf, tc, r.htmlOpts); err != nil {
		return fmt.Errorf("render cloud: %w", err)
	}

	id, err := r.storer.Save(c.Request().Context(), storage.Document{Cloud: tc, HTML: buf.Bytes()})
	if err != nil {
		return fmt.Errorf("save cloud: %w", err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/clouds/"+id.String())

	if c.QueryParam("format") == "json" {
		rpt := render.NewReport(tc, "", r.htmlOpts)
		return c.JSON(http.StatusCreated, CloudResponse{ID: id, Cloud: tc, Fonts: rpt.Fonts})
	}
	return c.HTMLBlob(http.StatusCreated, buf.Bytes())
}

// getHandler godoc
// @Summary Get a cached tag cloud
// @Tags clouds
// @Produce html
// @Param id path string true "Cloud ID" format(uuid)
// @Success 200 {string} string "HTML document"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clouds/{id} [get]
func (r *CloudRouter) getHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid cloud id", err)
	}

	doc, err := r.storer.Get(c.Request().Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "cloud not found or expired")
	}
	if err != nil {
		return err
	}

	return c.HTMLBlob(http.StatusOK, doc.HTML)
}
