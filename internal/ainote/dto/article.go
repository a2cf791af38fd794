// Пакет dto содержит структуры ответов API.
package dto

import (
	"time"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote/types"
)

type Article struct {
	ArticleLight

	Markdown    string               `json:"markdown"`
	Content     types.RedactorHTML   `json:"content"`
	ContentJSON types.EditorDocument `json:"content_json"`
	JSONVersion int                  `json:"json_version"`

	Attachments []ArticleAttachment `json:"attachments"`
}

type ArticleLight struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	Topics    []string  `json:"topics"`
	Draft     bool      `json:"draft"`
	Url       string    `json:"url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ArticleAttachment struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Url         string `json:"url"`
}

// PaginationResponse - стандартная обертка списочных ответов.
type PaginationResponse struct {
	Count  int64       `json:"count"`
	Offset int         `json:"offset"`
	Limit  int         `json:"limit"`
	Result interface{} `json:"result"`
}

// EmbedResolution - ответ резолвера embed-ссылок.
type EmbedResolution struct {
	Service   string `json:"service"`
	URL       string `json:"url"`
	IframeSRC string `json:"iframe_src,omitempty"`
}
