package ainote

import (
	"net/http"
	"strconv"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote/apierrors"
	"github.com/aisa-it/ainote/ainote.go/internal/ainote/dao"
	"github.com/aisa-it/ainote/ainote.go/internal/ainote/dto"
	filestorage "github.com/aisa-it/ainote/ainote.go/internal/ainote/file-storage"
	"github.com/aisa-it/ainote/ainote.go/internal/ainote/types"
)

type ArticleContext struct {
	echo.Context
	Article dao.Article
}

type articleRequest struct {
	Title       string                `json:"title" validate:"required,max=150"`
	Topics      []string              `json:"topics" validate:"dive,topic"`
	Markdown    string                `json:"markdown"`
	Content     types.RedactorHTML    `json:"content"`
	ContentJSON *types.EditorDocument `json:"content_json"`
	Draft       bool                  `json:"draft"`
}

func (s *Services) ArticleMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleId, err := uuid.FromString(c.Param("articleId"))
		if err != nil {
			return EErrorDefined(c, apierrors.ErrArticleBadID)
		}

		article, err := dao.GetArticle(s.db, articleId)
		if err != nil {
			return EError(c, err)
		}

		return next(ArticleContext{c, *article})
	}
}

func (s *Services) AddArticleServices(g *echo.Group) {
	g.GET("/articles", s.getArticleList)
	g.POST("/articles", s.createArticle)

	articleGroup := g.Group("/articles/:articleId", s.ArticleMiddleware)
	articleGroup.GET("", s.getArticle)
	articleGroup.PATCH("", s.updateArticle)
	articleGroup.DELETE("", s.deleteArticle)
	articleGroup.POST("/attachments", s.uploadArticleAttachments, attachmentBodyLimit(cfg.MaxAttachmentSizeMB))

	g.GET("/attachments/:attachmentId", s.getAttachment)
	g.HEAD("/attachments/:attachmentId", s.headAttachment)
}

// getArticleList возвращает страницу статей, новые сверху.
func (s *Services) getArticleList(c echo.Context) error {
	offset := queryInt(c, "offset", 0)
	limit := queryInt(c, "limit", 25)
	if limit < 1 || limit > 100 {
		limit = 25
	}
	drafts := c.QueryParam("drafts") == "true"

	articles, count, err := dao.ArticleList(s.db, offset, limit, drafts)
	if err != nil {
		return EError(c, err)
	}

	result := make([]dto.ArticleLight, 0, len(articles))
	for i := range articles {
		result = append(result, *articles[i].ToLightDTO())
	}

	return c.JSON(http.StatusOK, dto.PaginationResponse{
		Count:  count,
		Offset: offset,
		Limit:  limit,
		Result: result,
	})
}

// createArticle создает новую статью. Невалидное дерево документа
// отклоняется при разборе запроса, до записи в БД.
func (s *Services) createArticle(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrArticleBadContent)
	}
	if err := c.Validate(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrArticleTitleRequired)
	}

	article := dao.Article{
		ID:       dao.GenUUID(),
		Title:    req.Title,
		Topics:   pq.StringArray(req.Topics),
		Markdown: req.Markdown,
		Content:  req.Content,
		Draft:    req.Draft,
	}
	if req.ContentJSON != nil {
		article.ContentJSON = *req.ContentJSON
	}

	if err := dao.CreateArticle(s.db, &article); err != nil {
		return EError(c, err)
	}

	return c.JSON(http.StatusCreated, article.ToDTO())
}

func (s *Services) getArticle(c echo.Context) error {
	article := c.(ArticleContext).Article
	return c.JSON(http.StatusOK, article.ToDTO())
}

// updateArticle обновляет статью целиком. Отсутствующая статья - 404.
func (s *Services) updateArticle(c echo.Context) error {
	article := c.(ArticleContext).Article

	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrArticleBadContent)
	}
	if err := c.Validate(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrArticleTitleRequired)
	}

	article.Title = req.Title
	article.Topics = pq.StringArray(req.Topics)
	article.Markdown = req.Markdown
	article.Content = req.Content
	article.Draft = req.Draft
	if req.ContentJSON != nil {
		article.ContentJSON = *req.ContentJSON
	}
	article.JSONVersion = dao.CurrentJSONVersion

	if err := dao.UpdateArticle(s.db, &article); err != nil {
		return EError(c, err)
	}

	updated, err := dao.GetArticle(s.db, article.ID)
	if err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, updated.ToDTO())
}

func (s *Services) deleteArticle(c echo.Context) error {
	article := c.(ArticleContext).Article
	if err := dao.DeleteArticle(s.db, &article); err != nil {
		return EError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// uploadArticleAttachments загружает файлы вложений и возвращает их URL
// в порядке файлов запроса.
func (s *Services) uploadArticleAttachments(c echo.Context) error {
	article := c.(ArticleContext).Article

	form, err := c.MultipartForm()
	if err != nil {
		return EErrorDefined(c, apierrors.ErrAttachmentEmpty)
	}

	files := form.File["files"]
	if len(files) == 0 {
		return EErrorDefined(c, apierrors.ErrAttachmentEmpty)
	}

	attachments := make([]dto.ArticleAttachment, 0, len(files))

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				return apierrors.ErrAttachmentUpload
			}

			attachment := dao.ArticleAttachment{
				Id:          dao.GenUUID(),
				ArticleId:   article.ID,
				Name:        file.Filename,
				ContentType: file.Header.Get("Content-Type"),
				Size:        file.Size,
			}

			err = s.storage.SaveReader(src, file.Size, attachment.Id, attachment.ContentType, &filestorage.Metadata{
				ArticleId: article.ID.String(),
			})
			src.Close()
			if err != nil {
				return apierrors.ErrAttachmentUpload
			}

			if err := tx.Create(&attachment).Error; err != nil {
				return err
			}

			attachments = append(attachments, *attachment.ToDTO())
		}
		return nil
	})
	if err != nil {
		return EError(c, err)
	}

	return c.JSON(http.StatusCreated, attachments)
}

// getAttachment отдает содержимое вложения.
func (s *Services) getAttachment(c echo.Context) error {
	attachmentId, err := uuid.FromString(c.Param("attachmentId"))
	if err != nil {
		return EErrorDefined(c, apierrors.ErrAttachmentNotFound)
	}

	var attachment dao.ArticleAttachment
	if err := s.db.Where("id = ?", attachmentId).First(&attachment).Error; err != nil {
		return EErrorDefined(c, apierrors.ErrAttachmentNotFound)
	}

	reader, err := s.storage.LoadReader(attachment.Id)
	if err != nil {
		return EErrorDefined(c, apierrors.ErrAttachmentNotFound)
	}
	defer reader.Close()

	return c.Stream(http.StatusOK, attachment.ContentType, reader)
}

// headAttachment отдает метаданные вложения без тела. 404, если записи нет
// или файл отсутствует в хранилище.
func (s *Services) headAttachment(c echo.Context) error {
	attachmentId, err := uuid.FromString(c.Param("attachmentId"))
	if err != nil {
		return EErrorDefined(c, apierrors.ErrAttachmentNotFound)
	}

	var attachment dao.ArticleAttachment
	if err := s.db.Where("id = ?", attachmentId).First(&attachment).Error; err != nil {
		return EErrorDefined(c, apierrors.ErrAttachmentNotFound)
	}

	info, err := s.storage.GetFileInfo(attachment.Id)
	if err != nil {
		return EErrorDefined(c, apierrors.ErrAttachmentNotFound)
	}

	h := c.Response().Header()
	h.Set(echo.HeaderContentLength, strconv.FormatInt(info.Size, 10))
	contentType := info.ContentType
	if contentType == "" {
		contentType = attachment.ContentType
	}
	if contentType != "" {
		h.Set(echo.HeaderContentType, contentType)
	}
	return c.NoContent(http.StatusOK)
}

func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	var v int
	if err := echo.QueryParamsBinder(c).Int(name, &v).BindError(); err != nil {
		return def
	}
	return v
}
