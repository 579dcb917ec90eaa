package services

import (
	"fmt"
	"strings"
	"time"

	"literary-cms/helper"
	"literary-cms/models"
	"literary-cms/repositories"

	"github.com/rs/zerolog"
)

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest, actor models.User, ip string) (*models.Article, error)
	UpdateArticle(id uint, req models.UpdateArticleRequest, actor models.User, ip string) (*models.Article, error)
	SubmitForReview(id uint, actor models.User, ip string) (*models.Article, error)
	Approve(id uint, actor models.User, ip string) (*models.Article, error)
	Reject(id uint, reason string, actor models.User, ip string) (*models.Article, error)
	BulkUpdateStatus(ids []uint, status models.ArticleStatus, actor models.User, ip string) error
	BulkDelete(ids []uint, actor models.User, ip string) error
	DeleteArticle(id uint, actor models.User, ip string) error
	GetArticle(id uint, actor models.User) (*models.Article, error)
	GetArticles(params models.ArticleListParams, actor models.User) ([]models.Article, int64, error)
	GetPublicArticles(params models.ArticleListParams) ([]models.Article, int64, error)
	GetPublicArticleBySlug(slug string) (*models.Article, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	userRepo    repositories.UserRepository
	versions    VersionService
	sink        NotificationSink
	recorder    ActivityRecorder
	log         zerolog.Logger
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	userRepo repositories.UserRepository,
	versions VersionService,
	sink NotificationSink,
	recorder ActivityRecorder,
	log zerolog.Logger,
) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		userRepo:    userRepo,
		versions:    versions,
		sink:        sink,
		recorder:    recorder,
		log:         log,
	}
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest, actor models.User, ip string) (*models.Article, error) {
	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}
	if !status.Valid() {
		return nil, models.ErrorBadRequest{Message: "invalid article status"}
	}
	// Only admins may create directly in PUBLISHED; the write still goes
	// through for everyone else, downgraded to DRAFT.
	if status == models.StatusPublished && !actor.Role.IsAdmin() {
		status = models.StatusDraft
	}

	slug, err := s.uniqueSlug(req.Title)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		AuthorID:         actor.ID,
		CategoryID:       req.CategoryID,
		Title:            req.Title,
		Slug:             slug,
		Excerpt:          req.Excerpt,
		Content:          req.Content,
		Status:           status,
		FeaturedImage:    req.FeaturedImage,
		AuthorRevealDate: req.AuthorRevealDate,
	}
	if status == models.StatusPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	if err := s.userRepo.AdjustArticleCount(actor.ID, 1); err != nil {
		return nil, err
	}

	runSideEffect(s.log, "version.create", func() error {
		_, err := s.versions.RecordVersion(article.ID, article.Title, article.Excerpt, article.Content, actor.ID, "initial version")
		return err
	})
	runSideEffect(s.log, "activity.create", func() error {
		return s.recorder.Record(actor, models.ActionCreate, "article", article.ID, article.Title, "", ip)
	})

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) UpdateArticle(id uint, req models.UpdateArticleRequest, actor models.User, ip string) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, "article not found")
	}
	if !s.canModify(actor, article) {
		return nil, models.ErrorForbidden{Message: "not allowed to modify this article"}
	}

	contentChanged := article.Title != req.Title ||
		article.Excerpt != req.Excerpt ||
		article.Content != req.Content

	article.Title = req.Title
	article.Excerpt = req.Excerpt
	article.Content = req.Content
	article.CategoryID = req.CategoryID
	article.FeaturedImage = req.FeaturedImage
	article.AuthorRevealDate = req.AuthorRevealDate

	if req.Status != "" {
		if !req.Status.Valid() {
			return nil, models.ErrorBadRequest{Message: "invalid article status"}
		}
		requested := req.Status
		// A writer setting PUBLISHED directly is silently downgraded to
		// DRAFT; the rest of the write still succeeds.
		if requested == models.StatusPublished && !actor.Role.IsAdmin() {
			requested = models.StatusDraft
		}
		if requested == models.StatusPublished && article.PublishedAt == nil {
			now := time.Now()
			article.PublishedAt = &now
		}
		article.Status = requested
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	if contentChanged {
		runSideEffect(s.log, "version.update", func() error {
			_, err := s.versions.RecordVersion(article.ID, article.Title, article.Excerpt, article.Content, actor.ID, req.ChangeNote)
			return err
		})
	}
	runSideEffect(s.log, "activity.update", func() error {
		return s.recorder.Record(actor, models.ActionUpdate, "article", article.ID, article.Title, "", ip)
	})

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) SubmitForReview(id uint, actor models.User, ip string) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, "article not found")
	}
	if article.AuthorID != actor.ID {
		return nil, models.ErrorForbidden{Message: "only the author can submit an article for review"}
	}
	if article.Status != models.StatusDraft && article.Status != models.StatusRejected {
		return nil, models.ErrorConflict{Message: "article cannot be submitted from its current status"}
	}

	now := time.Now()
	article.Status = models.StatusPendingReview
	article.SubmittedAt = &now
	article.RejectionReason = nil

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	runSideEffect(s.log, "notify.pending", func() error {
		return s.sink.NotifyAdmins(
			models.NotificationNewPending,
			"New article pending review",
			fmt.Sprintf("%q by %s is awaiting review", article.Title, actor.Username),
			fmt.Sprintf("/admin/articles/%d", article.ID),
		)
	})
	runSideEffect(s.log, "activity.submit", func() error {
		return s.recorder.Record(actor, models.ActionUpdate, "article", article.ID, article.Title, "submitted for review", ip)
	})

	return article, nil
}

func (s *articleService) Approve(id uint, actor models.User, ip string) (*models.Article, error) {
	if !actor.Role.IsAdmin() {
		return nil, models.ErrorForbidden{Message: "only admins can approve articles"}
	}

	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, "article not found")
	}
	if article.Status != models.StatusPendingReview {
		return nil, models.ErrorConflict{Message: "article is not pending review"}
	}

	now := time.Now()
	article.Status = models.StatusPublished
	article.PublishedAt = &now
	article.ReviewedAt = &now
	article.ReviewedByID = &actor.ID
	article.RejectionReason = nil

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	runSideEffect(s.log, "notify.approved", func() error {
		return s.sink.NotifyUser(
			article.AuthorID,
			models.NotificationArticleApproved,
			"Article approved",
			fmt.Sprintf("%q has been approved and published", article.Title),
			fmt.Sprintf("/articles/%s", article.Slug),
		)
	})
	runSideEffect(s.log, "activity.approve", func() error {
		return s.recorder.Record(actor, models.ActionApprove, "article", article.ID, article.Title, "", ip)
	})

	return article, nil
}

func (s *articleService) Reject(id uint, reason string, actor models.User, ip string) (*models.Article, error) {
	if !actor.Role.IsAdmin() {
		return nil, models.ErrorForbidden{Message: "only admins can reject articles"}
	}

	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, "article not found")
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, models.ErrorBadRequest{Message: "rejection reason is required"}
	}
	if article.Status != models.StatusPendingReview {
		return nil, models.ErrorConflict{Message: "article is not pending review"}
	}

	now := time.Now()
	article.Status = models.StatusRejected
	article.ReviewedAt = &now
	article.ReviewedByID = &actor.ID
	article.RejectionReason = &reason

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	runSideEffect(s.log, "notify.rejected", func() error {
		return s.sink.NotifyUser(
			article.AuthorID,
			models.NotificationArticleRejected,
			"Article rejected",
			fmt.Sprintf("%q was rejected: %s", article.Title, reason),
			fmt.Sprintf("/articles/%d/edit", article.ID),
		)
	})
	runSideEffect(s.log, "activity.reject", func() error {
		return s.recorder.Record(actor, models.ActionReject, "article", article.ID, article.Title, reason, ip)
	})

	return article, nil
}

func (s *articleService) BulkUpdateStatus(ids []uint, status models.ArticleStatus, actor models.User, ip string) error {
	if !actor.Role.IsAdmin() {
		return models.ErrorForbidden{Message: "only admins can perform bulk actions"}
	}
	if !status.Valid() {
		return models.ErrorBadRequest{Message: "invalid article status"}
	}

	var publishedAt *time.Time
	action := models.ActionUpdate
	if status == models.StatusPublished {
		now := time.Now()
		publishedAt = &now
		action = models.ActionPublish
	}

	if err := s.articleRepo.UpdateStatusBulk(ids, status, publishedAt); err != nil {
		return err
	}

	runSideEffect(s.log, "activity.bulk_status", func() error {
		details := fmt.Sprintf("bulk status change to %s (%d articles)", status, len(ids))
		return s.recorder.Record(actor, action, "article", 0, "", details, ip)
	})

	return nil
}

func (s *articleService) BulkDelete(ids []uint, actor models.User, ip string) error {
	if !actor.Role.IsAdmin() {
		return models.ErrorForbidden{Message: "only admins can perform bulk actions"}
	}

	// Unlike the single-delete path, bulk delete does not adjust the
	// per-author article counters.
	if err := s.articleRepo.DeleteBulk(ids); err != nil {
		return err
	}

	runSideEffect(s.log, "activity.bulk_delete", func() error {
		details := fmt.Sprintf("bulk delete (%d articles)", len(ids))
		return s.recorder.Record(actor, models.ActionDelete, "article", 0, "", details, ip)
	})

	return nil
}

func (s *articleService) DeleteArticle(id uint, actor models.User, ip string) error {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return notFoundOr(err, "article not found")
	}

	switch actor.Role {
	case models.RoleAdmin:
		// Admins may delete in any state.
	case models.RoleWriter, models.RolePoet:
		if article.AuthorID != actor.ID {
			return models.ErrorForbidden{Message: "not allowed to delete this article"}
		}
		if article.Status == models.StatusPublished {
			return models.ErrorForbidden{Message: "published articles can only be deleted by an admin"}
		}
	default:
		return models.ErrorForbidden{Message: "not allowed to delete this article"}
	}

	if err := s.articleRepo.Delete(id); err != nil {
		return err
	}

	if err := s.userRepo.AdjustArticleCount(article.AuthorID, -1); err != nil {
		return err
	}

	runSideEffect(s.log, "activity.delete", func() error {
		return s.recorder.Record(actor, models.ActionDelete, "article", article.ID, article.Title, "", ip)
	})

	return nil
}

func (s *articleService) GetArticle(id uint, actor models.User) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, "article not found")
	}
	if !s.canModify(actor, article) {
		return nil, models.ErrorForbidden{Message: "not allowed to view this article"}
	}
	return article, nil
}

func (s *articleService) GetArticles(params models.ArticleListParams, actor models.User) ([]models.Article, int64, error) {
	// Writers and poets only ever see their own work in the dashboard.
	if !actor.Role.IsAdmin() {
		params.AuthorID = actor.ID
	}
	return s.articleRepo.GetList(params, false)
}

func (s *articleService) GetPublicArticles(params models.ArticleListParams) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(params, true)
}

func (s *articleService) GetPublicArticleBySlug(slug string) (*models.Article, error) {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		return nil, notFoundOr(err, "article not found")
	}
	if article.Status != models.StatusPublished {
		return nil, models.ErrorNotFound{Message: "article not found"}
	}

	runSideEffect(s.log, "view_count", func() error {
		return s.articleRepo.IncrementViewCount(article.ID)
	})

	return article, nil
}

func (s *articleService) canModify(actor models.User, article *models.Article) bool {
	switch actor.Role {
	case models.RoleAdmin:
		return true
	case models.RoleWriter, models.RolePoet:
		return article.AuthorID == actor.ID
	}
	return false
}

func (s *articleService) uniqueSlug(title string) (string, error) {
	base := helper.Slugify(title)
	if base == "" {
		base = "untitled"
	}

	slug := base
	for i := 2; ; i++ {
		exists, err := s.articleRepo.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
