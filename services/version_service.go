package services

import (
	"fmt"

	"literary-cms/models"
	"literary-cms/repositories"

	"github.com/rs/zerolog"
)

type VersionService interface {
	// RecordVersion appends an immutable snapshot with the next version
	// number for the article.
	RecordVersion(articleID uint, title, excerpt, content string, changedBy uint, note string) (*models.ArticleVersion, error)
	ListVersions(articleID uint, actor models.User) ([]models.ArticleVersionResponse, error)
	RestoreVersion(articleID, versionID uint, actor models.User, ip string) (*models.Article, error)
}

type versionService struct {
	versionRepo repositories.ArticleVersionRepository
	articleRepo repositories.ArticleRepository
	userRepo    repositories.UserRepository
	recorder    ActivityRecorder
	log         zerolog.Logger
}

func NewVersionService(
	versionRepo repositories.ArticleVersionRepository,
	articleRepo repositories.ArticleRepository,
	userRepo repositories.UserRepository,
	recorder ActivityRecorder,
	log zerolog.Logger,
) VersionService {
	return &versionService{
		versionRepo: versionRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
		recorder:    recorder,
		log:         log,
	}
}

func (s *versionService) RecordVersion(articleID uint, title, excerpt, content string, changedBy uint, note string) (*models.ArticleVersion, error) {
	next, err := s.versionRepo.NextVersionNumber(articleID)
	if err != nil {
		return nil, err
	}

	version := &models.ArticleVersion{
		ArticleID:     articleID,
		VersionNumber: next,
		Title:         title,
		Excerpt:       excerpt,
		Content:       content,
		ChangedByID:   changedBy,
		ChangeNote:    note,
	}
	if err := s.versionRepo.Create(version); err != nil {
		return nil, err
	}
	return version, nil
}

func (s *versionService) ListVersions(articleID uint, actor models.User) ([]models.ArticleVersionResponse, error) {
	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, notFoundOr(err, "article not found")
	}
	if err := s.guard(actor, article); err != nil {
		return nil, err
	}

	versions, err := s.versionRepo.GetByArticleID(articleID)
	if err != nil {
		return nil, err
	}

	// Best-effort author names; a deleted or unknown user renders as a
	// placeholder instead of failing the listing.
	names := make(map[uint]string)
	result := make([]models.ArticleVersionResponse, 0, len(versions))
	for _, version := range versions {
		name, ok := names[version.ChangedByID]
		if !ok {
			user, err := s.userRepo.GetByID(version.ChangedByID)
			if err != nil {
				name = "Unknown"
			} else {
				name = user.Username
			}
			names[version.ChangedByID] = name
		}
		result = append(result, models.ArticleVersionResponse{
			ArticleVersion: version,
			ChangedByName:  name,
		})
	}

	return result, nil
}

// RestoreVersion copies a past snapshot back onto the live article. The live
// content is snapshotted as a new version first, so restoring moves forward
// to a copy of the past and never loses history.
func (s *versionService) RestoreVersion(articleID, versionID uint, actor models.User, ip string) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, notFoundOr(err, "article not found")
	}
	if err := s.guard(actor, article); err != nil {
		return nil, err
	}

	version, err := s.versionRepo.GetByID(versionID)
	if err != nil {
		return nil, notFoundOr(err, "version not found")
	}
	if version.ArticleID != articleID {
		return nil, models.ErrorNotFound{Message: "version not found"}
	}

	note := fmt.Sprintf("restored to version %d", version.VersionNumber)

	// The pre-restore state must be preserved before anything is
	// overwritten; unlike the save path this write is not allowed to be
	// lost.
	if _, err := s.RecordVersion(articleID, article.Title, article.Excerpt, article.Content, actor.ID, note); err != nil {
		return nil, err
	}

	article.Title = version.Title
	article.Excerpt = version.Excerpt
	article.Content = version.Content
	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	runSideEffect(s.log, "activity.restore", func() error {
		return s.recorder.Record(actor, models.ActionUpdate, "article", article.ID, article.Title, note, ip)
	})

	return article, nil
}

func (s *versionService) guard(actor models.User, article *models.Article) error {
	switch actor.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleWriter, models.RolePoet:
		if article.AuthorID == actor.ID {
			return nil
		}
	}
	return models.ErrorForbidden{Message: "not allowed to access this article's versions"}
}
