package repo

import (
	"context"
	"errors"

	"github.com/wirelance/wirelance/internal/modules/model"
	"gorm.io/gorm"
)

type WikiRepo interface {
	GetTree(ctx context.Context, projectID int64) (*model.WikiTree, error)
	CreateTree(ctx context.Context, tree *model.WikiTree) error
	ListFolders(ctx context.Context, wikiTreeID int64) ([]model.WikiFolder, error)
	CreateFolder(ctx context.Context, folder *model.WikiFolder, parentFolderID *int64) error
	ListPages(ctx context.Context, wikiTreeID int64) ([]model.WikiPage, error)
	GetPage(ctx context.Context, pageID int64) (*model.WikiPage, error)
	CreatePage(ctx context.Context, page *model.WikiPage) error
	UpdatePageText(ctx context.Context, pageID int64, text string) error
	UpdatePageName(ctx context.Context, pageID int64, name string) error
	RemovePage(ctx context.Context, pageID int64) error
}

type wikiRepo struct{ db *gorm.DB }

func NewWikiRepo(db *gorm.DB) WikiRepo {
	return &wikiRepo{db: db}
}

func (r *wikiRepo) GetTree(ctx context.Context, projectID int64) (*model.WikiTree, error) {
	var tree model.WikiTree
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&tree).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tree, nil
}

func (r *wikiRepo) CreateTree(ctx context.Context, tree *model.WikiTree) error {
	return r.db.WithContext(ctx).Create(tree).Error
}

func (r *wikiRepo) ListFolders(ctx context.Context, wikiTreeID int64) ([]model.WikiFolder, error) {
	var folders []model.WikiFolder
	err := r.db.WithContext(ctx).
		Where("wiki_tree_id = ?", wikiTreeID).
		Order("folder_id").
		Find(&folders).Error
	return folders, err
}

func (r *wikiRepo) CreateFolder(ctx context.Context, folder *model.WikiFolder, parentFolderID *int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(folder).Error; err != nil {
			return err
		}
		if parentFolderID == nil {
			return nil
		}
		return tx.Create(&model.WikiFolderRelation{
			FolderID:       folder.FolderID,
			ParentFolderID: *parentFolderID,
		}).Error
	})
}

func (r *wikiRepo) ListPages(ctx context.Context, wikiTreeID int64) ([]model.WikiPage, error) {
	var pages []model.WikiPage
	err := r.db.WithContext(ctx).
		Where("wiki_tree_id = ?", wikiTreeID).
		Order("page_id").
		Find(&pages).Error
	return pages, err
}

func (r *wikiRepo) GetPage(ctx context.Context, pageID int64) (*model.WikiPage, error) {
	var page model.WikiPage
	err := r.db.WithContext(ctx).Where("page_id = ?", pageID).First(&page).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *wikiRepo) CreatePage(ctx context.Context, page *model.WikiPage) error {
	return r.db.WithContext(ctx).Create(page).Error
}

func (r *wikiRepo) UpdatePageText(ctx context.Context, pageID int64, text string) error {
	return r.updatePageField(ctx, pageID, "page_text", text)
}

func (r *wikiRepo) UpdatePageName(ctx context.Context, pageID int64, name string) error {
	return r.updatePageField(ctx, pageID, "page_name", name)
}

func (r *wikiRepo) updatePageField(ctx context.Context, pageID int64, column string, value interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.WikiPage{}).
		Where("page_id = ?", pageID).
		Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *wikiRepo) RemovePage(ctx context.Context, pageID int64) error {
	res := r.db.WithContext(ctx).Where("page_id = ?", pageID).Delete(&model.WikiPage{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
