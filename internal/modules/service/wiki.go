package service

import (
	"context"
	"errors"

	"github.com/wirelance/wirelance/internal/modules/model"
	"github.com/wirelance/wirelance/internal/modules/repo"
)

type WikiService interface {
	// GetTree returns the project wiki with folders and pages, creating
	// the tree lazily on first access.
	GetTree(ctx context.Context, projectID int64) (*WikiTreeOutput, error)
	CreateFolder(ctx context.Context, projectID int64, folderName string, parentFolderID *int64) (*model.WikiFolder, error)
	CreatePage(ctx context.Context, projectID int64, folderID *int64, pageName string) (*model.WikiPage, error)
	GetPage(ctx context.Context, pageID int64) (*model.WikiPage, error)
	UpdatePageText(ctx context.Context, pageID int64, text string) error
	UpdatePageName(ctx context.Context, pageID int64, name string) error
	RemovePage(ctx context.Context, pageID int64) error
}

// WikiTreeOutput is the whole wiki of a project.
type WikiTreeOutput struct {
	Tree    *model.WikiTree    `json:"tree"`
	Folders []model.WikiFolder `json:"folders"`
	Pages   []model.WikiPage   `json:"pages"`
}

type wikiService struct {
	r        repo.WikiRepo
	projects repo.ProjectRepo
}

func NewWikiService(r repo.WikiRepo, projects repo.ProjectRepo) WikiService {
	return &wikiService{r: r, projects: projects}
}

func (s *wikiService) GetTree(ctx context.Context, projectID int64) (*WikiTreeOutput, error) {
	tree, err := s.r.GetTree(ctx, projectID)
	if errors.Is(err, repo.ErrNotFound) {
		project, perr := s.projects.GetByID(ctx, projectID)
		if perr != nil {
			return nil, perr
		}
		tree = &model.WikiTree{ProjectID: projectID, TreeName: project.ProjectName}
		if cerr := s.r.CreateTree(ctx, tree); cerr != nil {
			return nil, cerr
		}
	} else if err != nil {
		return nil, err
	}

	folders, err := s.r.ListFolders(ctx, tree.WikiTreeID)
	if err != nil {
		return nil, err
	}
	pages, err := s.r.ListPages(ctx, tree.WikiTreeID)
	if err != nil {
		return nil, err
	}
	return &WikiTreeOutput{Tree: tree, Folders: folders, Pages: pages}, nil
}

func (s *wikiService) CreateFolder(ctx context.Context, projectID int64, folderName string, parentFolderID *int64) (*model.WikiFolder, error) {
	if folderName == "" {
		return nil, errors.New("folder name is empty")
	}
	tree, err := s.r.GetTree(ctx, projectID)
	if err != nil {
		return nil, err
	}
	folder := &model.WikiFolder{WikiTreeID: tree.WikiTreeID, FolderName: folderName}
	if err := s.r.CreateFolder(ctx, folder, parentFolderID); err != nil {
		return nil, err
	}
	return folder, nil
}

func (s *wikiService) CreatePage(ctx context.Context, projectID int64, folderID *int64, pageName string) (*model.WikiPage, error) {
	if pageName == "" {
		return nil, errors.New("page name is empty")
	}
	tree, err := s.r.GetTree(ctx, projectID)
	if err != nil {
		return nil, err
	}
	page := &model.WikiPage{WikiTreeID: tree.WikiTreeID, FolderID: folderID, PageName: pageName}
	if err := s.r.CreatePage(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *wikiService) GetPage(ctx context.Context, pageID int64) (*model.WikiPage, error) {
	return s.r.GetPage(ctx, pageID)
}

func (s *wikiService) UpdatePageText(ctx context.Context, pageID int64, text string) error {
	return s.r.UpdatePageText(ctx, pageID, text)
}

func (s *wikiService) UpdatePageName(ctx context.Context, pageID int64, name string) error {
	if name == "" {
		return errors.New("page name is empty")
	}
	return s.r.UpdatePageName(ctx, pageID, name)
}

func (s *wikiService) RemovePage(ctx context.Context, pageID int64) error {
	return s.r.RemovePage(ctx, pageID)
}
