package model

import "time"

// WikiTree is the root of a project's wiki. Deletion must run
// child-before-parent: pages, folder relations, folders, then the tree.
type WikiTree struct {
	WikiTreeID int64     `gorm:"column:wiki_tree_id;primaryKey;autoIncrement" json:"wiki_tree_id"`
	ProjectID  int64     `gorm:"column:project_id;not null;uniqueIndex" json:"project_id"`
	TreeName   string    `gorm:"column:tree_name;type:text;not null" json:"tree_name"`
	Created    time.Time `gorm:"column:created;autoCreateTime" json:"created"`
}

func (WikiTree) TableName() string { return "documents.wiki_trees" }

// WikiFolder is a folder node of a wiki tree.
type WikiFolder struct {
	FolderID   int64  `gorm:"column:folder_id;primaryKey;autoIncrement" json:"folder_id"`
	WikiTreeID int64  `gorm:"column:wiki_tree_id;not null;index" json:"wiki_tree_id"`
	FolderName string `gorm:"column:folder_name;type:text;not null" json:"folder_name"`
}

func (WikiFolder) TableName() string { return "documents.wiki_folders" }

// WikiFolderRelation nests one folder under another.
type WikiFolderRelation struct {
	RelationID     int64 `gorm:"column:relation_id;primaryKey;autoIncrement" json:"relation_id"`
	FolderID       int64 `gorm:"column:folder_id;not null;index" json:"folder_id"`
	ParentFolderID int64 `gorm:"column:parent_folder_id;not null" json:"parent_folder_id"`
}

func (WikiFolderRelation) TableName() string { return "documents.wiki_folder_relations" }

// WikiPage is a content page inside a wiki folder (or at tree root).
type WikiPage struct {
	PageID     int64     `gorm:"column:page_id;primaryKey;autoIncrement" json:"page_id"`
	WikiTreeID int64     `gorm:"column:wiki_tree_id;not null;index" json:"wiki_tree_id"`
	FolderID   *int64    `gorm:"column:folder_id;index" json:"folder_id"`
	PageName   string    `gorm:"column:page_name;type:text;not null" json:"page_name"`
	PageText   string    `gorm:"column:page_text;type:text" json:"page_text"`
	Updated    time.Time `gorm:"column:updated;autoUpdateTime" json:"updated"`
}

func (WikiPage) TableName() string { return "documents.wiki_pages" }
