package model

import "time"

// ProjectDocument is the metadata row of a file stored in the
// documents bucket, attached to a project and optionally to a task.
type ProjectDocument struct {
	DocumentID int64     `gorm:"column:document_id;primaryKey;autoIncrement" json:"document_id"`
	ProjectID  int64     `gorm:"column:project_id;not null;index" json:"project_id"`
	TaskID     *int64    `gorm:"column:task_id;index" json:"task_id"`
	FileName   string    `gorm:"column:file_name;type:text;not null" json:"file_name"`
	Bucket     string    `gorm:"column:bucket;type:text;not null" json:"bucket"`
	S3Key      string    `gorm:"column:s3_key;type:text;not null" json:"s3_key"`
	ETag       string    `gorm:"column:etag;type:text" json:"etag"`
	SHA256     string    `gorm:"column:sha256;type:text" json:"sha256"`
	MIME       string    `gorm:"column:mime;type:text" json:"mime"`
	SizeB      int64     `gorm:"column:size_b;not null;default:0" json:"size_b"`
	UploaderID int64     `gorm:"column:uploader_id;not null" json:"uploader_id"`
	Created    time.Time `gorm:"column:created;autoCreateTime" json:"created"`
}

func (ProjectDocument) TableName() string { return "documents.project_documents" }
