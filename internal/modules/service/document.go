package service

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/wirelance/wirelance/internal/infra/blob"
	"github.com/wirelance/wirelance/internal/modules/model"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"go.uber.org/zap"
)

type DocumentService interface {
	// Upload streams the file into the documents bucket and records its
	// metadata row.
	Upload(ctx context.Context, projectID int64, taskID *int64, uploaderID int64, fh *multipart.FileHeader) (*model.ProjectDocument, error)
	ListByProject(ctx context.Context, projectID int64) ([]model.ProjectDocument, error)
	ListByTask(ctx context.Context, projectID, taskID int64) ([]model.ProjectDocument, error)
	// DownloadURL returns a presigned GET URL for the stored object.
	DownloadURL(ctx context.Context, documentID int64) (string, error)
	Remove(ctx context.Context, documentID int64) error
}

type documentService struct {
	r             repo.DocumentRepo
	s3            *blob.S3Deps
	presignExpire func() time.Duration
	log           *zap.Logger
}

func NewDocumentService(r repo.DocumentRepo, s3 *blob.S3Deps, presignExpire func() time.Duration, log *zap.Logger) DocumentService {
	return &documentService{r: r, s3: s3, presignExpire: presignExpire, log: log}
}

func (s *documentService) Upload(ctx context.Context, projectID int64, taskID *int64, uploaderID int64, fh *multipart.FileHeader) (*model.ProjectDocument, error) {
	meta, err := s.s3.UploadFormFile(ctx, projectID, fh)
	if err != nil {
		return nil, err
	}

	doc := &model.ProjectDocument{
		ProjectID:  projectID,
		TaskID:     taskID,
		FileName:   fh.Filename,
		Bucket:     meta.Bucket,
		S3Key:      meta.Key,
		ETag:       meta.ETag,
		SHA256:     meta.SHA256,
		MIME:       meta.MIME,
		SizeB:      meta.SizeB,
		UploaderID: uploaderID,
	}
	if err := s.r.Create(ctx, doc); err != nil {
		// Metadata write failed after the object landed; remove the
		// orphan so the bucket stays consistent with the table.
		if derr := s.s3.Delete(ctx, meta.Key); derr != nil {
			s.log.Sugar().Errorw("orphan object cleanup failed", "key", meta.Key, "err", derr)
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) ListByProject(ctx context.Context, projectID int64) ([]model.ProjectDocument, error) {
	return s.r.ListByProject(ctx, projectID)
}

func (s *documentService) ListByTask(ctx context.Context, projectID, taskID int64) ([]model.ProjectDocument, error) {
	return s.r.ListByTask(ctx, projectID, taskID)
}

func (s *documentService) DownloadURL(ctx context.Context, documentID int64) (string, error) {
	doc, err := s.r.GetByID(ctx, documentID)
	if err != nil {
		return "", err
	}
	return s.s3.PresignGet(ctx, doc.S3Key, s.presignExpire())
}

func (s *documentService) Remove(ctx context.Context, documentID int64) error {
	doc, err := s.r.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if err := s.s3.Delete(ctx, doc.S3Key); err != nil {
		return err
	}
	return s.r.Remove(ctx, documentID)
}
