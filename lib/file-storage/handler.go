package filestorage

import (
	"admission-backend/config"
	"admission-backend/db"
	filesdbstore "admission-backend/lib/file-storage/store"
	dbmodels "admission-backend/models/db"
	s3client "admission-backend/s3"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	UploadDoc(ctx context.Context, applicantID string, file []byte, fileName string) (id string, err error)
	GetDoc(ctx context.Context, docID string) (body []byte, fileName string, err error)
	GetDocList(applicantID string) ([]dbmodels.ApplicantDoc, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		s3client: s3client.Client,
		store:    filesdbstore.NewInstance(db.DB),
	}
}

type impl struct {
	s3client *minio.Client
	store    filesdbstore.Provider
}

func (i impl) UploadDoc(ctx context.Context, applicantID string, file []byte, fileName string) (id string, err error) {
	rec := dbmodels.ApplicantDoc{
		ApplicantID: applicantID,
		FileName:    fileName,
	}
	id, err = i.store.Save(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения записи о документе")
	}
	objectKey := i.getObjectKey(applicantID, id)
	_, err = i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		log.WithError(err).Error("ошибка загрузки документа в S3")
		return "", err
	}
	err = i.store.Update(id, map[string]interface{}{"object_key": objectKey})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (i impl) GetDoc(ctx context.Context, docID string) (body []byte, fileName string, err error) {
	rec, err := i.store.GetByID(docID)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "", errors.New("документ не найден")
	}
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, rec.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		log.WithError(err).Error("ошибка получения документа из S3")
		return nil, "", err
	}
	defer object.Close()
	body, err = io.ReadAll(object)
	if err != nil {
		return nil, "", err
	}
	return body, rec.FileName, nil
}

func (i impl) GetDocList(applicantID string) ([]dbmodels.ApplicantDoc, error) {
	return i.store.List(applicantID)
}

func (i impl) getObjectKey(applicantID, docID string) string {
	return fmt.Sprintf("%s/%s", applicantID, docID)
}
