package initializers

import (
	"admission-backend/config"
	s3client "admission-backend/s3"
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

func InitS3() {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV2(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	s3client.Client = minioClient

	err = s3client.MakeBucket(context.Background())
	if err != nil {
		log.WithError(err).Error("Ошибка создания бакета для документов")
		return
	}
	log.Info("S3 клиент успешно инициализирован")
}
