// Package s3 предоставляет обмен файлами данных с Amazon S3
package s3

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/cockroachdb/errors"
)

// Config содержит настройки для S3
type Config struct {
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	BucketName string
}

// Client загружает и скачивает объекты одного бакета
type Client struct {
	uploader   s3manageriface.UploaderAPI
	downloader s3manageriface.DownloaderAPI
	config     *Config
}

// NewClient создает клиента S3 по настройкам
func NewClient(config *Config) (*Client, error) {
	if config.BucketName == "" {
		return nil, errors.New("s3 bucket is not configured")
	}

	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
	}

	// Если указан endpoint, добавляем его
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, errors.Wrap(err, "create aws session")
	}

	return NewClientWithAPI(config, s3manager.NewUploader(sess), s3manager.NewDownloader(sess)), nil
}

// NewClientWithAPI создает клиента поверх готовых реализаций s3manager
func NewClientWithAPI(config *Config, uploader s3manageriface.UploaderAPI, downloader s3manageriface.DownloaderAPI) *Client {
	return &Client{
		uploader:   uploader,
		downloader: downloader,
		config:     config,
	}
}

// Upload загружает содержимое reader под ключом key и возвращает адрес объекта
func (c *Client) Upload(ctx context.Context, reader io.Reader, key string) (string, error) {
	_, err := c.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(c.config.BucketName),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", errors.Wrapf(err, "upload s3://%s/%s", c.config.BucketName, key)
	}
	return c.ObjectURL(key), nil
}

// Download скачивает объект key в w и возвращает число байт
func (c *Client) Download(ctx context.Context, w io.WriterAt, key string) (int64, error) {
	n, err := c.downloader.DownloadWithContext(ctx, w, &s3.GetObjectInput{
		Bucket: aws.String(c.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return 0, errors.Wrapf(err, "download s3://%s/%s", c.config.BucketName, key)
	}
	return n, nil
}

// ObjectURL формирует адрес объекта для вывода пользователю
func (c *Client) ObjectURL(key string) string {
	if c.config.Endpoint == "" {
		return "s3://" + c.config.BucketName + "/" + key
	}
	return c.config.Endpoint + "/" + c.config.BucketName + "/" + key
}
