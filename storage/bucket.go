package storage

import (
	"os"
	"strings"
	"tripbook/db"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type StorageType uint8

const (
	StorageTypeFile StorageType = 0
	StorageTypeS3   StorageType = 1
)

const (
	StorageLocationCovers  = "/covers"
	StorageLocationGallery = "/gallery"
	StorageLocationMemoirs = "/memoirs"
)

type Bucket struct {
	ID            uint64      `gorm:"primaryKey" json:"id"`
	CreatedAt     int64       `json:"-"`
	UpdatedAt     int64       `json:"-"`
	Name          string      `gorm:"type:varchar(200)" json:"name"`
	StorageType   StorageType `json:"type"`
	Path          string      `json:"path"` // Path on a drive or a prefix in a S3 bucket
	S3Key         string      `json:"s3key"`
	S3Secret      string      `json:"s3secret"`
	Region        string      `json:"region"`
	Endpoint      string      `json:"endpoint"` // Optional, for S3-compatible providers
	SSEEncryption string      `json:"sse_encryption"`
	PublicBaseURL string      `json:"public_base_url"` // Base URL under which objects are publicly reachable
}

// TryInit pre-creates the standard upload locations for disk buckets
func (b *Bucket) TryInit() error {
	if b.StorageType != StorageTypeFile {
		return nil
	}
	for _, location := range []string{StorageLocationCovers, StorageLocationGallery, StorageLocationMemoirs} {
		if err := os.MkdirAll(b.Path+location, 0777); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bucket) Create() error {
	if err := db.Instance.Create(b).Error; err != nil {
		return err
	}
	return b.TryInit()
}

func (b *Bucket) CreateSVC() *s3.S3 {
	awsConfig := aws.Config{
		Region:      aws.String(b.Region),
		Credentials: credentials.NewStaticCredentials(b.S3Key, b.S3Secret, ""),
	}
	if b.Endpoint != "" {
		awsConfig.Endpoint = aws.String(b.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	return s3.New(session.Must(session.NewSession(&awsConfig)))
}

// GetRemotePath returns the S3 object key for a storage path, applying the
// bucket's configured prefix
func (b *Bucket) GetRemotePath(path string) string {
	if b.StorageType == StorageTypeS3 && b.Path != "" {
		return strings.TrimPrefix(b.Path+"/"+path, "/")
	}
	return strings.TrimPrefix(path, "/")
}
