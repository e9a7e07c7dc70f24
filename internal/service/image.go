package service

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/slastice/backend/config"
)

var allowedImageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// ImageService stores uploaded recipe images in S3 and hands back their
// public URL.
type ImageService struct {
	s3Config *config.S3Config
}

func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// UploadRecipeImage uploads image bytes under a fresh key and returns the
// public URL. The original filename contributes only its extension.
func (s *ImageService) UploadRecipeImage(ctx context.Context, data []byte, filename string) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	contentType, ok := allowedImageTypes[ext]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q: %w", ext, ErrValidation)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty image upload: %w", ErrValidation)
	}

	key := fmt.Sprintf("recipe-images/%s%s", uuid.New().String(), ext)
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key), nil
}
