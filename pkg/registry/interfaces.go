package registry

import (
	"context"
	"time"
)

type SourceImageModel struct {
	Hash       string    `json:"hash" bson:"hash"`
	Size       int64     `json:"size" bson:"size"`
	MimeType   string    `json:"mimeType" bson:"mimeType"`
	Width      int       `json:"width" bson:"width"`
	Height     int       `json:"height" bson:"height"`
	UploadedAt time.Time `json:"uploadedAt" bson:"uploadedAt"`
}

type SourceImagesRepository interface {
	CreateSourceImageInfo(ctx context.Context, info SourceImageModel) error
	GetSourceImageInfo(ctx context.Context, hash string) (SourceImageModel, error)
}
