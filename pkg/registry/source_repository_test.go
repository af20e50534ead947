package registry

import (
	"context"
	"testing"
	"time"

	"github.com/franela/goblin"
	dbconnections "github.com/thebartekbanach/canvas/pkg/connections"
)

func TestSourceImagesRepository(t *testing.T) {
	conn := dbconnections.NewRegistryDBTestingConnection(t)
	repo := NewSourceImagesRepository(conn)
	g := goblin.Goblin(t)

	info := SourceImageModel{
		Hash:       "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		Size:       4,
		MimeType:   "image/jpeg",
		Width:      2000,
		Height:     1000,
		UploadedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	g.Describe("SourceImagesRepository", func() {
		g.It("Should store and return source image info", func() {
			g.Assert(repo.CreateSourceImageInfo(context.Background(), info)).IsNil()

			stored, err := repo.GetSourceImageInfo(context.Background(), info.Hash)
			g.Assert(err).IsNil()
			g.Assert(stored).Equal(info)
		})

		g.It("Should refuse to store the same hash twice", func() {
			err := repo.CreateSourceImageInfo(context.Background(), info)
			g.Assert(err).Equal(ErrSourceImageAlreadyExists)
		})

		g.It("Should return ErrSourceImageNotFound for unknown hashes", func() {
			_, err := repo.GetSourceImageInfo(context.Background(), "unknown")
			g.Assert(err).Equal(ErrSourceImageNotFound)
		})
	})
}

func TestNopRepository(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("NopRepository", func() {
		g.It("Should accept records and never find them", func() {
			repo := NopRepository{}

			g.Assert(repo.CreateSourceImageInfo(context.Background(), SourceImageModel{Hash: "a"})).IsNil()

			_, err := repo.GetSourceImageInfo(context.Background(), "a")
			g.Assert(err).Equal(ErrSourceImageNotFound)
		})
	})
}
