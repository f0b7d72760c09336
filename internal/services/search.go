package services

import (
	"time"

	"github.com/P3chys/comments-seed/internal/config"
	"github.com/P3chys/comments-seed/internal/models"
	"github.com/meilisearch/meilisearch-go"
	"github.com/rs/zerolog/log"
)

const commentsIndex = "comments"

type SearchService struct {
	client *meilisearch.Client
	index  string
}

func NewSearchService(cfg *config.Config) *SearchService {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   cfg.MeiliURL,
		APIKey: cfg.MeiliAPIKey,
	})

	// Ensure comments index exists (best effort)
	_, err := client.GetIndex(commentsIndex)
	if err != nil {
		_, err = client.CreateIndex(&meilisearch.IndexConfig{
			Uid:        commentsIndex,
			PrimaryKey: "id",
		})
		if err != nil {
			log.Warn().Err(err).Msg("failed to create meilisearch comments index")
		}

		_, err = client.Index(commentsIndex).UpdateSearchableAttributes(&[]string{"author", "text"})
		if err != nil {
			log.Warn().Err(err).Msg("failed to update comments searchable attributes")
		}

		_, err = client.Index(commentsIndex).UpdateSortableAttributes(&[]string{"date_unix", "likes"})
		if err != nil {
			log.Warn().Err(err).Msg("failed to update comments sortable attributes")
		}

		_, err = client.Index(commentsIndex).UpdateFilterableAttributes(&[]string{"author"})
		if err != nil {
			log.Warn().Err(err).Msg("failed to update comments filterable attributes")
		}
	}

	return &SearchService{
		client: client,
		index:  commentsIndex,
	}
}

// commentDocument is the indexed shape of a comment. Dates are normalized to
// UTC and carried as a Unix timestamp so sorting does not depend on offsets.
type commentDocument struct {
	ID       int64  `json:"id"`
	Author   string `json:"author"`
	Text     string `json:"text"`
	Date     string `json:"date"`
	DateUnix int64  `json:"date_unix"`
	Likes    int    `json:"likes"`
	Image    string `json:"image"`
}

func toCommentDocuments(comments []models.Comment) []commentDocument {
	docs := make([]commentDocument, 0, len(comments))
	for _, c := range comments {
		date := c.Date.UTC()
		docs = append(docs, commentDocument{
			ID:       c.ID,
			Author:   c.Author,
			Text:     c.Text,
			Date:     date.Format(time.RFC3339Nano),
			DateUnix: date.Unix(),
			Likes:    c.Likes,
			Image:    c.Image,
		})
	}
	return docs
}

func (s *SearchService) IndexComments(comments []models.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	_, err := s.client.Index(s.index).AddDocuments(toCommentDocuments(comments), "id")
	return err
}

func (s *SearchService) GetCommentCount() (int64, error) {
	stats, err := s.client.Index(s.index).GetStats()
	if err != nil {
		return 0, err
	}
	return stats.NumberOfDocuments, nil
}
