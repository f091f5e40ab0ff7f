package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/akozyreva/marketing-kit/internal/kit"
	"github.com/akozyreva/marketing-kit/internal/logger"
	"github.com/akozyreva/marketing-kit/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrProductNameRequired is returned when a generation request has no product name.
	ErrProductNameRequired = errors.New("product name is required")
)

// TextGenerator produces marketing copy for a prompt, optionally
// grounded on a product image.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, image []byte, imageMIME string) (string, error)
}

// ImageSearcher finds an illustrative image URL, "" when none matches.
type ImageSearcher interface {
	SearchImageURL(ctx context.Context, query string) (string, error)
}

// ImageCacheGetter caches image URLs per product query.
type ImageCacheGetter interface {
	GetImageURL(ctx context.Context, query string) (string, error)
	SetImageURL(ctx context.Context, query, imageURL string) error
}

// ContentWriter persists generated kits.
type ContentWriter interface {
	Save(ctx context.Context, userID int64, productName, generatedText, headline string) error
}

// ContentReader lists a user's generation history.
type ContentReader interface {
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.ContentRecordDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// GeneratedKit is the result of a single generation.
type GeneratedKit struct {
	Headline string        `json:"headline"`
	ImageURL string        `json:"image_url"`
	Sections []kit.Section `json:"sections"`
}

// HistoryItem is one saved kit with its body parsed back into sections.
type HistoryItem struct {
	ID          int64         `json:"id"`
	ProductName string        `json:"product_name"`
	Headline    string        `json:"headline"`
	Sections    []kit.Section `json:"sections"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ContentService orchestrates kit generation, persistence, and Kafka publishing.
type ContentService struct {
	textGen     TextGenerator
	imageSearch ImageSearcher
	imageCache  ImageCacheGetter
	writeRepo   ContentWriter
	readRepo    ContentReader
	kafkaWriter KafkaWriter
}

// NewContentService creates a new ContentService.
func NewContentService(
	textGen TextGenerator,
	imageSearch ImageSearcher,
	imageCache ImageCacheGetter,
	writeRepo ContentWriter,
	readRepo ContentReader,
	kafkaWriter KafkaWriter,
) *ContentService {
	return &ContentService{
		textGen:     textGen,
		imageSearch: imageSearch,
		imageCache:  imageCache,
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a content event to Kafka.
func (s *ContentService) publishEvent(ctx context.Context, event models.ContentEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "product", event.ProductName)
	}
}

// fetchImageURL resolves the product image through the cache first, then
// the search provider. Failures degrade to an empty URL, generation
// never fails because an image is unavailable.
func (s *ContentService) fetchImageURL(ctx context.Context, productName string) string {
	if s.imageCache != nil {
		if url, err := s.imageCache.GetImageURL(ctx, productName); err == nil {
			return url
		}
	}

	url, err := s.imageSearch.SearchImageURL(ctx, productName)
	if err != nil {
		logger.Log.Warnw("image search failed, continuing without image", "product", productName, "error", err)
		return ""
	}

	if url != "" && s.imageCache != nil {
		if err := s.imageCache.SetImageURL(ctx, productName, url); err != nil {
			logger.Log.Warnw("failed to cache image URL", "product", productName, "error", err)
		}
	}

	return url
}

// Generate builds the prompt, calls the text model, resolves a product
// image, persists the kit for the user, and publishes an event. A
// non-empty image is passed to the model as visual context.
func (s *ContentService) Generate(ctx context.Context, userID int64, brief kit.Brief, image []byte, imageMIME string) (*GeneratedKit, error) {
	if brief.ProductName == "" {
		return nil, ErrProductNameRequired
	}

	prompt := kit.BuildPrompt(brief)

	raw, err := s.textGen.GenerateText(ctx, prompt, image, imageMIME)
	if err != nil {
		logger.Log.Errorw("text generation failed", "product", brief.ProductName, "error", err)
		return nil, err
	}

	headline, body := kit.SplitKit(raw)
	imageURL := s.fetchImageURL(ctx, brief.ProductName)

	if err := s.writeRepo.Save(ctx, userID, brief.ProductName, body, headline); err != nil {
		logger.Log.Errorw("failed to save generated kit", "userID", userID, "product", brief.ProductName, "error", err)
		return nil, err
	}

	event := models.ContentEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().Unix(),
		UserID:      userID,
		ProductName: brief.ProductName,
		Operation:   "content_generated",
	}
	s.publishEvent(ctx, event)

	return &GeneratedKit{
		Headline: headline,
		ImageURL: imageURL,
		Sections: kit.Sections(body),
	}, nil
}

// History returns the user's saved kits, most recent first, with the
// stored markdown parsed back into sections for display.
func (s *ContentService) History(ctx context.Context, userID int64, limit, offset int) ([]HistoryItem, error) {
	records, err := s.readRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list history", "userID", userID, "error", err)
		return nil, err
	}

	items := make([]HistoryItem, 0, len(records))
	for _, rec := range records {
		items = append(items, HistoryItem{
			ID:          rec.ID,
			ProductName: rec.ProductName,
			Headline:    rec.Headline,
			Sections:    kit.Sections(rec.GeneratedText),
			CreatedAt:   rec.CreatedAt,
		})
	}

	return items, nil
}
