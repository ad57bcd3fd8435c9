// Package dataservice is the single read/write facade the UI talks to.
// Panels never reach into the store directly; everything funnels through
// here so each operation gets one trace span and one place to validate.
package dataservice

import (
	"context"
	"encoding/json"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"boatdash/internal/jsonutil"
	"boatdash/internal/model"
	"boatdash/internal/store"
)

// Service exposes the boat and review operations used by the dashboard.
type Service struct {
	boats   *store.BoatRepo
	reviews *store.ReviewRepo
	tracer  oteltrace.Tracer
	logger  *slog.Logger
}

func New(boats *store.BoatRepo, reviews *store.ReviewRepo, tracer oteltrace.Tracer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{boats: boats, reviews: reviews, tracer: tracer, logger: logger}
}

func (s *Service) span(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, oteltrace.Span) {
	if s.tracer == nil {
		return ctx, nil
	}
	return s.tracer.Start(ctx, name, oteltrace.WithAttributes(attrs...))
}

func end(span oteltrace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
	}
	span.End()
}

// GetBoatTypes lists all boat types for the search filter.
func (s *Service) GetBoatTypes(ctx context.Context) ([]model.BoatType, error) {
	ctx, sp := s.span(ctx, "GetBoatTypes")
	types, err := s.boats.Types(ctx)
	end(sp, err)
	return types, err
}

// GetBoats lists boats, optionally filtered by type. An empty boatTypeID
// means all types.
func (s *Service) GetBoats(ctx context.Context, boatTypeID string) ([]model.Boat, error) {
	ctx, sp := s.span(ctx, "GetBoats", attribute.String("boat.type_id", boatTypeID))
	boats, err := s.boats.List(ctx, boatTypeID)
	end(sp, err)
	if err != nil {
		s.logger.Error("get boats failed", "type_id", boatTypeID, "error", err)
	}
	return boats, err
}

// GetBoat fetches a single boat by ID.
func (s *Service) GetBoat(ctx context.Context, boatID string) (model.Boat, error) {
	ctx, sp := s.span(ctx, "GetBoat", attribute.String("boat.id", boatID))
	boat, err := s.boats.Get(ctx, boatID)
	end(sp, err)
	return boat, err
}

// GetBoatsByLocation returns the boats closest to the given position as a
// JSON document, at most ten of them, optionally filtered by type.
// Callers decode the document before mapping results to markers.
func (s *Service) GetBoatsByLocation(ctx context.Context, latitude, longitude float64, boatTypeID string) (string, error) {
	ctx, sp := s.span(ctx, "GetBoatsByLocation",
		attribute.Float64("geo.latitude", latitude),
		attribute.Float64("geo.longitude", longitude),
		attribute.String("boat.type_id", boatTypeID))
	boats, err := s.boats.Nearby(ctx, latitude, longitude, boatTypeID)
	if err != nil {
		end(sp, err)
		s.logger.Error("get boats by location failed", "error", err)
		return "", err
	}
	raw, err := json.Marshal(boats)
	end(sp, err)
	return string(raw), err
}

// DecodeBoats parses the JSON document produced by GetBoatsByLocation.
func DecodeBoats(doc string) ([]model.Boat, error) {
	return jsonutil.UnmarshalArray[model.Boat]([]byte(doc), "decode boats document")
}

// GetSimilarBoats lists boats similar to the given one by the named
// criterion (Type, Price or Length).
func (s *Service) GetSimilarBoats(ctx context.Context, boatID string, similarBy model.SimilarBy) ([]model.Boat, error) {
	ctx, sp := s.span(ctx, "GetSimilarBoats",
		attribute.String("boat.id", boatID),
		attribute.String("similar.by", string(similarBy)))
	boats, err := s.boats.Similar(ctx, boatID, similarBy)
	end(sp, err)
	return boats, err
}

// GetAllReviews lists every review for a boat, newest first.
func (s *Service) GetAllReviews(ctx context.Context, boatID string) ([]model.BoatReview, error) {
	ctx, sp := s.span(ctx, "GetAllReviews", attribute.String("boat.id", boatID))
	reviews, err := s.reviews.ListForBoat(ctx, boatID)
	end(sp, err)
	return reviews, err
}

// CreateReview persists a new review for a boat.
func (s *Service) CreateReview(ctx context.Context, review model.BoatReview) (model.BoatReview, error) {
	ctx, sp := s.span(ctx, "CreateReview",
		attribute.String("boat.id", review.BoatID),
		attribute.Int("review.rating", review.Rating))
	created, err := s.reviews.Create(ctx, review)
	end(sp, err)
	if err != nil {
		s.logger.Error("create review failed", "boat_id", review.BoatID, "error", err)
	}
	return created, err
}

// UpdateBoatList applies a batch of row edits in a single transaction.
// Either every change lands or none do.
func (s *Service) UpdateBoatList(ctx context.Context, changes []model.RowChange) error {
	ctx, sp := s.span(ctx, "UpdateBoatList", attribute.Int("changes.count", len(changes)))
	err := s.boats.BatchUpdate(ctx, changes)
	end(sp, err)
	if err != nil {
		s.logger.Error("update boat list failed", "count", len(changes), "error", err)
	}
	return err
}
