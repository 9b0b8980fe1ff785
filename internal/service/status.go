package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/deppfellow/shrine-api/internal/errs"
	"github.com/deppfellow/shrine-api/internal/model"
)

// statusStore is what every status-bearing repository provides.
type statusStore[T any] interface {
	ListAll(ctx context.Context) ([]T, error)
	ListByStatus(ctx context.Context, status string) ([]T, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*T, error)
	Delete(ctx context.Context, id int64) (*T, error)
	Stats(ctx context.Context) (model.Stats, error)
}

// statusService holds the listing and moderation operations shared by
// every resource. Resource services embed it and add their own Create.
type statusService[T any, S model.StatusSet] struct {
	store statusStore[T]
	label string
}

func newStatusService[T any, S model.StatusSet](store statusStore[T], label string) statusService[T, S] {
	return statusService[T, S]{store: store, label: label}
}

func invalidStatusError[S model.StatusSet](status string) error {
	var set S
	return errs.NewBadRequestError(
		fmt.Sprintf("Invalid status %q", status),
		true,
		nil,
		[]errs.FieldError{{Field: "status", Error: "must be one of: " + strings.Join(set.Values(), " ")}},
		nil,
	)
}

// List returns all records, or only those in status when it is not empty.
func (s *statusService[T, S]) List(ctx context.Context, status string) ([]T, error) {
	if status == "" {
		return s.store.ListAll(ctx)
	}
	if !model.ValidStatus[S](status) {
		return nil, invalidStatusError[S](status)
	}
	return s.store.ListByStatus(ctx, status)
}

func (s *statusService[T, S]) UpdateStatus(ctx context.Context, id int64, status string) (*T, error) {
	if !model.ValidStatus[S](status) {
		return nil, invalidStatusError[S](status)
	}
	return s.store.UpdateStatus(ctx, id, status)
}

// Delete hard-deletes one record and reports what was removed.
func (s *statusService[T, S]) Delete(ctx context.Context, id int64) (*model.DeleteResponse[T], error) {
	item, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.DeleteResponse[T]{
		Message: s.label + " deleted successfully",
		Data:    item,
	}, nil
}

func (s *statusService[T, S]) Stats(ctx context.Context) (model.Stats, error) {
	return s.store.Stats(ctx)
}
