// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/SrVladyslav/falquor-backend/internal/db"
	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/monitoring"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
)

const (
	widAlphabet    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	widLength      = 12
	widMaxAttempts = 10
)

var _ StorageInterface = (*Storage)(nil)

// ErrWIDExhausted is returned when every generated public id collided.
var ErrWIDExhausted = errors.New("could not generate a unique wid")

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface

	newWID func() (string, error)
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	s.newWID = func() (string, error) {
		return gonanoid.Generate(widAlphabet, widLength)
	}

	return s
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// insertWithWID runs the insert built by build with fresh public ids until one
// does not collide. The builder must end with ON CONFLICT (wid) DO NOTHING and
// a RETURNING clause matching dest, so a collision yields no row instead of
// aborting the surrounding transaction.
func (s *Storage) insertWithWID(ctx context.Context, build func(wid string) sq.InsertBuilder, dest ...interface{}) (string, error) {
	for attempt := 1; attempt <= widMaxAttempts; attempt++ {
		wid, err := s.newWID()
		if err != nil {
			return "", fmt.Errorf("failed to generate wid: %w", err)
		}

		err = build(wid).QueryRowContext(ctx).Scan(dest...)
		if err == nil {
			return wid, nil
		}

		if !errors.Is(err, sql.ErrNoRows) {
			return "", err
		}

		s.logger.Debugf("wid %s collided, attempt %d of %d", wid, attempt, widMaxAttempts)
	}

	return "", ErrWIDExhausted
}

func nullableString(v string) interface{} {
	if v == "" {
		return nil
	}
	return v
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
