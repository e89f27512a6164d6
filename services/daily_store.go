package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wellbeing/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Order int

const (
	Descending Order = iota
	Ascending
)

// DailyStore persists one record kind keyed by (owner, day).
//
// Saves are upsert-replace, not patch: every column of the stored row is
// overwritten with the value passed in, so fields the caller left at their
// zero value are reset. Callers that want to change part of a record must
// read it, merge, and write the whole record back.
type DailyStore[T any, PT interface {
	*T
	models.DailyRecord
}] struct {
	db   *gorm.DB
	days DayClock
}

type (
	GratitudeStore = DailyStore[models.Gratitude, *models.Gratitude]
	HappinessStore = DailyStore[models.Happiness, *models.Happiness]
	WellnessStore  = DailyStore[models.Wellness, *models.Wellness]
)

func NewDailyStore[T any, PT interface {
	*T
	models.DailyRecord
}](db *gorm.DB, days DayClock) *DailyStore[T, PT] {
	return &DailyStore[T, PT]{db: db, days: days}
}

// GetByDay returns nil, nil when the owner has no record for that day.
func (s *DailyStore[T, PT]) GetByDay(ctx context.Context, owner string, day time.Time) (*T, error) {
	start := s.days.Start(day)

	var rec T
	err := s.db.WithContext(ctx).
		Where("owner = ? AND day = ?", owner, start).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internal("get by day", err)
	}
	return &rec, nil
}

// UpsertByDay creates or fully replaces the (owner, day) record in a single
// statement. The unique (owner, day) index makes concurrent saves last-writer-wins.
func (s *DailyStore[T, PT]) UpsertByDay(ctx context.Context, owner string, day time.Time, rec *T) (*T, error) {
	start := s.days.Start(day)

	row := *rec
	p := PT(&row)
	p.SetKey(owner, start)

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner"}, {Name: "day"}},
			UpdateAll: true,
		}).
		Create(p).Error
	if err != nil {
		return nil, internal("upsert by day", err)
	}

	saved, err := s.GetByDay(ctx, owner, start)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, internal("upsert by day", fmt.Errorf("record for %s vanished after save", start.Format(models.DayLayout)))
	}
	return saved, nil
}

// QueryRange returns the owner's records with from <= day <= to, both bounds
// taken as whole days.
func (s *DailyStore[T, PT]) QueryRange(ctx context.Context, owner string, from, to time.Time, order Order) ([]T, error) {
	dir := "day DESC"
	if order == Ascending {
		dir = "day ASC"
	}

	var rows []T
	if err := s.db.WithContext(ctx).
		Where("owner = ? AND day BETWEEN ? AND ?", owner, s.days.Start(from), s.days.End(to)).
		Order(dir).
		Find(&rows).Error; err != nil {
		return nil, internal("query range", err)
	}
	return rows, nil
}

// Recent returns the newest limit records, newest first.
func (s *DailyStore[T, PT]) Recent(ctx context.Context, owner string, limit int) ([]T, error) {
	var rows []T
	if err := s.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("day DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, internal("recent", err)
	}
	return rows, nil
}

// DeleteByDay removes the record for that exact day. Deleting an absent
// record is not an error; the bool reports whether a row went away.
func (s *DailyStore[T, PT]) DeleteByDay(ctx context.Context, owner string, day time.Time) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("owner = ? AND day = ?", owner, s.days.Start(day)).
		Delete(PT(new(T)))
	if res.Error != nil {
		return false, internal("delete by day", res.Error)
	}
	return res.RowsAffected > 0, nil
}
