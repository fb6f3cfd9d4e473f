package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmarques2003/gradekeeper/internal/common"
	"github.com/dmarques2003/gradekeeper/internal/dbx"
	"github.com/dmarques2003/gradekeeper/internal/repositories/repomanager"
)

// teacherCodePrefix prefixes every teacher code; enrollment codes use the
// registration year as prefix.
const teacherCodePrefix = "PROF"

// CodeService allocates enrollment and teacher codes from monotonic
// per-prefix counters. Both methods must run on the registration
// transaction: the counter read locks its row, so concurrent registrations
// for the same prefix serialize and never see the same value.
type CodeService struct {
	repomanager repomanager.RepositoryManager
}

// NewCodeService constructs a CodeService.
func NewCodeService(m repomanager.RepositoryManager) *CodeService {
	return &CodeService{repomanager: m}
}

// NextEnrollmentCode returns the next enrollment code for year, e.g.
// "2025003". The numeric part is zero-padded to three digits and widens
// naturally past 999.
func (s *CodeService) NextEnrollmentCode(ctx context.Context, tx dbx.DBTX, year int) (string, error) {
	prefix := strconv.Itoa(year)
	next, err := s.next(ctx, tx, prefix, func(ctx context.Context) (string, error) {
		return s.repomanager.Students(tx).MaxCodeForPrefix(ctx, prefix)
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%03d", prefix, next), nil
}

// NextTeacherCode returns the next teacher code, e.g. "PROF002".
func (s *CodeService) NextTeacherCode(ctx context.Context, tx dbx.DBTX) (string, error) {
	next, err := s.next(ctx, tx, teacherCodePrefix, func(ctx context.Context) (string, error) {
		return s.repomanager.Teachers(tx).MaxCode(ctx)
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%03d", teacherCodePrefix, next), nil
}

// next increments the counter for prefix and returns the new value. When no
// counter row exists yet the counter is seeded from the numerically greatest
// legacy code reported by maxCode.
func (s *CodeService) next(ctx context.Context, tx dbx.DBTX, prefix string, maxCode func(ctx context.Context) (string, error)) (int64, error) {
	seq := s.repomanager.Sequences(tx)

	current, err := seq.Current(ctx, prefix)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return 0, err
		}
		current, err = seedFromLegacy(ctx, prefix, maxCode)
		if err != nil {
			return 0, err
		}
	}

	next := current + 1
	if err := seq.Set(ctx, prefix, next); err != nil {
		return 0, err
	}
	return next, nil
}

// seedFromLegacy derives the counter start from existing codes: the numeric
// suffix of the greatest code with the prefix, or zero when none exist.
func seedFromLegacy(ctx context.Context, prefix string, maxCode func(ctx context.Context) (string, error)) (int64, error) {
	code, err := maxCode(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	suffix := strings.TrimPrefix(code, prefix)
	n, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed code %q: %w", code, err)
	}
	return n, nil
}
