package appointment

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsOverlapViolation(t *testing.T) {
	t.Run("exclusion violation on our constraint", func(t *testing.T) {
		err := &pq.Error{Code: "23P01", Constraint: overlapConstraint}
		assert.True(t, isOverlapViolation(err))
	})

	t.Run("unique violation on our constraint", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Constraint: overlapConstraint}
		assert.True(t, isOverlapViolation(err))
	})

	t.Run("foreign integrity error is not a slot conflict", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Constraint: "users_phone_key"}
		assert.False(t, isOverlapViolation(err))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.False(t, isOverlapViolation(errors.New("boom")))
	})
}

func TestIsSerializationFailure(t *testing.T) {
	serErr := &pq.Error{Code: "40001"}

	assert.True(t, IsSerializationFailure(serErr))
	assert.True(t, IsSerializationFailure(fmt.Errorf("tx: %w", serErr)))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23P01"}))
	assert.False(t, IsSerializationFailure(errors.New("boom")))
}

func TestIsWriteConflict(t *testing.T) {
	t.Run("overlap constraint", func(t *testing.T) {
		assert.True(t, isWriteConflict(&pq.Error{Code: "23P01", Constraint: overlapConstraint}))
	})

	// 40001 может подняться прямо на statement'е внутри сериализуемой
	// транзакции, не дожидаясь commit'а - это тоже проигранная гонка
	t.Run("statement-level serialization failure", func(t *testing.T) {
		assert.True(t, isWriteConflict(&pq.Error{Code: "40001"}))
	})

	t.Run("unrelated driver error", func(t *testing.T) {
		assert.False(t, isWriteConflict(&pq.Error{Code: "42P01"}))
	})
}
