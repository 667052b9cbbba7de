package testutils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUUID_TestModeIsSequential(t *testing.T) {
	ResetTestCounters()

	assert.Equal(t, "00000001-0000-4000-8000-000000000001", GenerateUUID(true))
	assert.Equal(t, "00000002-0000-4000-8000-000000000002", GenerateUUID(true))

	_, err := uuid.Parse(GenerateUUID(true))
	assert.NoError(t, err)
}

func TestGenerateUUID_ProductionIsRandom(t *testing.T) {
	a := GenerateUUID(false)
	b := GenerateUUID(false)

	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	require.NoError(t, err)
}

func TestGetCurrentTime_TestModeIncrements(t *testing.T) {
	ResetTestCounters()

	first := GetCurrentTime(true)
	second := Clock(true)()

	assert.Equal(t, BaseTime.Add(time.Second), first)
	assert.Equal(t, time.Second, second.Sub(first))
}

func TestIDGenerator(t *testing.T) {
	ResetTestCounters()

	next := IDGenerator(true)
	assert.Equal(t, "00000001-0000-4000-8000-000000000001", next())
}
