package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestDbRow_Filename(t *testing.T) {
	r := dbRow{
		startMoment:       time.Date(2025, 1, 31, 23, 5, 9, 0, time.UTC),
		simulationVersion: 1,
		inputVersion:      2,
	}
	assert.Equal(t, "20250131-230509.bintetris-1-2", r.Filename())
}
