package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetup_Development(t *testing.T) {
	Setup("development")

	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	_, ok := Log.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}

func TestSetup_Production(t *testing.T) {
	Setup("production")

	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
	_, ok := Log.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}

func TestInit_InvalidLevelFallsBackToInfo(t *testing.T) {
	Init("verbose")
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}
