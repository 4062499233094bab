package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"gotest.tools/assert"
)

func TestSetup_BadLevel(t *testing.T) {
	err := Setup(&Settings{Level: "loud"})
	assert.ErrorContains(t, err, "parse log level")
}

func TestSetup_Dir(t *testing.T) {
	defer SetOutput(&bytes.Buffer{})
	err := Setup(&Settings{Path: t.TempDir(), Level: "debug"})
	assert.NilError(t, err)
	assert.Equal(t, logger.GetLevel(), logrus.DebugLevel)
}

func TestInfo_FileField(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(logrus.InfoLevel)
	Infof("hello %d", 1)
	Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, len(lines), 1)
	entry := make(map[string]interface{})
	assert.NilError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, entry["msg"], "hello 1")
	file, _ := entry["file"].(string)
	assert.Assert(t, strings.Contains(file, "logger_test.go:"), file)
}
