package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := New(Options{Level: "debug", Format: "json"}, &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	log.WithField("level_index", 2).Debug("descend")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("not json: %q", buf.String())
	}
	if entry["msg"] != "descend" || entry["level_index"] != float64(2) {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestBadLevelFallsBackToInfo(t *testing.T) {
	log, _, err := New(Options{Level: "chatty"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level %v", log.GetLevel())
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	log, closer, err := New(Options{Level: "info", File: path}, nil)
	if err != nil {
		t.Fatal(err)
	}
	log.Info("run started")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "run started") {
		t.Errorf("log file content %q", data)
	}
}
