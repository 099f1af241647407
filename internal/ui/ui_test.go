package ui

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{Out: &buf}

	l.Debugf("hidden %d\n", 1)
	l.Infof("pages: %d\n", 2)
	l.Errorf("boom\n")
	assert.Equal(t, "[INFO] pages: 2\n[ERROR] boom\n", buf.String())

	buf.Reset()
	l.Debug = true
	l.Debugf("shown\n")
	assert.Equal(t, "[DEBUG] shown\n", buf.String())
}

func TestPageProgressDisabledRecordsStats(t *testing.T) {
	stats := &Stats{}
	pp := NewPageProgress(io.Discard, 5, stats, false)

	pp.PageFetched(1, "https://example.com/", 3, 100)
	pp.PageFetched(2, "https://example.com/2", 4, 50)
	pp.Done(2)
	pp.Close()

	assert.EqualValues(t, 2, stats.Pages.Load())
	assert.EqualValues(t, 7, stats.Titles.Load())
	assert.EqualValues(t, 150, stats.Bytes.Load())
}

func TestPageProgressEnabled(t *testing.T) {
	var buf bytes.Buffer
	stats := &Stats{}
	pp := NewPageProgress(&buf, 3, stats, true)

	pp.PageFetched(1, "https://example.com/", 2, 10)
	pp.Done(1)
	pp.Close()

	assert.EqualValues(t, 1, stats.Pages.Load())
}

func TestPageProgressAbortedRunDoesNotBlock(t *testing.T) {
	pp := NewPageProgress(io.Discard, 3, &Stats{}, true)
	pp.PageFetched(1, "https://example.com/", 2, 10)
	pp.Close()
}

func TestStatsSummary(t *testing.T) {
	s := &Stats{}
	s.Pages.Store(2)
	s.Titles.Store(51)
	s.Bytes.Store(3 << 10)

	assert.Equal(t, "Pages: 2, Titles: 51, Data: 3.00 KB, Time: 1.5s", s.Summary(1500*time.Millisecond))
}
