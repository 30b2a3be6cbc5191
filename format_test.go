package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"bytes", 512, "512 B"},
		{"kilobytes", 2048, "2.0 KB"},
		{"megabytes", 5 * 1024 * 1024, "5.0 MB"},
		{"gigabytes", 3 * 1024 * 1024 * 1024, "3.0 GB"},
		{"terabytes", 2 * 1024 * 1024 * 1024 * 1024, "2.0 TB"},
		{"zero", 0, "0 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatSize(tt.bytes))
		})
	}
}

func TestFormatTime(t *testing.T) {
	now := time.Now()

	sameYear := time.Date(now.Year(), time.March, 5, 14, 30, 0, 0, time.Local)
	assert.Equal(t, "Mar  5 14:30", formatTime(sameYear))

	otherYear := time.Date(2019, time.March, 5, 14, 30, 0, 0, time.Local)
	assert.Equal(t, "Mar  5  2019", formatTime(otherYear))
}

func TestNodeTypeString(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "file"},
		{1, "folder"},
		{2, "root"},
		{3, "inbox"},
		{4, "trash"},
		{9, "type9"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, nodeTypeString(tt.code))
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer

	printTable(&buf, []string{"HANDLE", "SIZE"}, [][]string{
		{"n1", "1.0 KB"},
		{"longer-handle", "2 B"},
	})

	want := "HANDLE         SIZE\n" +
		"n1             1.0 KB\n" +
		"longer-handle  2 B\n"
	assert.Equal(t, want, buf.String())
}
