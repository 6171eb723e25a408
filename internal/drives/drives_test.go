package drives

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSizeToGB(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"500G", 500},
		{"500GB", 500},
		{"1.8T", 1800},
		{"512M", 0.512},
		{"256K", 0.000256},
	}

	for _, tt := range tests {
		got := parseSizeToGB(tt.in)
		require.NotNil(t, got, "input %q", tt.in)
		assert.InDelta(t, tt.want, *got, 1e-9, "input %q", tt.in)
	}

	assert.Nil(t, parseSizeToGB(""))
	assert.Nil(t, parseSizeToGB("huge"))
}

func TestNewListEvent(t *testing.T) {
	ev := NewListEvent([]DriveInfo{{Path: "/dev/sda", DriveType: "disk", Description: "/dev/sda - disk 500G"}})

	data, err := json.Marshal(ev)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "drive_list", m["type"])
	assert.Len(t, m["drives"], 1)
}

func TestPrintHumanGroups(t *testing.T) {
	var buf bytes.Buffer
	PrintHuman(&buf, []DriveInfo{
		{Path: "/dev/sda", DriveType: "disk", Description: "/dev/sda - disk 500G"},
		{Path: "/dev/sda1", DriveType: "part", Description: "/dev/sda1 - part 499G"},
		{Path: `\\.\C:`, DriveType: "volume", Description: `\\.\C: - Logical Volume`},
		{Path: "/dev/loop0", DriveType: "loop", Description: "/dev/loop0 - loop 4G"},
	})

	out := buf.String()
	assert.Contains(t, out, "Physical Drives:")
	assert.Contains(t, out, "Partitions:")
	assert.Contains(t, out, "Volumes:")
	assert.Contains(t, out, "Other Devices:")
	assert.Contains(t, out, "/dev/sda1 - part 499G")
}

func TestPrintHumanEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintHuman(&buf, nil)
	assert.Contains(t, buf.String(), "No drives found")
}
