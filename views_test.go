package transmission

import (
	"testing"
)

func TestStatusDescription(t *testing.T) {
	tests := []struct {
		name     string
		errno    int64
		status   int64
		expected string
	}{
		{"downloading", 0, StatusDownloading, "Downloading"},
		{"stopped", 0, StatusStopped, "Stopped"},
		{"check waiting", 0, StatusCheckWaiting, "Check waiting"},
		{"checking", 0, StatusChecking, "Checking"},
		{"download waiting", 0, StatusDownloadWaiting, "Download waiting"},
		{"seed waiting", 0, StatusSeedWaiting, "Seed waiting"},
		{"seeding", 0, StatusSeeding, "Seeding"},
		{"error overrides status", 7, StatusDownloading, "Error"},
		{"error overrides stopped", 3, StatusStopped, "Error"},
		{"unrecognized status", 0, 99, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			torrent := Torrent{
				FieldError:  float64(tt.errno),
				FieldStatus: float64(tt.status),
			}
			if got := torrent.StatusDescription(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatByteCount(t *testing.T) {
	tests := []struct {
		n        int64
		decimals int
		expected string
	}{
		{0, 2, "0 o"},
		{500, 2, "500 o"},
		{999, 2, "999 o"},
		{1500, 2, "1.50 Ko"},
		{1500, 1, "1.5 Ko"},
		{2000000, 2, "2.00 Mo"},
		{3000000000, 2, "3.00 Go"},
		{1234567, 0, "1 Mo"},
		{1500, -3, "2 Ko"},
	}

	for _, tt := range tests {
		if got := FormatByteCount(tt.n, tt.decimals); got != tt.expected {
			t.Errorf("FormatByteCount(%d, %d): expected %q, got %q", tt.n, tt.decimals, tt.expected, got)
		}
	}
}

func TestPercentScaling(t *testing.T) {
	torrent := Torrent{
		FieldPercentDone:             0.5,
		FieldMetadataPercentComplete: 1.0,
	}

	if got := torrent.PercentDone(); got != 50.0 {
		t.Errorf("Expected 50.0, got %v", got)
	}
	if got := torrent.MetadataPercentComplete(); got != 100.0 {
		t.Errorf("Expected 100.0, got %v", got)
	}
	if !torrent.MetadataFinished() {
		t.Error("Expected metadata to be finished at 1.0")
	}

	partial := Torrent{FieldMetadataPercentComplete: 0.25}
	if partial.MetadataFinished() {
		t.Error("Expected metadata not finished at 0.25")
	}
}

func TestTorrentAccessors(t *testing.T) {
	torrent := Torrent{
		FieldID:             float64(42),
		FieldName:           "debian.iso",
		FieldHashString:     "f00dfeed",
		FieldErrorString:    "tracker error",
		FieldDownloadDir:    "/data",
		FieldTotalSize:      float64(3000000000),
		FieldRateDownload:   float64(1500),
		FieldUploadRatio:    1.5,
		FieldIsFinished:     true,
		FieldPeersConnected: float64(8),
	}

	if torrent.ID() != 42 {
		t.Errorf("Expected id 42, got %d", torrent.ID())
	}
	if torrent.Name() != "debian.iso" {
		t.Errorf("Expected name, got %q", torrent.Name())
	}
	if torrent.HashString() != "f00dfeed" {
		t.Errorf("Expected hash, got %q", torrent.HashString())
	}
	if torrent.ErrorString() != "tracker error" {
		t.Errorf("Expected error string, got %q", torrent.ErrorString())
	}
	if torrent.DownloadDir() != "/data" {
		t.Errorf("Expected download dir, got %q", torrent.DownloadDir())
	}
	if torrent.UploadRatio() != 1.5 {
		t.Errorf("Expected ratio 1.5, got %v", torrent.UploadRatio())
	}
	if !torrent.IsFinished() {
		t.Error("Expected finished torrent")
	}
	if torrent.PeersConnected() != 8 {
		t.Errorf("Expected 8 peers, got %d", torrent.PeersConnected())
	}

	if got := torrent.TotalSizeHuman(); got != "3.00 Go" {
		t.Errorf("Expected 3.00 Go, got %q", got)
	}
	if got := torrent.RateDownloadHuman(); got != "1.5 Ko" {
		t.Errorf("Expected 1.5 Ko, got %q", got)
	}
	if got := torrent.RateUploadHuman(); got != "0 o" {
		t.Errorf("Expected 0 o for absent rate, got %q", got)
	}

	// Absent fields read as zero values.
	if torrent.Status() != 0 || torrent.ETA() != 0 || torrent.AddedDate() != 0 {
		t.Error("Expected absent numeric fields to read as zero")
	}

	// Raw escape hatch.
	if torrent.Get(FieldName) != "debian.iso" {
		t.Errorf("Expected raw value, got %v", torrent.Get(FieldName))
	}
}

func TestViewConversionTolerance(t *testing.T) {
	// Values may arrive as float64 (encoding/json), or as native ints when a
	// view is built by hand.
	torrent := Torrent{
		FieldID:           42,
		FieldTotalSize:    int64(1000),
		FieldUploadRatio:  int64(2),
		FieldRateDownload: 3,
	}

	if torrent.ID() != 42 {
		t.Errorf("Expected id 42 from int, got %d", torrent.ID())
	}
	if torrent.TotalSize() != 1000 {
		t.Errorf("Expected size 1000 from int64, got %d", torrent.TotalSize())
	}
	if torrent.UploadRatio() != 2.0 {
		t.Errorf("Expected ratio 2.0 from int64, got %v", torrent.UploadRatio())
	}
	if torrent.RateDownload() != 3 {
		t.Errorf("Expected rate 3 from int, got %d", torrent.RateDownload())
	}
}

func TestIDList(t *testing.T) {
	ids := idList([]any{float64(1), float64(2), "junk", float64(3)})
	if len(ids) != 3 || ids[0] != 1 || ids[2] != 3 {
		t.Errorf("Expected [1 2 3], got %v", ids)
	}

	if got := idList(nil); len(got) != 0 {
		t.Errorf("Expected empty list, got %v", got)
	}
}

func TestTorrentList(t *testing.T) {
	torrents := torrentList(map[string]any{
		"torrents": []any{
			map[string]any{"id": float64(1)},
			"junk",
			map[string]any{"id": float64(2)},
		},
	})

	if len(torrents) != 2 {
		t.Fatalf("Expected 2 torrents, got %d", len(torrents))
	}
	if torrents[1].ID() != 2 {
		t.Errorf("Expected id 2, got %d", torrents[1].ID())
	}

	if got := torrentList(map[string]any{}); len(got) != 0 {
		t.Errorf("Expected empty list, got %v", got)
	}
}
