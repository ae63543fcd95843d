package transmission

// Torrent status codes as reported by the daemon.
const (
	StatusStopped         = 0
	StatusCheckWaiting    = 1
	StatusChecking        = 2
	StatusDownloadWaiting = 3
	StatusDownloading     = 4
	StatusSeedWaiting     = 5
	StatusSeeding         = 6
)

// Torrent is a read-only view over a torrent-get result entry. It only
// exposes the fields that were requested; absent fields read as zero
// values. The view is valid for the lifetime of the response it came from.
type Torrent map[string]any

// TorrentLight is the reduced view the daemon returns from torrent-add:
// id, name and hash of the created or conflicting torrent.
type TorrentLight map[string]any

// SessionSettings is a read-only view over a session-get result.
type SessionSettings map[string]any

// Get returns the raw value of a field, for fields without a typed accessor.
func (t Torrent) Get(field string) any { return t[field] }

func (t Torrent) ID() int64 { return viewInt(t, FieldID) }
func (t Torrent) Name() string { return viewString(t, FieldName) }
func (t Torrent) HashString() string { return viewString(t, FieldHashString) }
func (t Torrent) Status() int64 { return viewInt(t, FieldStatus) }
func (t Torrent) ErrorNumber() int64 { return viewInt(t, FieldError) }
func (t Torrent) ErrorString() string { return viewString(t, FieldErrorString) }
func (t Torrent) DownloadDir() string { return viewString(t, FieldDownloadDir) }
func (t Torrent) TotalSize() int64 { return viewInt(t, FieldTotalSize) }
func (t Torrent) SizeWhenDone() int64 { return viewInt(t, FieldSizeWhenDone) }
func (t Torrent) LeftUntilDone() int64 { return viewInt(t, FieldLeftUntilDone) }
func (t Torrent) DownloadedEver() int64 { return viewInt(t, FieldDownloadedEver) }
func (t Torrent) UploadedEver() int64 { return viewInt(t, FieldUploadedEver) }
func (t Torrent) RateDownload() int64 { return viewInt(t, FieldRateDownload) }
func (t Torrent) RateUpload() int64 { return viewInt(t, FieldRateUpload) }
func (t Torrent) UploadRatio() float64 { return viewFloat(t, FieldUploadRatio) }
func (t Torrent) ETA() int64 { return viewInt(t, FieldEta) }
func (t Torrent) AddedDate() int64 { return viewInt(t, FieldAddedDate) }
func (t Torrent) IsFinished() bool { return viewBool(t, FieldIsFinished) }
func (t Torrent) PeersConnected() int64 { return viewInt(t, FieldPeersConnected) }

// PercentDone returns the completion of the selected data scaled to 0-100.
func (t Torrent) PercentDone() float64 {
	return viewFloat(t, FieldPercentDone) * 100
}

// MetadataPercentComplete returns metadata completion scaled to 0-100.
func (t Torrent) MetadataPercentComplete() float64 {
	return viewFloat(t, FieldMetadataPercentComplete) * 100
}

// MetadataFinished reports whether the torrent's metadata is fully
// downloaded (always true for torrents added from a .torrent file).
func (t Torrent) MetadataFinished() bool {
	return viewFloat(t, FieldMetadataPercentComplete) == 1.0
}

// StatusDescription maps the numeric status to a display string. A nonzero
// error code overrides the status.
func (t Torrent) StatusDescription() string {
	return statusText(t.Status(), t.ErrorNumber())
}

// TotalSizeHuman returns the torrent size as a scaled byte count.
func (t Torrent) TotalSizeHuman() string {
	return FormatByteCount(t.TotalSize(), 2)
}

// SizeWhenDoneHuman returns the selected size as a scaled byte count.
func (t Torrent) SizeWhenDoneHuman() string {
	return FormatByteCount(t.SizeWhenDone(), 2)
}

// DownloadedEverHuman returns the downloaded total as a scaled byte count.
func (t Torrent) DownloadedEverHuman() string {
	return FormatByteCount(t.DownloadedEver(), 2)
}

// UploadedEverHuman returns the uploaded total as a scaled byte count.
func (t Torrent) UploadedEverHuman() string {
	return FormatByteCount(t.UploadedEver(), 2)
}

// RateDownloadHuman returns the download rate as a scaled byte count.
// Rates use a single decimal place.
func (t Torrent) RateDownloadHuman() string {
	return FormatByteCount(t.RateDownload(), 1)
}

// RateUploadHuman returns the upload rate as a scaled byte count.
func (t Torrent) RateUploadHuman() string {
	return FormatByteCount(t.RateUpload(), 1)
}

// Get returns the raw value of a field.
func (t TorrentLight) Get(field string) any { return t[field] }

func (t TorrentLight) ID() int64 { return viewInt(t, FieldID) }
func (t TorrentLight) Name() string { return viewString(t, FieldName) }
func (t TorrentLight) HashString() string { return viewString(t, FieldHashString) }

// Get returns the raw value of a field.
func (s SessionSettings) Get(field string) any { return s[field] }

func (s SessionSettings) DownloadDir() string { return viewString(s, SessionFieldDownloadDir) }
func (s SessionSettings) Version() string { return viewString(s, SessionFieldVersion) }
func (s SessionSettings) RPCVersion() int64 { return viewInt(s, SessionFieldRPCVersion) }
func (s SessionSettings) PeerPort() int64 { return viewInt(s, SessionFieldPeerPort) }
func (s SessionSettings) PeerLimitGlobal() int64 { return viewInt(s, SessionFieldPeerLimitGlobal) }
func (s SessionSettings) SpeedLimitDown() int64 { return viewInt(s, SessionFieldSpeedLimitDown) }
func (s SessionSettings) SpeedLimitUp() int64 { return viewInt(s, SessionFieldSpeedLimitUp) }
func (s SessionSettings) AltSpeedEnabled() bool { return viewBool(s, SessionFieldAltSpeedEnabled) }
func (s SessionSettings) StartAddedTorrents() bool { return viewBool(s, SessionFieldStartAddedTorrents) }
func (s SessionSettings) Encryption() string { return viewString(s, SessionFieldEncryption) }

// SpeedLimitDownEnabled reports whether the global download limit applies.
func (s SessionSettings) SpeedLimitDownEnabled() bool {
	return viewBool(s, SessionFieldSpeedLimitDownEnabled)
}

// SpeedLimitUpEnabled reports whether the global upload limit applies.
func (s SessionSettings) SpeedLimitUpEnabled() bool {
	return viewBool(s, SessionFieldSpeedLimitUpEnabled)
}

func statusText(status, errno int64) string {
	if errno != 0 {
		return "Error"
	}
	switch status {
	case StatusStopped:
		return "Stopped"
	case StatusCheckWaiting:
		return "Check waiting"
	case StatusChecking:
		return "Checking"
	case StatusDownloadWaiting:
		return "Download waiting"
	case StatusDownloading:
		return "Downloading"
	case StatusSeedWaiting:
		return "Seed waiting"
	case StatusSeeding:
		return "Seeding"
	}
	return "Unknown"
}

// torrentList extracts the torrents array from a torrent-get result.
func torrentList(args map[string]any) []Torrent {
	raw, _ := args["torrents"].([]any)
	out := make([]Torrent, 0, len(raw))
	for _, entry := range raw {
		if fields, ok := entry.(map[string]any); ok {
			out = append(out, Torrent(fields))
		}
	}
	return out
}

// idList extracts an id array, tolerating the float64 values encoding/json
// produces for untyped numbers.
func idList(value any) []int64 {
	raw, _ := value.([]any)
	out := make([]int64, 0, len(raw))
	for _, entry := range raw {
		switch id := entry.(type) {
		case float64:
			out = append(out, int64(id))
		case int64:
			out = append(out, id)
		case int:
			out = append(out, int64(id))
		}
	}
	return out
}

func viewString(m map[string]any, field string) string {
	s, _ := m[field].(string)
	return s
}

func viewInt(m map[string]any, field string) int64 {
	switch v := m[field].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}

func viewFloat(m map[string]any, field string) float64 {
	switch v := m[field].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}

func viewBool(m map[string]any, field string) bool {
	b, _ := m[field].(bool)
	return b
}
