package transmission

// Torrent field names accepted by torrent-get. Callers may also pass any
// field name the daemon understands; the constants cover the accessors on
// Torrent.
const (
	FieldID                      = "id"
	FieldName                    = "name"
	FieldHashString              = "hashString"
	FieldStatus                  = "status"
	FieldError                   = "error"
	FieldErrorString             = "errorString"
	FieldDownloadDir             = "downloadDir"
	FieldTotalSize               = "totalSize"
	FieldSizeWhenDone            = "sizeWhenDone"
	FieldLeftUntilDone           = "leftUntilDone"
	FieldDownloadedEver          = "downloadedEver"
	FieldUploadedEver            = "uploadedEver"
	FieldRateDownload            = "rateDownload"
	FieldRateUpload              = "rateUpload"
	FieldUploadRatio             = "uploadRatio"
	FieldEta                     = "eta"
	FieldPercentDone             = "percentDone"
	FieldMetadataPercentComplete = "metadataPercentComplete"
	FieldAddedDate               = "addedDate"
	FieldIsFinished              = "isFinished"
	FieldPeersConnected          = "peersConnected"
	FieldFiles                   = "files"
)

// Session field names accepted by session-get and session-set.
const (
	SessionFieldDownloadDir           = "download-dir"
	SessionFieldVersion               = "version"
	SessionFieldRPCVersion            = "rpc-version"
	SessionFieldPeerPort              = "peer-port"
	SessionFieldPeerLimitGlobal       = "peer-limit-global"
	SessionFieldSpeedLimitDown        = "speed-limit-down"
	SessionFieldSpeedLimitDownEnabled = "speed-limit-down-enabled"
	SessionFieldSpeedLimitUp          = "speed-limit-up"
	SessionFieldSpeedLimitUpEnabled   = "speed-limit-up-enabled"
	SessionFieldAltSpeedDown          = "alt-speed-down"
	SessionFieldAltSpeedUp            = "alt-speed-up"
	SessionFieldAltSpeedEnabled       = "alt-speed-enabled"
	SessionFieldStartAddedTorrents    = "start-added-torrents"
	SessionFieldEncryption            = "encryption"
)

// DefaultTorrentFields is the selection used when a listing call is given
// no explicit field list.
var DefaultTorrentFields = []string{
	FieldID,
	FieldName,
	FieldHashString,
	FieldStatus,
	FieldError,
	FieldErrorString,
	FieldDownloadDir,
	FieldTotalSize,
	FieldSizeWhenDone,
	FieldLeftUntilDone,
	FieldDownloadedEver,
	FieldUploadedEver,
	FieldRateDownload,
	FieldRateUpload,
	FieldUploadRatio,
	FieldEta,
	FieldPercentDone,
	FieldMetadataPercentComplete,
	FieldAddedDate,
	FieldIsFinished,
	FieldPeersConnected,
}

// LightTorrentFields matches the reduced view returned by torrent-add.
var LightTorrentFields = []string{
	FieldID,
	FieldName,
	FieldHashString,
}

// DefaultSessionFields is the selection used when GetSession is given no
// explicit field list.
var DefaultSessionFields = []string{
	SessionFieldDownloadDir,
	SessionFieldVersion,
	SessionFieldRPCVersion,
	SessionFieldPeerPort,
	SessionFieldPeerLimitGlobal,
	SessionFieldSpeedLimitDown,
	SessionFieldSpeedLimitDownEnabled,
	SessionFieldSpeedLimitUp,
	SessionFieldSpeedLimitUpEnabled,
	SessionFieldAltSpeedEnabled,
	SessionFieldStartAddedTorrents,
	SessionFieldEncryption,
}
