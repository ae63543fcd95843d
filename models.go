package transmission

import (
	"net/http"
	"sync"
	"time"
)

// Defaults applied by New when the corresponding Config field is zero.
const (
	DefaultBaseURL        = "http://localhost:9091/transmission/rpc"
	DefaultRequestTimeout = 30 * time.Second
)

// SessionHeader carries the session identifier on requests and the
// replacement identifier on 409 responses.
const SessionHeader = "X-Transmission-Session-Id"

// Client talks to a Transmission daemon over its RPC endpoint. It is safe
// for concurrent use; the session identifier is shared by all calls.
type Client struct {
	config   Config
	client   *http.Client
	endpoint string

	sessionMu sync.Mutex
	sessionID string
}

// Config contains runtime client settings.
type Config struct {
	// BaseURL is the daemon's RPC endpoint. Defaults to DefaultBaseURL.
	BaseURL string

	// ProxyURLPrefix, when set, is prepended to BaseURL so requests can be
	// routed through a forwarding proxy.
	ProxyURLPrefix string

	// Username and Password enable HTTP basic auth when either is set.
	Username string
	Password string

	// RequestTimeout bounds each HTTP call. Defaults to DefaultRequestTimeout.
	// Ignored when HTTPClient is provided.
	RequestTimeout time.Duration

	// Verbose logs each call and session-identifier rotation.
	Verbose bool

	// TagRequests attaches a generated correlation tag to every request and
	// logs (under Verbose) when the echo does not match.
	TagRequests bool

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// AddTorrentOptions describes a torrent-add call. At least one of Filename
// and MetaInfo is required.
type AddTorrentOptions struct {
	// Filename is a magnet URI, an URL, or a path readable by the daemon.
	Filename string

	// MetaInfo is base64-encoded .torrent content. See MetaInfoFromFile.
	MetaInfo string

	// DownloadDir overrides the daemon's default download directory.
	DownloadDir string

	// Cookies holds "name=value; name=value" pairs sent when the daemon
	// fetches Filename over HTTP.
	Cookies string

	// Paused adds the torrent without starting it.
	Paused bool
}

// MagnetLink holds the fields extracted from a magnet URI.
type MagnetLink struct {
	Hash             string
	DisplayName      string
	Trackers         []string
	ExactLength      string
	ExactSource      string
	Keywords         string
	AcceptableSource string
}
