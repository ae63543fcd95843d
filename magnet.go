package transmission

import (
	"encoding/base64"
	"net/url"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ParseMagnetLink extracts information from a magnet link. AddTorrent uses
// it to reject malformed magnet filenames before hitting the daemon.
func ParseMagnetLink(magnetURI string) (*MagnetLink, error) {
	if !strings.HasPrefix(magnetURI, "magnet:?") {
		return nil, errors.New("invalid magnet link format")
	}

	// Remove the "magnet:?" prefix and parse the URL
	queryString := strings.TrimPrefix(magnetURI, "magnet:?")
	values, err := url.ParseQuery(queryString)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse magnet link query")
	}

	magnet := &MagnetLink{}

	// Extract the hash (btih)
	if hash := values.Get("xt"); hash != "" {
		magnet.Hash = strings.TrimPrefix(hash, "urn:btih:")
	}

	// Extract the display name (dn)
	magnet.DisplayName = values.Get("dn")

	// Extract the trackers (tr)
	magnet.Trackers = values["tr"]

	// Extract other optional fields
	magnet.ExactLength = values.Get("xl")
	magnet.ExactSource = values.Get("xs")
	magnet.Keywords = values.Get("kt")
	magnet.AcceptableSource = values.Get("as")

	return magnet, nil
}

// MetaInfoFromFile reads a local .torrent file and encodes it for the
// metainfo argument of AddTorrent.
func MetaInfoFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to read torrent file")
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
