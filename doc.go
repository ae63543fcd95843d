/*
Package transmission provides a client for the Transmission RPC protocol.

Highlights:
  - Transparent X-Transmission-Session-Id handshake: a 409 rejection is
    recovered and the request resent exactly once, without the caller noticing
  - One typed method per RPC call (torrent-get/add/remove/start/stop/...,
    session-get/set) with client-side argument validation
  - Read-only views over the requested fields with derived helpers
    (status description, scaled percentages, human-readable sizes)
  - Safe for concurrent use from multiple goroutines

Quick start:

	import (
	    "context"
	    "log"

	    transmission "github.com/jfxdev/go-transmission"
	)

	func main() {
	    client, err := transmission.New(transmission.Config{
	        BaseURL: "http://localhost:9091/transmission/rpc",
	    })
	    if err != nil {
	        log.Fatal(err)
	    }
	    defer client.Close()

	    torrents, err := client.ListTorrents(context.Background(), nil)
	    if err != nil {
	        log.Fatal(err)
	    }
	    for _, t := range torrents {
	        log.Printf("%s: %s (%.1f%%)", t.Name(), t.StatusDescription(), t.PercentDone())
	    }
	}
*/
package transmission
