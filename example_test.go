package transmission_test

import (
	"context"
	"fmt"
	"os"

	transmission "github.com/jfxdev/go-transmission"
)

func ExampleClient_ListTorrents() {
	if os.Getenv("TRANSMISSION_EXAMPLE_LIVE") == "" {
		fmt.Println("skipped")
		// Output: skipped
		return
	}

	client, _ := transmission.New(transmission.Config{})
	defer client.Close()

	torrents, _ := client.ListTorrents(context.Background(), nil)
	for _, t := range torrents {
		fmt.Printf("%s: %s %s/s\n", t.Name(), t.StatusDescription(), t.RateDownloadHuman())
	}
}

func ExampleClient_AddTorrent() {
	if os.Getenv("TRANSMISSION_EXAMPLE_LIVE") == "" {
		fmt.Println("skipped")
		return
	}

	client, _ := transmission.New(transmission.Config{})
	defer client.Close()

	light, err := client.AddTorrent(context.Background(), transmission.AddTorrentOptions{
		Filename: "magnet:?xt=urn:btih:deadbeef&dn=ubuntu.iso",
		Paused:   true,
	})
	if err != nil {
		// A duplicate carries the conflicting torrent for inspection.
		fmt.Println(err)
		return
	}
	fmt.Printf("added %d: %s\n", light.ID(), light.Name())
	// Output: skipped
}

func ExampleFormatByteCount() {
	fmt.Println(transmission.FormatByteCount(500, 2))
	fmt.Println(transmission.FormatByteCount(1500, 2))
	fmt.Println(transmission.FormatByteCount(2000000, 2))
	fmt.Println(transmission.FormatByteCount(3000000000, 2))
	// Output:
	// 500 o
	// 1.50 Ko
	// 2.00 Mo
	// 3.00 Go
}
