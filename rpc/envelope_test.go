package rpc

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestNewRequestOptions(t *testing.T) {
	req := NewRequest(MethodTorrentGet,
		WithArguments(map[string]any{"fields": []string{"id", "name"}}),
		WithArgument("ids", "recently-active"),
		WithTag("tag-1"),
	)

	if req.Method != MethodTorrentGet {
		t.Errorf("Expected method %q, got %q", MethodTorrentGet, req.Method)
	}
	if req.Tag != "tag-1" {
		t.Errorf("Expected tag tag-1, got %q", req.Tag)
	}
	if req.Arguments["ids"] != "recently-active" {
		t.Errorf("Expected ids argument, got %v", req.Arguments["ids"])
	}
	if _, ok := req.Arguments["fields"]; !ok {
		t.Error("Expected fields argument to be set")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "method only",
			req:  NewRequest(MethodSessionGet),
		},
		{
			name: "arguments",
			req: NewRequest(MethodTorrentRemove, WithArguments(map[string]any{
				"ids":               []any{float64(1), float64(2)},
				"delete-local-data": true,
			})),
		},
		{
			name: "arguments and tag",
			req: NewRequest(MethodTorrentAdd,
				WithArgument("filename", "magnet:?xt=urn:btih:abc"),
				WithTag("correlate-me"),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := Encode(tt.req)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			var decoded Request
			if err := json.Unmarshal(payload, &decoded); err != nil {
				t.Fatalf("Payload is not valid JSON: %v", err)
			}

			if decoded.Method != tt.req.Method {
				t.Errorf("Expected method %q, got %q", tt.req.Method, decoded.Method)
			}
			if decoded.Tag != tt.req.Tag {
				t.Errorf("Expected tag %q, got %q", tt.req.Tag, decoded.Tag)
			}
			if !reflect.DeepEqual(decoded.Arguments, tt.req.Arguments) {
				t.Errorf("Expected arguments %v, got %v", tt.req.Arguments, decoded.Arguments)
			}
		})
	}
}

func TestEncodeOmitsAbsentFields(t *testing.T) {
	payload, err := Encode(NewRequest(MethodSessionGet))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		t.Fatalf("Payload is not valid JSON: %v", err)
	}

	if _, ok := raw["arguments"]; ok {
		t.Error("Expected arguments key to be omitted")
	}
	if _, ok := raw["tag"]; ok {
		t.Error("Expected tag key to be omitted")
	}
	if raw["method"] != MethodSessionGet {
		t.Errorf("Expected method %q, got %v", MethodSessionGet, raw["method"])
	}
}

func TestDecodeSuccess(t *testing.T) {
	resp, err := Decode([]byte(`{"result":"success","arguments":{"torrents":[]},"tag":"t1"}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if !resp.OK() {
		t.Error("Expected OK response")
	}
	if resp.Tag != "t1" {
		t.Errorf("Expected tag t1, got %q", resp.Tag)
	}
	if _, ok := resp.Arguments["torrents"]; !ok {
		t.Error("Expected torrents key in arguments")
	}
}

func TestDecodeFailureResult(t *testing.T) {
	resp, err := Decode([]byte(`{"result":"duplicate torrent"}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if resp.OK() {
		t.Error("Expected non-OK response")
	}
	if resp.Result != "duplicate torrent" {
		t.Errorf("Expected raw result string, got %q", resp.Result)
	}
}

func TestDecodeMissingResult(t *testing.T) {
	_, err := Decode([]byte(`{"arguments":{}}`))
	if !errors.Is(err, ErrMissingResult) {
		t.Errorf("Expected ErrMissingResult, got %v", err)
	}
}

func TestDecodeNonStringResult(t *testing.T) {
	if _, err := Decode([]byte(`{"result":42}`)); err == nil {
		t.Error("Expected error for numeric result")
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	if _, err := Decode([]byte(`not json`)); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}
