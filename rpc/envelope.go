package rpc

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Method names understood by the Transmission daemon.
const (
	MethodTorrentGet         = "torrent-get"
	MethodTorrentAdd         = "torrent-add"
	MethodTorrentRemove      = "torrent-remove"
	MethodTorrentSetLocation = "torrent-set-location"
	MethodTorrentRenamePath  = "torrent-rename-path"
	MethodTorrentStart       = "torrent-start"
	MethodTorrentStartNow    = "torrent-start-now"
	MethodTorrentStop        = "torrent-stop"
	MethodTorrentVerify      = "torrent-verify"
	MethodTorrentReannounce  = "torrent-reannounce"
	MethodSessionGet         = "session-get"
	MethodSessionSet         = "session-set"
)

// ResultSuccess is the result string the daemon uses for a successful call.
const ResultSuccess = "success"

// ErrMissingResult marks a response envelope without a result string.
var ErrMissingResult = errors.New("response envelope has no result field")

// Request is a single RPC call envelope. A Request is never mutated after
// construction; a resend transmits the same encoded value.
type Request struct {
	Method    string         `json:"method"`
	Arguments map[string]any `json:"arguments,omitempty"`
	Tag       string         `json:"tag,omitempty"`
}

// Response is the daemon's reply envelope. Result holds "success" or an
// error description; Arguments carries the method-specific payload.
type Response struct {
	Result    string
	Arguments map[string]any
	Tag       string
}

// OK reports whether the daemon accepted the call.
func (r *Response) OK() bool {
	return r.Result == ResultSuccess
}

// RequestOption customizes a Request under construction.
type RequestOption func(*Request)

// WithArguments sets the full argument map.
func WithArguments(args map[string]any) RequestOption {
	return func(r *Request) {
		if r.Arguments == nil {
			r.Arguments = make(map[string]any, len(args))
		}
		for k, v := range args {
			r.Arguments[k] = v
		}
	}
}

// WithArgument sets a single argument.
func WithArgument(key string, value any) RequestOption {
	return func(r *Request) {
		if r.Arguments == nil {
			r.Arguments = make(map[string]any)
		}
		r.Arguments[key] = value
	}
}

// WithTag sets a correlation tag, echoed back by the daemon.
func WithTag(tag string) RequestOption {
	return func(r *Request) {
		r.Tag = tag
	}
}

// NewRequest builds a Request for the given method.
func NewRequest(method string, opts ...RequestOption) *Request {
	req := &Request{Method: method}
	for _, opt := range opts {
		opt(req)
	}
	return req
}

// Encode serializes a Request to its wire form. Absent arguments and tag
// are omitted from the payload.
func Encode(req *Request) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "encoding request envelope")
	}
	return payload, nil
}

// Decode parses a response envelope. It fails when the payload is not a
// JSON object or when result is missing or not a string.
func Decode(payload []byte) (*Response, error) {
	var raw struct {
		Result    *string        `json:"result"`
		Arguments map[string]any `json:"arguments"`
		Tag       string         `json:"tag"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, errors.Wrap(err, "decoding response envelope")
	}
	if raw.Result == nil {
		return nil, ErrMissingResult
	}
	return &Response{
		Result:    *raw.Result,
		Arguments: raw.Arguments,
		Tag:       raw.Tag,
	}, nil
}
