package transmission

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/jfxdev/go-transmission/rpc"
)

// ListTorrents fetches the requested fields for every torrent the daemon
// tracks. An empty field list selects DefaultTorrentFields.
func (c *Client) ListTorrents(ctx context.Context, fields []string) ([]Torrent, error) {
	if len(fields) == 0 {
		fields = DefaultTorrentFields
	}

	req := c.newRequest(rpc.MethodTorrentGet, rpc.WithArgument("fields", fields))

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list torrents")
	}
	if !resp.OK() {
		return nil, newOperationError(req.Method, resp.Result, resp.Arguments)
	}

	return torrentList(resp.Arguments), nil
}

// ListRecentlyActive fetches torrents with recent activity plus the ids of
// torrents removed since the previous call.
func (c *Client) ListRecentlyActive(ctx context.Context, fields []string) ([]Torrent, []int64, error) {
	if len(fields) == 0 {
		fields = DefaultTorrentFields
	}

	req := c.newRequest(rpc.MethodTorrentGet, rpc.WithArguments(map[string]any{
		"fields": fields,
		"ids":    "recently-active",
	}))

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list recently active torrents")
	}
	if !resp.OK() {
		return nil, nil, newOperationError(req.Method, resp.Result, resp.Arguments)
	}

	return torrentList(resp.Arguments), idList(resp.Arguments["removed"]), nil
}

// AddTorrent adds a torrent from a magnet URI, an URL, a daemon-side path,
// or base64 metainfo content. On success it returns a light view of the
// created (or pre-existing) torrent; a rejected duplicate surfaces as a
// DuplicateTorrentError carrying the conflicting entry.
func (c *Client) AddTorrent(ctx context.Context, opts AddTorrentOptions) (TorrentLight, error) {
	if opts.Filename == "" && opts.MetaInfo == "" {
		return nil, errors.New("torrent-add requires Filename or MetaInfo")
	}
	if strings.HasPrefix(opts.Filename, "magnet:") {
		if _, err := ParseMagnetLink(opts.Filename); err != nil {
			return nil, errors.Wrap(err, "invalid magnet link")
		}
	}

	args := map[string]any{}
	if opts.Filename != "" {
		args["filename"] = opts.Filename
	}
	if opts.MetaInfo != "" {
		args["metainfo"] = opts.MetaInfo
	}
	if opts.DownloadDir != "" {
		args["download-dir"] = opts.DownloadDir
	}
	if opts.Cookies != "" {
		args["cookies"] = opts.Cookies
	}
	if opts.Paused {
		args["paused"] = true
	}

	req := c.newRequest(rpc.MethodTorrentAdd, rpc.WithArguments(args))

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add torrent")
	}

	if !resp.OK() {
		if dup, ok := resp.Arguments["torrent-duplicate"].(map[string]any); ok {
			return nil, &DuplicateTorrentError{Result: resp.Result, Torrent: TorrentLight(dup)}
		}
		return nil, newOperationError(req.Method, resp.Result, resp.Arguments)
	}

	if added, ok := resp.Arguments["torrent-added"].(map[string]any); ok {
		return TorrentLight(added), nil
	}
	// Older daemons report success for an already-known torrent and describe
	// it under torrent-duplicate instead.
	if dup, ok := resp.Arguments["torrent-duplicate"].(map[string]any); ok {
		return TorrentLight(dup), nil
	}

	return nil, &MalformedResponseError{Err: errors.New("torrent-add response describes no torrent")}
}

// RemoveTorrents removes the given torrents, optionally deleting their
// downloaded data.
func (c *Client) RemoveTorrents(ctx context.Context, ids []int64, deleteLocalData bool) error {
	if len(ids) == 0 {
		return errors.New("torrent-remove requires at least one id")
	}

	req := c.newRequest(rpc.MethodTorrentRemove, rpc.WithArguments(map[string]any{
		"ids":               ids,
		"delete-local-data": deleteLocalData,
	}))

	resp, err := c.do(ctx, req)
	if err != nil {
		return errors.Wrap(err, "failed to remove torrents")
	}
	if !resp.OK() {
		return newOperationError(req.Method, resp.Result, resp.Arguments)
	}

	return nil
}

// MoveTorrents points the given torrents at a new location. When move is
// true the daemon moves the data there; otherwise it looks for existing
// files at the new location.
func (c *Client) MoveTorrents(ctx context.Context, ids []int64, location string, move bool) error {
	if len(ids) == 0 {
		return errors.New("torrent-set-location requires at least one id")
	}
	if location == "" {
		return errors.New("torrent-set-location requires a location")
	}

	req := c.newRequest(rpc.MethodTorrentSetLocation, rpc.WithArguments(map[string]any{
		"ids":      ids,
		"location": location,
		"move":     move,
	}))

	resp, err := c.do(ctx, req)
	if err != nil {
		return errors.Wrap(err, "failed to move torrents")
	}
	if !resp.OK() {
		return newOperationError(req.Method, resp.Result, resp.Arguments)
	}

	return nil
}

// RenameTorrent renames a file or directory of a single torrent. path is
// the entry's current path relative to the torrent root; name is its new
// name.
func (c *Client) RenameTorrent(ctx context.Context, id int64, path, name string) error {
	if path == "" && name == "" {
		return errors.New("torrent-rename-path requires a path or a name")
	}

	args := map[string]any{"ids": []int64{id}}
	if path != "" {
		args["path"] = path
	}
	if name != "" {
		args["name"] = name
	}

	req := c.newRequest(rpc.MethodTorrentRenamePath, rpc.WithArguments(args))

	resp, err := c.do(ctx, req)
	if err != nil {
		return errors.Wrap(err, "failed to rename torrent")
	}
	if !resp.OK() {
		return newOperationError(req.Method, resp.Result, resp.Arguments)
	}

	return nil
}

// Reusable id-list action for the start/stop/verify family of methods.
func (c *Client) torrentAction(ctx context.Context, method string, ids []int64) error {
	if len(ids) == 0 {
		return errors.Errorf("%s requires at least one id", method)
	}

	req := c.newRequest(method, rpc.WithArgument("ids", ids))

	resp, err := c.do(ctx, req)
	if err != nil {
		return errors.Wrapf(err, "failed to call %s", method)
	}
	if !resp.OK() {
		return newOperationError(method, resp.Result, resp.Arguments)
	}

	return nil
}

// StartTorrents starts the given torrents, honoring the daemon's queue.
func (c *Client) StartTorrents(ctx context.Context, ids []int64) error {
	return c.torrentAction(ctx, rpc.MethodTorrentStart, ids)
}

// StartTorrentsNow starts the given torrents, bypassing the queue.
func (c *Client) StartTorrentsNow(ctx context.Context, ids []int64) error {
	return c.torrentAction(ctx, rpc.MethodTorrentStartNow, ids)
}

// StopTorrents stops the given torrents.
func (c *Client) StopTorrents(ctx context.Context, ids []int64) error {
	return c.torrentAction(ctx, rpc.MethodTorrentStop, ids)
}

// VerifyTorrents rechecks the local data of the given torrents.
func (c *Client) VerifyTorrents(ctx context.Context, ids []int64) error {
	return c.torrentAction(ctx, rpc.MethodTorrentVerify, ids)
}

// ReannounceTorrents asks the trackers of the given torrents for more peers.
func (c *Client) ReannounceTorrents(ctx context.Context, ids []int64) error {
	return c.torrentAction(ctx, rpc.MethodTorrentReannounce, ids)
}

// GetSession reads daemon-wide settings. An empty field list selects
// DefaultSessionFields.
func (c *Client) GetSession(ctx context.Context, fields []string) (SessionSettings, error) {
	if len(fields) == 0 {
		fields = DefaultSessionFields
	}

	req := c.newRequest(rpc.MethodSessionGet, rpc.WithArgument("fields", fields))

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session settings")
	}
	if !resp.OK() {
		return nil, newOperationError(req.Method, resp.Result, resp.Arguments)
	}

	return SessionSettings(resp.Arguments), nil
}

// SetSession applies daemon-wide settings.
func (c *Client) SetSession(ctx context.Context, fields map[string]any) error {
	if len(fields) == 0 {
		return errors.New("session-set requires at least one field")
	}

	req := c.newRequest(rpc.MethodSessionSet, rpc.WithArguments(fields))

	resp, err := c.do(ctx, req)
	if err != nil {
		return errors.Wrap(err, "failed to set session settings")
	}
	if !resp.OK() {
		return newOperationError(req.Method, resp.Result, resp.Arguments)
	}

	return nil
}
