package qbittorrent

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTorrents(t *testing.T) {
	t.Run("decodes torrent list", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v2/torrents/info", r.URL.Path)
			w.Write([]byte(`[
				{"hash":"aaaa","name":"ubuntu.iso","state":"downloading","progress":0.42,"size":3654957056,"category":"linux"},
				{"hash":"bbbb","name":"debian.iso","state":"stalledUP","progress":1.0,"ratio":1.5}
			]`))
		}))

		torrents, err := client.ListTorrents(context.Background(), TorrentListOptions{})
		require.NoError(t, err)
		require.Len(t, torrents, 2)
		assert.Equal(t, "ubuntu.iso", torrents[0].Name)
		assert.Equal(t, StateDownloading, torrents[0].State)
		assert.Equal(t, "linux", torrents[0].Category)
		assert.Equal(t, StateStalledUp, torrents[1].State)
		assert.InDelta(t, 1.5, torrents[1].Ratio, 0.001)
	})

	t.Run("encodes options", func(t *testing.T) {
		var form url.Values
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			form, err = url.ParseQuery(string(body))
			require.NoError(t, err)
			w.Write([]byte(`[]`))
		}))

		_, err := client.ListTorrents(context.Background(), TorrentListOptions{
			Filter:   FilterCompleted,
			Category: "linux",
			Sort:     "added_on",
			Reverse:  true,
			Limit:    10,
			Offset:   20,
			Hashes:   []string{"aaaa", "bbbb"},
		})
		require.NoError(t, err)

		assert.Equal(t, "completed", form.Get("filter"))
		assert.Equal(t, "linux", form.Get("category"))
		assert.Equal(t, "added_on", form.Get("sort"))
		assert.Equal(t, "true", form.Get("reverse"))
		assert.Equal(t, "10", form.Get("limit"))
		assert.Equal(t, "20", form.Get("offset"))
		assert.Equal(t, "aaaa|bbbb", form.Get("hashes"))
	})

	t.Run("zero options send empty body", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Empty(t, body)
			w.Write([]byte(`[]`))
		}))

		torrents, err := client.ListTorrents(context.Background(), TorrentListOptions{})
		require.NoError(t, err)
		assert.Empty(t, torrents)
	})
}

func TestGetTorrentProperties(t *testing.T) {
	t.Run("decodes properties", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v2/torrents/properties", r.URL.Path)
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Equal(t, "hash=aaaa", string(body))
			w.Write([]byte(`{"save_path":"/downloads","piece_size":4194304,"pieces_have":10,"pieces_num":872,"share_ratio":0.25}`))
		}))

		props, err := client.GetTorrentProperties(context.Background(), "aaaa")
		require.NoError(t, err)
		assert.Equal(t, "/downloads", props.SavePath)
		assert.Equal(t, int64(4194304), props.PieceSize)
		assert.InDelta(t, 0.25, props.ShareRatio, 0.001)
	})

	t.Run("unknown hash", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.GetTorrentProperties(context.Background(), "ffff")
		require.ErrorIs(t, err, ErrTorrentNotFound)
	})

	t.Run("unexpected status", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := client.GetTorrentProperties(context.Background(), "aaaa")
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	})
}

func TestGetTorrentTrackers(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/torrents/trackers", r.URL.Path)
		w.Write([]byte(`[
			{"url":"** [DHT] **","status":2,"tier":-1},
			{"url":"http://tracker.example.org/announce","status":2,"tier":0,"num_peers":42,"msg":""}
		]`))
	}))

	trackers, err := client.GetTorrentTrackers(context.Background(), "aaaa")
	require.NoError(t, err)
	require.Len(t, trackers, 2)
	assert.Equal(t, int64(-1), trackers[0].Tier)
	assert.Equal(t, TrackerWorking, trackers[1].Status)
	assert.Equal(t, int64(42), trackers[1].NumPeers)
}

func TestGetTorrentFiles(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/torrents/files", r.URL.Path)
		w.Write([]byte(`[{"name":"ubuntu.iso","size":3654957056,"progress":0.42,"priority":1,"piece_range":[0,871],"availability":1.0}]`))
	}))

	files, err := client.GetTorrentFiles(context.Background(), "aaaa")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "ubuntu.iso", files[0].Name)
	assert.Equal(t, []int64{0, 871}, files[0].PieceRange)
}

func TestGetPieceStates(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/torrents/pieceStates", r.URL.Path)
		w.Write([]byte(`[0,1,2,2]`))
	}))

	states, err := client.GetPieceStates(context.Background(), "aaaa")
	require.NoError(t, err)
	assert.Equal(t, []PieceState{PieceNotDownloaded, PieceDownloading, PieceDownloaded, PieceDownloaded}, states)
}

func TestTorrentActions(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		call     func(c *Client) error
		wantForm url.Values
	}{
		{
			name: "pause",
			path: "/api/v2/torrents/pause",
			call: func(c *Client) error {
				return c.PauseTorrents(context.Background(), "aaaa", "bbbb")
			},
			wantForm: url.Values{"hashes": {"aaaa|bbbb"}},
		},
		{
			name: "resume",
			path: "/api/v2/torrents/resume",
			call: func(c *Client) error {
				return c.ResumeTorrents(context.Background(), "aaaa")
			},
			wantForm: url.Values{"hashes": {"aaaa"}},
		},
		{
			name: "recheck",
			path: "/api/v2/torrents/recheck",
			call: func(c *Client) error {
				return c.RecheckTorrents(context.Background(), "aaaa")
			},
			wantForm: url.Values{"hashes": {"aaaa"}},
		},
		{
			name: "reannounce",
			path: "/api/v2/torrents/reannounce",
			call: func(c *Client) error {
				return c.ReannounceTorrents(context.Background(), "aaaa")
			},
			wantForm: url.Values{"hashes": {"aaaa"}},
		},
		{
			name: "delete keeping files",
			path: "/api/v2/torrents/delete",
			call: func(c *Client) error {
				return c.DeleteTorrents(context.Background(), false, "aaaa")
			},
			wantForm: url.Values{"hashes": {"aaaa"}, "deleteFiles": {"false"}},
		},
		{
			name: "delete with files",
			path: "/api/v2/torrents/delete",
			call: func(c *Client) error {
				return c.DeleteTorrents(context.Background(), true, "aaaa", "bbbb")
			},
			wantForm: url.Values{"hashes": {"aaaa|bbbb"}, "deleteFiles": {"true"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			var gotForm url.Values
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				gotForm, err = url.ParseQuery(string(body))
				require.NoError(t, err)
				w.WriteHeader(http.StatusOK)
			}))

			require.NoError(t, tt.call(client))
			assert.Equal(t, tt.path, gotPath)
			assert.Equal(t, tt.wantForm, gotForm)
		})
	}
}

func TestAddTorrent(t *testing.T) {
	var form url.Values
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/torrents/add", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		form, err = url.ParseQuery(string(body))
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))

	err := client.AddTorrent(context.Background(), AddTorrentOptions{
		URLs:          []string{"magnet:?xt=urn:btih:aaaa", "http://example.org/t.torrent"},
		SavePath:      "/downloads",
		Category:      "linux",
		Paused:        true,
		DownloadLimit: 1048576,
	})
	require.NoError(t, err)

	assert.Equal(t, "magnet:?xt=urn:btih:aaaa\nhttp://example.org/t.torrent", form.Get("urls"))
	assert.Equal(t, "/downloads", form.Get("savepath"))
	assert.Equal(t, "linux", form.Get("category"))
	assert.Equal(t, "true", form.Get("paused"))
	assert.Equal(t, "1048576", form.Get("dlLimit"))
	assert.Empty(t, form.Get("upLimit"))
}
