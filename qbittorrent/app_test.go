package qbittorrent

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/app/version", r.URL.Path)
		w.Write([]byte("v4.5.2"))
	}))

	version, err := client.GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v4.5.2", version)

	// Read-only operations can be repeated freely.
	again, err := client.GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, version, again)
}

func TestGetWebAPIVersion(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/app/webapiVersion", r.URL.Path)
		w.Write([]byte("2.8.3"))
	}))

	version, err := client.GetWebAPIVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.8.3", version)
}

func TestGetBuildInfo(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/app/buildInfo", r.URL.Path)
		w.Write([]byte(`{"qt":"5.15.2","libtorrent":"1.2.11.0","boost":"1.76.0","openssl":"1.1.1i","bitness":64}`))
	}))

	info, err := client.GetBuildInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "5.15.2", info.Qt)
	assert.Equal(t, "1.2.11.0", info.Libtorrent)
	assert.Equal(t, int64(64), info.Bitness)
}

func TestGetPreferences(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/app/preferences", r.URL.Path)
		w.Write([]byte(`{
			"save_path": "/downloads",
			"queueing_enabled": true,
			"max_active_downloads": 3,
			"max_ratio": 2.0,
			"encryption": 1,
			"scheduler_days": 2,
			"scan_dirs": {"/watch": 1}
		}`))
	}))

	prefs, err := client.GetPreferences(context.Background())
	require.NoError(t, err)

	require.NotNil(t, prefs.SavePath)
	assert.Equal(t, "/downloads", *prefs.SavePath)
	require.NotNil(t, prefs.QueueingEnabled)
	assert.True(t, *prefs.QueueingEnabled)
	require.NotNil(t, prefs.MaxActiveDownloads)
	assert.Equal(t, int64(3), *prefs.MaxActiveDownloads)
	require.NotNil(t, prefs.Encryption)
	assert.Equal(t, EncryptionForceOn, *prefs.Encryption)
	require.NotNil(t, prefs.SchedulerDays)
	assert.Equal(t, ScheduleEveryWeekend, *prefs.SchedulerDays)
	assert.Equal(t, DownloadToDefault, prefs.ScanDirs["/watch"])

	// Fields absent from the response stay nil.
	assert.Nil(t, prefs.Locale)
	assert.Nil(t, prefs.ListenPort)
}

func TestSetPreferences(t *testing.T) {
	t.Run("partial update encodes only set fields", func(t *testing.T) {
		var body []byte
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v2/app/setPreferences", r.URL.Path)
			var err error
			body, err = io.ReadAll(r.Body)
			require.NoError(t, err)
			w.WriteHeader(http.StatusOK)
		}))

		savePath := "/data/complete"
		err := client.SetPreferences(context.Background(), &Preferences{SavePath: &savePath})
		require.NoError(t, err)
		assert.JSONEq(t, `{"save_path":"/data/complete"}`, string(body))
	})

	t.Run("false and zero survive the round trip", func(t *testing.T) {
		var body []byte
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var err error
			body, err = io.ReadAll(r.Body)
			require.NoError(t, err)
			w.WriteHeader(http.StatusOK)
		}))

		queueing := false
		limit := int64(0)
		err := client.SetPreferences(context.Background(), &Preferences{
			QueueingEnabled: &queueing,
			DlLimit:         &limit,
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"queueing_enabled":false,"dl_limit":0}`, string(body))
	})
}

func TestGetDefaultSavePath(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/app/defaultSavePath", r.URL.Path)
		w.Write([]byte("/downloads"))
	}))

	path, err := client.GetDefaultSavePath(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/downloads", path)
}

func TestShutdown(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/app/shutdown", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.Shutdown(context.Background()))
}
