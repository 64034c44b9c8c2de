// Package qbittorrent provides a typed client for the qBittorrent
// Web API (v2).
//
// Every operation is a single POST to api/v2/<group>/<name> under the
// configured base URL. The client owns the session cookie: Login
// captures it from the Set-Cookie response header and every later
// request carries it, so one client is one session.
//
// # Usage
//
// Create a client, log in, then call operations:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := qbittorrent.NewClient(
//		"http://localhost:8080",
//		logger,
//		qbittorrent.WithTimeout(15*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	if err := client.Login(ctx, "admin", "adminadmin"); err != nil {
//		log.Fatal(err)
//	}
//	defer client.Logout(ctx)
//
//	torrents, err := client.ListTorrents(ctx, qbittorrent.TorrentListOptions{
//		Filter: qbittorrent.FilterDownloading,
//	})
//
// # Error Handling
//
// Expected failure modes map to sentinel errors:
//
//   - ErrBanned: login rejected because the IP is banned
//   - ErrTorrentNotFound: a hash-scoped operation named an unknown hash
//   - ErrNoSetCookie, ErrNoCookieValue: login succeeded but no usable
//     session cookie came back
//
// Any other unexpected status surfaces as a *StatusError carrying the
// code and body:
//
//	var statusErr *qbittorrent.StatusError
//	if errors.As(err, &statusErr) && statusErr.IsUnauthorized() {
//		// session expired, log in again
//	}
package qbittorrent
