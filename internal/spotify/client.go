// Package spotify resolves recommended tracks to Spotify links.
package spotify

import (
	"context"
	"fmt"
	"os"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

// Client wraps the Spotify Web API for track lookups. It uses the
// client-credentials flow, so no user login is involved and only public
// catalog data is reachable.
type Client struct {
	api *spotify.Client
}

// New creates a Client from app credentials, verifying them with an
// initial token request.
func New(ctx context.Context, clientID, clientSecret string) (*Client, error) {
	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	if _, err := cfg.Token(ctx); err != nil {
		return nil, fmt.Errorf("requesting spotify token: %w", err)
	}

	return &Client{api: spotify.New(cfg.Client(ctx))}, nil
}

// NewFromEnv creates a Client from SPOTIFY_ID and SPOTIFY_SECRET.
// Returns (nil, nil) when the credentials are not configured.
func NewFromEnv(ctx context.Context) (*Client, error) {
	clientID := os.Getenv("SPOTIFY_ID")
	clientSecret := os.Getenv("SPOTIFY_SECRET")
	if clientID == "" || clientSecret == "" {
		return nil, nil
	}
	return New(ctx, clientID, clientSecret)
}

// ResolveTrack searches the catalog for a track and returns its
// open.spotify.com URL. An empty URL with a nil error means no match.
func (c *Client) ResolveTrack(ctx context.Context, song, artist string) (string, error) {
	result, err := c.api.Search(ctx, searchQuery(song, artist), spotify.SearchTypeTrack, spotify.Limit(1))
	if err != nil {
		return "", fmt.Errorf("searching track: %w", err)
	}
	if result.Tracks == nil || len(result.Tracks.Tracks) == 0 {
		return "", nil
	}
	return trackURL(result.Tracks.Tracks[0].ID.String()), nil
}

// searchQuery builds a field-scoped Spotify search query.
func searchQuery(song, artist string) string {
	return fmt.Sprintf("track:%s artist:%s", song, artist)
}

func trackURL(id string) string {
	return "https://open.spotify.com/track/" + id
}
