// Package media provides a client for the remote media host that stores
// avatar and cover images.
package media

// UploadResult holds the durable URL and metadata returned by the media
// host after a successful upload.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Bytes    int64  `json:"bytes"`
	Format   string `json:"format"`
}
