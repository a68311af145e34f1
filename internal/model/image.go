package model

// ImageRef describes the image currently attached to a dictionary word.
type ImageRef struct {
	WordID      string
	ImageURL    string
	ContentType string
	Size        int64
}
