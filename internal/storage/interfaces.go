package storage

import "github.com/lapscan/lapscan/internal/dataset"

// ListingWriter is the interface any export sink must satisfy.
type ListingWriter interface {
	Write(listings []dataset.Listing) error
	Close() error
}
