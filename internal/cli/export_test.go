package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/lapscan/lapscan/internal/dataset"
)

// fetchingSink is a sink with read-back support, like the postgres writer.
type fetchingSink struct {
	stored   []dataset.Listing
	fetchErr error
}

func (s *fetchingSink) Write(listings []dataset.Listing) error {
	s.stored = append(s.stored, listings...)
	return nil
}

func (s *fetchingSink) Close() error { return nil }

func (s *fetchingSink) FetchAll() ([]dataset.Listing, error) {
	return s.stored, s.fetchErr
}

// plainSink has no read-back support, like the csv writer.
type plainSink struct{}

func (plainSink) Write([]dataset.Listing) error { return nil }
func (plainSink) Close() error                  { return nil }

func TestVerifyExportReadsBack(t *testing.T) {
	sink := &fetchingSink{}
	if err := sink.Write([]dataset.Listing{{Brand: "Acme", Price: 45000}}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	verified, err := verifyExport(sink, 1)
	if err != nil {
		t.Fatalf("verifyExport failed: %v", err)
	}
	if !verified {
		t.Error("Expected the sink to be verified")
	}
}

func TestVerifyExportCountMismatch(t *testing.T) {
	sink := &fetchingSink{stored: []dataset.Listing{{Brand: "Acme", Price: 45000}}}

	_, err := verifyExport(sink, 2)
	if err == nil {
		t.Fatal("Expected a count mismatch error")
	}
	if !strings.Contains(err.Error(), "sink holds 1") {
		t.Errorf("Expected mismatch details in error, got %v", err)
	}
}

func TestVerifyExportFetchError(t *testing.T) {
	sink := &fetchingSink{fetchErr: errors.New("connection reset")}

	verified, err := verifyExport(sink, 0)
	if err == nil {
		t.Fatal("Expected the fetch error to surface")
	}
	if !verified {
		t.Error("Expected a fetching sink to count as verified even on error")
	}
}

func TestVerifyExportSkipsPlainSinks(t *testing.T) {
	verified, err := verifyExport(plainSink{}, 5)
	if err != nil {
		t.Fatalf("verifyExport failed: %v", err)
	}
	if verified {
		t.Error("Expected sinks without read-back to be skipped")
	}
}
