package services

import (
	"errors"
	"time"

	"github.com/sbilibin2017/podcast-network/internal/repositories"
)

var (
	// ErrNotFound is returned when a resource does not exist or belongs to another user.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidReference is returned when a show or episode points at a parent the caller does not own.
	ErrInvalidReference = errors.New("referenced resource not found")
)

const (
	popularHostsLimit       = 3
	popularShowsLimit       = 6
	popularEpisodesLimit    = 6
	popularAdvertisersLimit = 5
)

// featuredHostNames are the hosts listed as popular.
var featuredHostNames = []string{"Ranveer Allahbadia", "Nikhil Kamath", "Raj Shamani"}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func mapNotFound(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
