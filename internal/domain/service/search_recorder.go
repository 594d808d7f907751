package service

import "time"

// SearchRecorder receives observations about address book loads and searches.
type SearchRecorder interface {
	// ObserveSearch records one search call and how many addresses it returned.
	ObserveSearch(elapsed time.Duration, results int, emptyQuery bool)

	// ObserveLoad records an address book being loaded into a filter engine.
	ObserveLoad(size int)

	// ObserveEviction records a filter engine dropped from the cache.
	ObserveEviction()
}

// NoopSearchRecorder discards every observation.
type NoopSearchRecorder struct{}

func (NoopSearchRecorder) ObserveSearch(time.Duration, int, bool) {}

func (NoopSearchRecorder) ObserveLoad(int) {}

func (NoopSearchRecorder) ObserveEviction() {}
