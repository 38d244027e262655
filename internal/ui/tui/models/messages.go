package models

import "github.com/PizzaHomicide/anicompare/internal/compare"

// ComparisonLoadedMsg is sent when both lists were fetched and compared
type ComparisonLoadedMsg struct {
	Result *compare.Result
}

// ComparisonErrorMsg is sent when fetching or comparing the lists failed
type ComparisonErrorMsg struct {
	Err error
}

// RefreshRequestedMsg asks the app to fetch and compare both lists again, bypassing any cache
type RefreshRequestedMsg struct{}
