package search

var searchController = &SearchController{}

func GetSearchController() *SearchController {
	return searchController
}
