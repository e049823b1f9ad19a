package service

// User-facing outcome strings. These are part of the frontend contract;
// change them together with the web client.
const (
	msgFetchCourses   = "Error fetching courses. Please try again."
	msgFetchBookmarks = "Error fetching bookmarked courses."
	msgUpdateBookmark = "Failed to update bookmark. Please try again."
	msgFetchProfile   = "Failed to fetch profile. Please log in."

	msgBookmarkAdded   = "Added to bookmarks"
	msgBookmarkRemoved = "Removed from bookmarks"
)

// fallback returns the server-provided message when present, else the
// fixed per-operation default.
func fallback(serverMessage, defaultMessage string) string {
	if serverMessage != "" {
		return serverMessage
	}
	return defaultMessage
}
