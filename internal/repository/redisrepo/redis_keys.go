package redisrepo

import "fmt"

const (
	USER_CACHE_KEY = "user-cache:%s" // <userID>
	SESSION_KEY    = "session:%s"    // <sessionID>
)

func UserCacheKey(userID string) string {
	return fmt.Sprintf(USER_CACHE_KEY, userID)
}

func SessionKey(sessionID string) string {
	return fmt.Sprintf(SESSION_KEY, sessionID)
}
