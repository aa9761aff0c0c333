package usecase

import (
	"fmt"
	"regexp"

	"leetcode-relay/internal/domain/model"
)

// problemURLPattern accepts https://leetcode.com/problems/<slug> with an optional trailing slash.
var problemURLPattern = regexp.MustCompile(`^https://leetcode\.com/problems/([a-z0-9-]+)/?$`)

// ParseSlug validates a LeetCode problem URL and returns its slug.
func ParseSlug(rawURL string) (string, error) {
	match := problemURLPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return "", fmt.Errorf("%w: %q", model.ErrInvalidURL, rawURL)
	}
	return match[1], nil
}
