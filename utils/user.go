package utils

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// GenerateUserID returns an opaque stable identifier for a new profile.
func GenerateUserID() string {
	return uuid.NewString()
}

// GenerateReportID returns the caller-assigned id for a new report.
func GenerateReportID() string {
	return uuid.NewString()
}

// AvatarURL builds a deterministic dicebear avatar for a display name.
func AvatarURL(name string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/notionists/svg?seed=%s&backgroundColor=b6e3f4", url.QueryEscape(name))
}
