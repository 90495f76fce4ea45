package tui

import (
	"fmt"

	"github.com/lingualeap/lingualeap/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	content := fmt.Sprintf(
		"LinguaLeap\n\nVersion: %s\nBuilt:   %s\nCommit:  %s\n\nesc: close",
		orNA(info.Version), orNA(info.Date), orNA(info.Commit),
	)
	return overlayBoxStyle.Render(content)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
