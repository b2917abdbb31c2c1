package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/styles"
)

const bannerArt = `
 _   _       _        _    ____ _                _
| \ | | __ _| |_ __ _| |  / ___| |__   __ _ _ __| |_
|  \| |/ _' | __/ _' | | | |   | '_ \ / _' | '__| __|
| |\  | (_| | || (_| | | | |___| | | | (_| | |  | |_
|_| \_|\__,_|\__\__,_|_|  \____|_| |_|\__,_|_|   \__|
`

const bannerSubtitle = "Generator *"

const consentWarning = "Warning! Please be aware that you are entering sensitive data into an app, " +
	"this information may be shared with third parties."

const welcome = "Welcome, let's begin..."

// printBanner writes the start-of-session banner.
func printBanner(w io.Writer, s *styles.Styles) {
	art := strings.Trim(bannerArt, "\n")
	width := lipgloss.Width(art)

	fmt.Fprintln(w, s.Title.Render(art))
	fmt.Fprintln(w, s.Subtitle.Render(lipgloss.PlaceHorizontal(width, lipgloss.Right, bannerSubtitle)))
	fmt.Fprintln(w, s.Muted.Render(strings.Repeat("_", width)))
}

// printWarning writes the consent notice shown before data collection.
func printWarning(w io.Writer, s *styles.Styles) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Warning.Render(consentWarning))
	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Normal.Render(welcome))
	fmt.Fprintln(w)
}
