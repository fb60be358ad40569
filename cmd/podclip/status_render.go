package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"podclip/internal/status"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	statusText := fmt.Sprintf("[%s]", statusKindLabel(kind))
	if message != "" {
		statusText += " " + message
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	default:
		return ansiBlue
	}
}

// clipStatusKind picks the colour class a clip status is shown with.
func clipStatusKind(s status.ClipStatus) statusKind {
	switch s {
	case status.ClipFailed, status.ClipRejected:
		return statusError
	case status.ClipProcessed, status.ClipApproved, status.ClipPublished:
		return statusOK
	case status.ClipProcessing, status.ClipReviewed:
		return statusWarn
	default:
		return statusInfo
	}
}

// displayClipStatus renders a clip status for tables, e.g. "processed" as
// "Processed". Unknown statuses are shown as stored.
func displayClipStatus(s status.ClipStatus, colorize bool) string {
	text := string(s)
	if s.Known() {
		text = cases.Title(language.Und).String(strings.ReplaceAll(text, "_", " "))
	}
	if colorize {
		return statusKindColor(clipStatusKind(s)) + text + ansiReset
	}
	return text
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
