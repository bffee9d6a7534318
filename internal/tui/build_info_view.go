// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-cred-keeper/models"
)

func renderBuildInfoWindow(client, server models.AppBuildInfo, serverErr error) string {
	var b strings.Builder

	b.WriteString("Client\n")
	writeBuildInfo(&b, client)

	b.WriteString("\nServer\n")
	if serverErr != nil {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(describeError(serverErr)))
	} else {
		writeBuildInfo(&b, server)
	}

	return renderPage("ABOUT", strings.TrimRight(b.String(), "\n"), "esc: back")
}

func writeBuildInfo(b *strings.Builder, info models.AppBuildInfo) {
	b.WriteString("  Version: ")
	b.WriteString(valueOrNA(info.Version))
	b.WriteString("\n  Date:    ")
	b.WriteString(valueOrNA(info.Date))
	b.WriteString("\n  Commit:  ")
	b.WriteString(valueOrNA(info.Commit))
	b.WriteString("\n")
}
